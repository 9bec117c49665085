package config

import (
	"github.com/footprint-tools/drawer/internal/dispatchers"
	"github.com/footprint-tools/drawer/internal/domain"
	"github.com/footprint-tools/drawer/internal/ui/style"
)

func List(args []string, flags *dispatchers.ParsedFlags) error {
	return list(args, flags, DefaultDeps())
}

// list prints every visible key grouped by section. Keys still at their
// default are muted.
func list(_ []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	configMap, err := deps.GetAll()
	if err != nil {
		return err
	}

	bySection := domain.ConfigKeysBySection()
	for i, section := range domain.ConfigSections() {
		if i > 0 {
			_, _ = deps.Println("")
		}
		_, _ = deps.Printf("%s\n", style.Header("# "+section))
		for _, key := range bySection[section] {
			if key.HideIfEmpty && configMap[key.Name] == "" {
				continue
			}
			value := configMap[key.Name]
			line := key.Name + "=" + value
			if value == key.Default {
				line = style.Muted(line)
			}
			_, _ = deps.Printf("%s\n", line)
		}
	}
	return nil
}
