package completions

import (
	"fmt"
	"regexp"
	"strings"
)

var nonIdent = regexp.MustCompile(`[^A-Za-z0-9_]`)

// funcName turns a binary name into a shell function name fragment.
func funcName(bin string) string {
	return nonIdent.ReplaceAllString(bin, "_")
}

// subPath is a command's path without the binary, space separated.
func subPath(c CommandInfo) string {
	if len(c.Path) <= 1 {
		return ""
	}
	return strings.Join(c.Path[1:], " ")
}

func flagWords(flags []FlagInfo) []string {
	var out []string
	for _, f := range flags {
		out = append(out, f.Names...)
	}
	return out
}

// quote wraps s in single quotes for bash, zsh and fish.
func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// GenerateBash returns a script completing subcommands and flags by the
// words typed so far.
func GenerateBash(commands []CommandInfo) string {
	bin := binaryName(commands)
	fn := "_" + funcName(bin) + "_completions"
	global := flagWords(globalFlags(commands))

	var b strings.Builder
	fmt.Fprintf(&b, "# %s bash completion script\n\n", bin)
	fmt.Fprintf(&b, "%s() {\n", fn)
	b.WriteString("    local cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    local path=\"\" w opts\n")
	b.WriteString("    for w in \"${COMP_WORDS[@]:1:COMP_CWORD-1}\"; do\n")
	b.WriteString("        [[ $w == -* ]] || path=\"${path:+$path }$w\"\n")
	b.WriteString("    done\n\n")
	b.WriteString("    case \"$path\" in\n")
	for _, c := range commands {
		words := append(append([]string{}, c.Subcommands...), flagWords(c.Flags)...)
		if len(c.Path) > 1 {
			words = append(words, global...)
		}
		fmt.Fprintf(&b, "        %s) opts=%s ;;\n", quote(subPath(c)), quote(strings.Join(words, " ")))
	}
	b.WriteString("        *) opts=\"\" ;;\n")
	b.WriteString("    esac\n\n")
	b.WriteString("    COMPREPLY=( $(compgen -W \"$opts\" -- \"$cur\") )\n")
	b.WriteString("}\n\n")
	fmt.Fprintf(&b, "complete -F %s %s\n", fn, bin)
	return b.String()
}

// GenerateZsh returns a #compdef script that describes each candidate.
func GenerateZsh(commands []CommandInfo) string {
	bin := binaryName(commands)
	fn := "_" + funcName(bin)
	global := globalFlags(commands)

	var b strings.Builder
	fmt.Fprintf(&b, "#compdef %s\n\n", bin)
	fmt.Fprintf(&b, "%s() {\n", fn)
	b.WriteString("    local -a path_words\n")
	b.WriteString("    local w\n")
	b.WriteString("    for w in \"${words[@]:1:CURRENT-2}\"; do\n")
	b.WriteString("        [[ $w == -* ]] || path_words+=(\"$w\")\n")
	b.WriteString("    done\n")
	fmt.Fprintf(&b, "    %s_commands \"${(j: :)path_words}\"\n", fn)
	b.WriteString("}\n\n")

	fmt.Fprintf(&b, "%s_commands() {\n", fn)
	b.WriteString("    local -a entries\n")
	b.WriteString("    case \"$1\" in\n")

	summaries := make(map[string]string, len(commands))
	for _, c := range commands {
		summaries[strings.Join(c.Path, " ")] = c.Summary
	}
	for _, c := range commands {
		fmt.Fprintf(&b, "        %s)\n", quote(subPath(c)))
		b.WriteString("            entries=(\n")
		for _, sub := range c.Subcommands {
			desc := summaries[strings.Join(append(append([]string{}, c.Path...), sub), " ")]
			fmt.Fprintf(&b, "                %s\n", quote(sub+":"+desc))
		}
		flags := c.Flags
		if len(c.Path) > 1 {
			flags = append(append([]FlagInfo{}, flags...), global...)
		}
		for _, f := range flags {
			for _, name := range f.Names {
				fmt.Fprintf(&b, "                %s\n", quote(name+":"+f.Description))
			}
		}
		b.WriteString("            )\n")
		b.WriteString("            ;;\n")
	}
	b.WriteString("    esac\n")
	b.WriteString("    _describe 'command' entries\n")
	b.WriteString("}\n\n")
	fmt.Fprintf(&b, "%s \"$@\"\n", fn)
	return b.String()
}

// GenerateFish returns complete directives for every command and flag.
func GenerateFish(commands []CommandInfo) string {
	bin := binaryName(commands)

	var b strings.Builder
	fmt.Fprintf(&b, "# %s fish completion script\n\n", bin)
	fmt.Fprintf(&b, "complete -c %s -f\n", bin)

	for _, c := range commands {
		if len(c.Path) == 1 {
			for _, f := range c.Flags {
				b.WriteString(fishFlag(bin, "", f))
			}
			continue
		}

		cond := "__fish_use_subcommand"
		if len(c.Path) > 2 {
			cond = "__fish_seen_subcommand_from " + c.Path[len(c.Path)-2]
		}
		fmt.Fprintf(&b, "complete -c %s -n %s -a %s -d %s\n", bin, quote(cond), quote(c.Name), quote(c.Summary))

		for _, f := range c.Flags {
			b.WriteString(fishFlag(bin, "__fish_seen_subcommand_from "+c.Name, f))
		}
	}
	return b.String()
}

func fishFlag(bin, cond string, f FlagInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "complete -c %s", bin)
	if cond != "" {
		fmt.Fprintf(&b, " -n %s", quote(cond))
	}
	for _, name := range f.Names {
		switch {
		case strings.HasPrefix(name, "--"):
			fmt.Fprintf(&b, " -l %s", name[2:])
		case strings.HasPrefix(name, "-"):
			fmt.Fprintf(&b, " -s %s", name[1:])
		}
	}
	if f.HasValue {
		b.WriteString(" -r")
	}
	fmt.Fprintf(&b, " -d %s\n", quote(f.Description))
	return b.String()
}
