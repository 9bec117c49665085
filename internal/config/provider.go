package config

import "github.com/footprint-tools/drawer/internal/domain"

// Provider is the file-backed domain.ConfigProvider. Writes hold the
// config lock.
type Provider struct{}

// NewProvider creates a new configuration provider.
func NewProvider() *Provider {
	return &Provider{}
}

func (p *Provider) Get(key string) (string, bool) { return Get(key) }

func (p *Provider) GetAll() (map[string]string, error) { return GetAll() }

// Set stores value under key.
func (p *Provider) Set(key, value string) error {
	return WithLock(func() error {
		lines, err := ReadLines()
		if err != nil {
			return err
		}
		lines, _ = Set(lines, key, value)
		return WriteLines(lines)
	})
}

// Unset removes key from the file.
func (p *Provider) Unset(key string) error {
	return WithLock(func() error {
		lines, err := ReadLines()
		if err != nil {
			return err
		}
		lines, _ = Unset(lines, key)
		return WriteLines(lines)
	})
}

var _ domain.ConfigProvider = (*Provider)(nil)
