package registry

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds optional registry overrides loaded from introspect.yml.
// Only the populated sections replace their defaults; everything else keeps
// the built-in tables.
type Config struct {
	Sensitivity     map[string][]string `yaml:"sensitivity,omitempty"` // tier name -> keywords
	WriteMethods    []string            `yaml:"writeMethods,omitempty"`
	NetworkCalls    []string            `yaml:"networkCalls,omitempty"`
	CriticalDomains []string            `yaml:"criticalDomains,omitempty"`
	LibraryPurposes map[string]string   `yaml:"libraryPurposes,omitempty"`
	SystemModules   []string            `yaml:"systemModules,omitempty"`
}

// LoadConfig attempts to read introspect.yml or introspect.yaml from the
// given directory. Returns a zero-value config (not an error) if no config
// file exists.
func LoadConfig(dir string) (*Config, error) {
	for _, name := range []string{"introspect.yml", "introspect.yaml"} {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var cfg Config
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
		return &cfg, nil
	}
	return &Config{}, nil
}

// Apply returns a copy of base with the config's populated sections
// substituted. The base registries are not mutated.
func (c *Config) Apply(base *Registries) *Registries {
	out := *base

	if len(c.Sensitivity) > 0 {
		tiers := make([]SensitivityTier, len(out.SensitivityTiers))
		copy(tiers, out.SensitivityTiers)
		for i := range tiers {
			if kws, ok := c.Sensitivity[string(tiers[i].Level)]; ok {
				tiers[i].Keywords = kws
			}
		}
		out.SensitivityTiers = tiers
	}
	if len(c.WriteMethods) > 0 {
		out.WriteMethods = c.WriteMethods
	}
	if len(c.NetworkCalls) > 0 {
		out.NetworkCalls = c.NetworkCalls
	}
	if len(c.CriticalDomains) > 0 {
		out.CriticalDomains = c.CriticalDomains
	}
	if len(c.SystemModules) > 0 {
		out.SystemModules = c.SystemModules
	}
	if len(c.LibraryPurposes) > 0 {
		merged := make(map[string]string, len(base.LibraryPurposes)+len(c.LibraryPurposes))
		for k, v := range base.LibraryPurposes {
			merged[k] = v
		}
		for k, v := range c.LibraryPurposes {
			merged[k] = v
		}
		out.LibraryPurposes = merged
	}

	return &out
}
