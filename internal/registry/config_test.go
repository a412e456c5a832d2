package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dusk-indust/introspect/internal/intent"
)

func TestLoadConfig_MissingFileReturnsZeroConfig(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, cfg.WriteMethods)
	assert.Empty(t, cfg.Sensitivity)
}

func TestLoadConfig_ReadsYAMLOverrides(t *testing.T) {
	dir := t.TempDir()
	content := `
writeMethods: [persist, upsert]
sensitivity:
  sensitive: [password, iban]
libraryPurposes:
  fastify: Web framework
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "introspect.yml"), []byte(content), 0o644))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"persist", "upsert"}, cfg.WriteMethods)
	assert.Equal(t, []string{"password", "iban"}, cfg.Sensitivity["sensitive"])
}

func TestLoadConfig_InvalidYAMLErrors(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "introspect.yml"), []byte("writeMethods: {bad"), 0o644))

	_, err := LoadConfig(dir)
	require.Error(t, err)
}

func TestConfig_ApplyOverridesOnlyPopulatedSections(t *testing.T) {
	base := Default()
	cfg := &Config{
		WriteMethods: []string{"persist"},
		Sensitivity:  map[string][]string{"sensitive": {"iban"}},
		LibraryPurposes: map[string]string{
			"fastify": "Web framework",
		},
	}

	reg := cfg.Apply(base)

	assert.Equal(t, []string{"persist"}, reg.WriteMethods)
	assert.True(t, reg.IsWriteMethod("persist"))
	assert.False(t, reg.IsWriteMethod("save"))

	// Overridden tier keywords replace the defaults for that tier only.
	assert.Equal(t, intent.SensitivitySensitive, reg.Sensitivity("iban"))
	assert.Equal(t, intent.SensitivityPublic, reg.Sensitivity("password"))
	assert.Equal(t, intent.SensitivityCritical, reg.Sensitivity("secretKey"))

	// Library purposes merge instead of replacing.
	assert.Equal(t, "Web framework", reg.PurposeOf("fastify"))
	assert.Equal(t, "Web framework", reg.PurposeOf("express"))

	// Untouched sections keep their defaults.
	assert.Equal(t, base.NetworkCalls, reg.NetworkCalls)

	// The base registries were not mutated.
	assert.True(t, base.IsWriteMethod("save"))
}
