package config_test

import (
	"os"
	"path/filepath"
	"testing"

	appconfig "github.com/archforge/archforge/internal/adapters/outbound/config"
	"github.com/archforge/archforge/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".archforge.yaml"), []byte(content), 0644))
}

func TestYAMLLoader_MissingFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	loader := appconfig.New()

	cfg, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestYAMLLoader_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
bundle: minimal-api
root_namespace: Shop
`)
	loader := appconfig.New()

	cfg, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.BundleMinimalAPI, cfg.Bundle)
	assert.Equal(t, "Shop", cfg.RootNamespace)
}

func TestYAMLLoader_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{{{invalid yaml`)
	loader := appconfig.New()

	_, err := loader.Load(dir)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parsing .archforge.yaml")
}

func TestYAMLLoader_UnknownBundleRejected(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `bundle: rails`)
	loader := appconfig.New()

	_, err := loader.Load(dir)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid .archforge.yaml")
}

func TestYAMLLoader_PartialConfigMergesDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `root_namespace: Shop`)
	loader := appconfig.New()

	cfg, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "Shop", cfg.RootNamespace)
	assert.Equal(t, domain.DefaultConfig().Bundle, cfg.Bundle)
	assert.Equal(t, domain.DefaultConfig().SourceRoot, cfg.SourceRoot)
	assert.Equal(t, domain.DefaultConfig().Layers, cfg.Layers)
}

func TestYAMLLoader_LayerRulesOverride(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
layer_rules:
  domain: []
  infrastructure: [domain]
  presentation: [domain, infrastructure]
  test: [domain, infrastructure, presentation]
`)
	loader := appconfig.New()

	cfg, err := loader.Load(dir)
	require.NoError(t, err)

	graph, err := cfg.Graph()
	require.NoError(t, err)
	assert.False(t, graph.IsViolation(domain.LayerPresentation, domain.LayerInfrastructure))
}

func TestYAMLLoader_ExcludePaths(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
exclude_paths:
  - "**/Migrations/**"
`)
	loader := appconfig.New()

	cfg, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"**/Migrations/**"}, cfg.ExcludePaths)
}
