package domain_test

import (
	"testing"

	"github.com/archforge/archforge/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := domain.DefaultConfig()

	assert.Equal(t, domain.BundleFastEndpoints, cfg.Bundle)
	assert.Equal(t, "App", cfg.RootNamespace)
	assert.Equal(t, domain.ValidLayers, cfg.Layers)
	require.NoError(t, cfg.Validate())
}

func TestProjectConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     domain.ProjectConfig
		wantErr string
	}{
		{
			name: "valid minimal",
			cfg:  domain.ProjectConfig{Bundle: domain.BundleMinimalAPI},
		},
		{
			name:    "unknown bundle",
			cfg:     domain.ProjectConfig{Bundle: "razor-pages"},
			wantErr: "unknown bundle",
		},
		{
			name:    "unknown layer in layers",
			cfg:     domain.ProjectConfig{Layers: []domain.LayerID{"data"}},
			wantErr: "unknown layer",
		},
		{
			name: "unknown layer in rules",
			cfg: domain.ProjectConfig{
				LayerRules: map[domain.LayerID][]domain.LayerID{"data": {domain.LayerDomain}},
			},
			wantErr: "layer_rules",
		},
		{
			name: "unknown rule target",
			cfg: domain.ProjectConfig{
				LayerRules: map[domain.LayerID][]domain.LayerID{domain.LayerPresentation: {"data"}},
			},
			wantErr: "layer_rules[presentation]",
		},
		{
			name: "alias to unknown layer",
			cfg: domain.ProjectConfig{
				LayerAliases: map[string]domain.LayerID{"Api": "web"},
			},
			wantErr: "unknown layer",
		},
		{
			name: "valid alias",
			cfg: domain.ProjectConfig{
				LayerAliases: map[string]domain.LayerID{"Api": domain.LayerPresentation},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestProjectConfig_Graph(t *testing.T) {
	t.Run("default table when no override", func(t *testing.T) {
		g, err := domain.ProjectConfig{}.Graph()
		require.NoError(t, err)
		assert.True(t, g.IsViolation(domain.LayerDomain, domain.LayerInfrastructure))
	})

	t.Run("override replaces table", func(t *testing.T) {
		cfg := domain.ProjectConfig{
			LayerRules: map[domain.LayerID][]domain.LayerID{
				domain.LayerDomain:         {},
				domain.LayerInfrastructure: {domain.LayerDomain},
				domain.LayerPresentation:   {domain.LayerDomain, domain.LayerInfrastructure},
			},
		}
		g, err := cfg.Graph()
		require.NoError(t, err)
		assert.False(t, g.IsViolation(domain.LayerPresentation, domain.LayerInfrastructure))
	})

	t.Run("cyclic override fails", func(t *testing.T) {
		cfg := domain.ProjectConfig{
			LayerRules: map[domain.LayerID][]domain.LayerID{
				domain.LayerDomain:         {domain.LayerInfrastructure},
				domain.LayerInfrastructure: {domain.LayerDomain},
			},
		}
		_, err := cfg.Graph()
		var confErr *domain.ConfigError
		require.ErrorAs(t, err, &confErr)
	})
}

func TestEffectiveLayers(t *testing.T) {
	assert.Equal(t, domain.ValidLayers, domain.ProjectConfig{}.EffectiveLayers())

	cfg := domain.ProjectConfig{Layers: []domain.LayerID{domain.LayerDomain}}
	assert.Equal(t, []domain.LayerID{domain.LayerDomain}, cfg.EffectiveLayers())
}
