package config

import (
	"context"
	"testing"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWith(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		env     map[string]string
		want    *Config
		wantErr bool
	}{
		{
			name: "defaults",
			env:  nil,
			want: &Config{LogLevel: "info", LogFormat: FormatConsole, Verify: true},
		},
		{
			name: "all set",
			env: map[string]string{
				"DEBATEFMT_LOG_LEVEL":  "debug",
				"DEBATEFMT_LOG_FORMAT": "json",
				"DEBATEFMT_LABELS":     "labels.yaml",
				"DEBATEFMT_REPORT":     "report.yaml",
				"DEBATEFMT_VERIFY":     "false",
			},
			want: &Config{
				LogLevel:   "debug",
				LogFormat:  FormatJSON,
				LabelsPath: "labels.yaml",
				ReportPath: "report.yaml",
				Verify:     false,
			},
		},
		{
			name:    "unknown format",
			env:     map[string]string{"DEBATEFMT_LOG_FORMAT": "xml"},
			wantErr: true,
		},
		{
			name:    "bad bool",
			env:     map[string]string{"DEBATEFMT_VERIFY": "maybe"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadWith(ctx, envconfig.MapLookuper(tt.env))
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg)
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{LogFormat: "yaml"}
	require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg.LogFormat = FormatJSON
	require.NoError(t, cfg.Validate())
}
