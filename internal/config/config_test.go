package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManager_Defaults(t *testing.T) {
	m, err := NewManager()
	require.NoError(t, err)

	cfg := m.GetConfig()
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)

	assert.Equal(t, 320, cfg.Imaging.DefaultWidth)
	assert.Equal(t, 240, cfg.Imaging.DefaultHeight)
	assert.Equal(t, 1024, cfg.Imaging.MaxWidth)
	assert.Equal(t, 1024, cfg.Imaging.MaxHeight)

	assert.Equal(t, 64, cfg.Session.Capacity)
	assert.Equal(t, time.Hour, cfg.Session.TTL)

	assert.Equal(t, int64(10*1024*1024), cfg.Upload.MaxBytes)
}

func TestManager_Validate_Defaults(t *testing.T) {
	m, err := NewManager()
	require.NoError(t, err)

	assert.NoError(t, m.Validate())
}

func TestManager_Validate_Failures(t *testing.T) {
	m, err := NewManager()
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func()
		revert func()
	}{
		{
			name:   "invalid port",
			mutate: func() { m.config.Server.Port = -1 },
			revert: func() { m.config.Server.Port = 8080 },
		},
		{
			name:   "zero request timeout",
			mutate: func() { m.config.Server.RequestTimeout = 0 },
			revert: func() { m.config.Server.RequestTimeout = 15 * time.Second },
		},
		{
			name:   "zero default width",
			mutate: func() { m.config.Imaging.DefaultWidth = 0 },
			revert: func() { m.config.Imaging.DefaultWidth = 320 },
		},
		{
			name:   "max below default",
			mutate: func() { m.config.Imaging.MaxHeight = 10 },
			revert: func() { m.config.Imaging.MaxHeight = 1024 },
		},
		{
			name:   "zero session capacity",
			mutate: func() { m.config.Session.Capacity = 0 },
			revert: func() { m.config.Session.Capacity = 64 },
		},
		{
			name:   "zero upload bytes",
			mutate: func() { m.config.Upload.MaxBytes = 0 },
			revert: func() { m.config.Upload.MaxBytes = 1 << 20 },
		},
		{
			name:   "bad log level",
			mutate: func() { m.config.Logging.Level = "verbose" },
			revert: func() { m.config.Logging.Level = "info" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mutate()
			defer tt.revert()
			assert.Error(t, m.Validate())
		})
	}
}
