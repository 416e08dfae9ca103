package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	opts := Parse()

	assert.Equal(t, "localhost:8080", opts.Port)
	assert.Equal(t, "http://localhost:8080", opts.ResultHostname)
	assert.Equal(t, "migrations", opts.MigrationsPath)
	assert.Equal(t, 2*time.Second, opts.GeoTimeout)
	assert.Equal(t, 5*time.Minute, opts.BotCacheTTL)
	assert.Equal(t, time.Hour, opts.UnlockTTL)
	assert.Equal(t, 10000, opts.ClickBuffer)
	assert.NotEmpty(t, opts.DecoyURL)
	assert.NotEmpty(t, opts.DiversionURL)
}

func TestParseEnvOverride(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", "0.0.0.0:9090")
	t.Setenv("UNLOCK_TTL", "30m")

	options = &Options{}
	opts := Parse()

	assert.Equal(t, "0.0.0.0:9090", opts.Port)
	assert.Equal(t, 30*time.Minute, opts.UnlockTTL)
}

func TestValidate(t *testing.T) {
	valid := Options{
		Port:           "localhost:8080",
		ResultHostname: "http://localhost:8080",
		SecretKey:      "s",
		ClickBuffer:    100,
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Options)
	}{
		{name: "empty address", mutate: func(o *Options) { o.Port = "" }},
		{name: "empty base url", mutate: func(o *Options) { o.ResultHostname = "" }},
		{name: "empty secret", mutate: func(o *Options) { o.SecretKey = "" }},
		{name: "zero click buffer", mutate: func(o *Options) { o.ClickBuffer = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := valid
			tt.mutate(&o)
			assert.Error(t, o.Validate())
		})
	}
}
