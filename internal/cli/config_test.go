package cli

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lzww0608/fuuid"
)

func TestLoadConfig_Defaults(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	addGlobalFlags(fs)
	require.NoError(t, fs.Parse(nil))

	cfg, err := loadConfig(fs)
	require.NoError(t, err)
	assert.Equal(t, Config{Namespace: "url", LogLevel: "info", LogFormat: "console"}, cfg)
}

func TestLoadConfig_Priority(t *testing.T) {
	t.Setenv("FUUID_LOG_LEVEL", "debug")
	t.Setenv("FUUID_NAMESPACE", "oid")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	addGlobalFlags(fs)
	require.NoError(t, fs.Parse([]string{"--namespace", "x500"}))

	cfg, err := loadConfig(fs)
	require.NoError(t, err)
	assert.Equal(t, "x500", cfg.Namespace, "flag beats env")
	assert.Equal(t, "debug", cfg.LogLevel, "env beats default")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	addGlobalFlags(fs)
	require.NoError(t, fs.Parse([]string{"--config", "/nonexistent/fuuid.yaml"}))

	_, err := loadConfig(fs)
	assert.ErrorContains(t, err, "read config")
}

func TestResolveNamespace(t *testing.T) {
	tests := []struct {
		in   string
		want fuuid.FUUID
	}{
		{"dns", fuuid.NamespaceDNS},
		{"URL", fuuid.NamespaceURL},
		{"oid", fuuid.NamespaceOID},
		{"x500", fuuid.NamespaceX500},
		{"6ba7b810-9dad-11d1-80b4-00c04fd430c8", fuuid.NamespaceDNS},
	}
	for _, tt := range tests {
		got, err := resolveNamespace(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := resolveNamespace("bogus")
	assert.ErrorIs(t, err, fuuid.ErrInvalid)
}
