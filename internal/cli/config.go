package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Lzww0608/fuuid"
)

// Config holds the settings shared by all subcommands. Values come from, in
// increasing priority: defaults, the config file, FUUID_* environment
// variables and command-line flags.
type Config struct {
	Namespace string `mapstructure:"namespace"`
	LogLevel  string `mapstructure:"log-level"`
	LogFormat string `mapstructure:"log-format"`
}

func addGlobalFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "path to a config file (yaml, json or toml)")
	fs.String("namespace", "url", "namespace for v5: dns, url, oid, x500 or a FUUID")
	fs.String("log-level", "info", "log level: debug, info, warn, error")
	fs.String("log-format", "console", "log format: console or json")
}

func loadConfig(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("FUUID")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return Config{}, err
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var namespaces = map[string]fuuid.FUUID{
	"dns":  fuuid.NamespaceDNS,
	"url":  fuuid.NamespaceURL,
	"oid":  fuuid.NamespaceOID,
	"x500": fuuid.NamespaceX500,
}

// resolveNamespace accepts a well-known namespace name or a FUUID string.
func resolveNamespace(s string) (fuuid.FUUID, error) {
	if ns, ok := namespaces[strings.ToLower(s)]; ok {
		return ns, nil
	}
	ns, err := fuuid.FromString(s)
	if err != nil {
		return fuuid.Nil, fmt.Errorf("namespace %q: %w", s, err)
	}
	return ns, nil
}
