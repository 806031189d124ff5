package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	// configName is the file looked up in the working directory when no
	// explicit path is given.
	configName = ".expknap"
	configType = "yaml"
	envPrefix  = "EXPKNAP"
)

// LoadConfig merges defaults, the config file and EXPKNAP_* variables
// (solver.time_limit becomes EXPKNAP_SOLVER_TIME_LIMIT) and validates the
// result. An empty configPath reads ./.expknap.yaml if present.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	applyDefaults(v)

	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath == "" {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
	} else {
		v.SetConfigFile(configPath)
	}

	var notFound viper.ConfigFileNotFoundError
	if err := v.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func applyDefaults(v *viper.Viper) {
	defaults := map[string]any{
		"run.items":          DefaultRunItems,
		"run.range":          DefaultRunRange,
		"run.type":           DefaultRunType,
		"run.tests":          DefaultRunTests,
		"run.seed":           DefaultRunSeed,
		"solver.node_limit":  0,
		"solver.time_limit":  "0s",
		"solver.stack_depth": 0,
		"solver.verify":      DefaultSolverVerify,
		"trace.path":         DefaultTracePath,
		"trace.enabled":      DefaultTraceEnabled,
		"logging.level":      DefaultLoggingLevel,
		"logging.format":     DefaultLoggingFormat,
		"metrics.enabled":    DefaultMetricsEnabled,
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
}
