package lambari

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// ParamCheckPolicy selects how FunCall reports mismatched argument types:
// every mismatched position, or only the first.
type ParamCheckPolicy string

const (
	ParamCheckAll   ParamCheckPolicy = "all"
	ParamCheckFirst ParamCheckPolicy = "first"
)

// Config holds the semantic-analysis knobs.
type Config struct {
	ParamCheck ParamCheckPolicy `toml:"param_check"`
}

func DefaultConfig() Config {
	return Config{ParamCheck: ParamCheckAll}
}

// LoadConfig builds a Config from LAMBARI_* environment variables on top of
// the defaults.
func LoadConfig() Config {
	cfg := DefaultConfig()
	if v := os.Getenv("LAMBARI_PARAM_CHECK"); v != "" {
		cfg.ParamCheck = ParamCheckPolicy(v)
	}
	return cfg
}

// LoadConfigFile reads a TOML config file on top of the defaults.
func LoadConfigFile(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "loading config %s", path)
	}
	if cfg.ParamCheck != ParamCheckAll && cfg.ParamCheck != ParamCheckFirst {
		return cfg, errors.Errorf("invalid param_check policy %q", cfg.ParamCheck)
	}
	return cfg, nil
}
