package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/abimaelmartell/moni-dash/internal/errors"
)

// EnvPrefix is prepended to every environment override, e.g. MONI_DASH_ENDPOINT
// or MONI_DASH_SSH_HOST.
const EnvPrefix = "MONI_DASH"

// Load reads config from path, layered over defaults and under environment
// overrides. An empty path means DefaultPath(); a missing default file is not
// an error, but a missing explicit one is.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	v := newViper()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		switch {
		case os.IsNotExist(err) && !explicit:
			// Defaults and env only.
		case os.IsNotExist(err):
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Config file not found: "+path,
				"Check the path passed to --config")
		default:
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to read config file",
				"Check "+path+" is valid YAML")
		}
	}

	return parseConfig(v, path)
}

// newViper builds a viper instance with every key defaulted, so environment
// overrides are honored by Unmarshal even when the file omits the key.
func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("endpoint", d.Endpoint)
	v.SetDefault("interval", d.Interval)
	v.SetDefault("request_timeout", d.RequestTimeout)
	v.SetDefault("ordering", d.Ordering)
	v.SetDefault("refresh_on_sort", d.RefreshOnSort)
	v.SetDefault("location", d.Location)
	v.SetDefault("prefs_path", d.PrefsPath)
	v.SetDefault("log_file", d.LogFile)
	v.SetDefault("modal_transition", d.ModalTransition)
	v.SetDefault("ssh.host", d.SSH.Host)
	v.SetDefault("ssh.timeout", d.SSH.Timeout)
	v.SetDefault("thresholds.cpu.warning", d.Thresholds.CPU.Warning)
	v.SetDefault("thresholds.cpu.critical", d.Thresholds.CPU.Critical)
	v.SetDefault("thresholds.memory.warning", d.Thresholds.Memory.Warning)
	v.SetDefault("thresholds.memory.critical", d.Thresholds.Memory.Critical)
	v.SetDefault("thresholds.disk.warning", d.Thresholds.Disk.Warning)
	v.SetDefault("thresholds.disk.critical", d.Thresholds.Disk.Critical)
}

// parseConfig converts viper config to our Config struct with defaults merged in.
func parseConfig(v *viper.Viper, path string) (*Config, error) {
	cfg := DefaultConfig()

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the YAML syntax in "+path)
	}

	cfg.Endpoint = strings.TrimSpace(cfg.Endpoint)
	cfg.PrefsPath = ExpandPath(cfg.PrefsPath)
	cfg.LogFile = ExpandPath(cfg.LogFile)

	return cfg, nil
}
