package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/habtools/habctl/internal/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	// Server connection settings
	Host     string
	Port     int
	Username string
	Password string

	// RESTEnabled gates every command that talks to the server. The
	// "Disable REST API" recovery action flips it off in the config file.
	RESTEnabled bool

	// Output settings
	Verbose bool
	Debug   bool
}

// NewConfig creates a Config with default values
func NewConfig() *Config {
	return &Config{
		Host:        "localhost",
		Port:        8080,
		RESTEnabled: true,
	}
}

// NewViper builds the viper instance backing the habctl config file.
// The file lives at ~/.config/habctl/config.yaml and every key can be
// overridden through HABCTL_* environment variables.
func NewViper() (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	v.AddConfigPath(dir)

	v.SetEnvPrefix("HABCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("host", "localhost")
	v.SetDefault("port", 8080)
	v.SetDefault("username", "")
	v.SetDefault("password", "")
	v.SetDefault("rest.enabled", true)

	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine, defaults and env apply
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errors.Wrap(err, errors.ErrorTypeConfig, "failed to read config file")
		}
	}

	return v, nil
}

// Dir returns the habctl configuration directory
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrorTypeConfig, "failed to locate user config directory")
	}
	return filepath.Join(base, "habctl"), nil
}

// Load builds a Config from the viper store, then applies any flags the
// user set explicitly. Flags win over file and environment values.
func Load(v *viper.Viper, flags *pflag.FlagSet) (*Config, error) {
	cfg := &Config{
		Host:        v.GetString("host"),
		Port:        v.GetInt("port"),
		Username:    v.GetString("username"),
		Password:    v.GetString("password"),
		RESTEnabled: v.GetBool("rest.enabled"),
	}

	var err error

	if flags.Changed("host") {
		if cfg.Host, err = flags.GetString("host"); err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeConfig, "failed to get host flag")
		}
	}

	if flags.Changed("port") {
		if cfg.Port, err = flags.GetInt("port"); err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeConfig, "failed to get port flag")
		}
	}

	if flags.Changed("username") {
		if cfg.Username, err = flags.GetString("username"); err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeConfig, "failed to get username flag")
		}
	}

	if flags.Changed("password") {
		if cfg.Password, err = flags.GetString("password"); err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeConfig, "failed to get password flag")
		}
	}

	if cfg.Verbose, err = flags.GetBool("verbose"); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeConfig, "failed to get verbose flag")
	}

	if cfg.Debug, err = flags.GetBool("debug"); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeConfig, "failed to get debug flag")
	}

	return cfg, nil
}

// Validate ensures the configuration is usable
func (c *Config) Validate() error {
	if c.Host == "" {
		return errors.New(errors.ErrorTypeValidation, "host must not be empty").
			WithContext("field", "host").
			WithContext("suggestion", "set host in ~/.config/habctl/config.yaml or pass --host")
	}

	if c.Port <= 0 {
		return errors.New(errors.ErrorTypeValidation, "port must be a positive integer").
			WithContext("field", "port")
	}

	return nil
}

// SetHost persists a new host in the config file. Used by the "Set host"
// recovery action.
func SetHost(v *viper.Viper, host string) error {
	v.Set("host", host)
	return writeConfig(v)
}

// DisableREST persists rest.enabled=false in the config file. Used by the
// "Disable REST API" recovery action.
func DisableREST(v *viper.Viper) error {
	v.Set("rest.enabled", false)
	return writeConfig(v)
}

func writeConfig(v *viper.Viper) error {
	if err := v.WriteConfig(); err != nil {
		// First write: the file does not exist yet
		dir, dirErr := Dir()
		if dirErr != nil {
			return dirErr
		}
		if mkErr := os.MkdirAll(dir, 0o755); mkErr != nil {
			return errors.Wrap(mkErr, errors.ErrorTypeConfig, "failed to create config directory")
		}
		if err = v.WriteConfigAs(filepath.Join(dir, "config.yaml")); err != nil {
			return errors.Wrap(err, errors.ErrorTypeConfig, "failed to write config file")
		}
	}
	return nil
}
