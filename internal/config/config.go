// Package config loads settings from defaults, an optional YAML file and
// LOVECOUNT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/julianstephens/lovecount/internal/constants"
	"github.com/julianstephens/lovecount/internal/storage"
	"github.com/julianstephens/lovecount/internal/utils"
)

const envPrefix = "LOVECOUNT"

type Config struct {
	Store        string        `mapstructure:"store"`
	Debug        bool          `mapstructure:"debug"`
	Timezone     string        `mapstructure:"timezone"`
	BackupDir    string        `mapstructure:"backup_dir"`
	TickInterval time.Duration `mapstructure:"tick_interval"`
	// DBConnection is only read from the environment and never written to disk.
	DBConnection string `mapstructure:"db_connection"`

	// Path is the config file that was read, empty when none was found.
	Path string `mapstructure:"-"`
}

// Location resolves Timezone. "Local" and "" mean the system zone.
func (c *Config) Location() (*time.Location, error) {
	return utils.LoadLocation(c.Timezone)
}

// StoreTarget is the target handed to storage.New. An explicit
// LOVECOUNT_DB_CONNECTION wins over the store setting.
func (c *Config) StoreTarget() string {
	if c.DBConnection != "" {
		return c.DBConnection
	}
	return c.Store
}

// BackupRoot returns the backup directory. It defaults to a folder next to
// a file store, or inside the config dir for memory and postgres stores.
func (c *Config) BackupRoot() string {
	if c.BackupDir != "" {
		return c.BackupDir
	}
	switch storage.KindOf(c.StoreTarget()) {
	case storage.KindJSON, storage.KindSQLite:
		return filepath.Join(filepath.Dir(c.StoreTarget()), constants.BackupDirName)
	}
	return filepath.Join(storage.ExpandHome(constants.DefaultConfigDir), constants.BackupDirName)
}

// ConfigDir is where logs and the default config file live.
func ConfigDir() string {
	return storage.ExpandHome(constants.DefaultConfigDir)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("store", constants.DefaultStorePath)
	v.SetDefault("debug", false)
	v.SetDefault("timezone", "Local")
	v.SetDefault("backup_dir", "")
	v.SetDefault("tick_interval", constants.DefaultTickInterval)
	v.SetDefault("db_connection", "")
}

// Load reads path, or the default config file when path is empty. A missing
// default file is not an error; a missing explicit file is.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("yaml")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range []string{"store", "debug", "timezone", "backup_dir", "tick_interval", "db_connection"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	explicit := path != ""
	if !explicit {
		path = constants.DefaultConfigFile
	}
	path = storage.ExpandHome(path)
	v.SetConfigFile(path)

	readPath := ""
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound), !explicit && errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		readPath = path
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}
	cfg.Path = readPath
	cfg.Store = storage.ExpandHome(cfg.Store)
	cfg.BackupDir = storage.ExpandHome(cfg.BackupDir)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the loaded values.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Store) == "" && c.DBConnection == "" {
		return errors.New("config: store must not be empty")
	}
	if !utils.ValidateTimezone(c.Timezone) {
		return fmt.Errorf("config: unknown timezone %q", c.Timezone)
	}
	if c.TickInterval < 0 {
		return fmt.Errorf("config: tick_interval must not be negative, got %s", c.TickInterval)
	}
	if c.TickInterval == 0 {
		c.TickInterval = constants.DefaultTickInterval
	}
	return nil
}

// Write stores the persistent fields as YAML at path, creating parent
// directories. DBConnection is never written.
func Write(path string, c *Config) error {
	path = storage.ExpandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	v := viper.New()
	v.SetConfigType("yaml")
	v.Set("store", c.Store)
	v.Set("debug", c.Debug)
	v.Set("timezone", c.Timezone)
	if c.BackupDir != "" {
		v.Set("backup_dir", c.BackupDir)
	}
	v.Set("tick_interval", c.TickInterval.String())
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}
