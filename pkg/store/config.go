package store

import (
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

type Config interface {
	BasePath() string
	LogLevel() string
	LogFile() string
}

// LoadConfig reads .runlog.yaml from $RUNLOG_CONFIG_PATH or the working
// directory. Every key can be overridden with a RUNLOG_ environment variable.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", "~/.runlog.db")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.file", "")
	v.SetConfigName(".runlog") // .yaml is implicit
	v.SetEnvPrefix("RUNLOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if override := os.Getenv("RUNLOG_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}

	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}
	logFile, err := homedir.Expand(v.GetString("log.file"))
	if err != nil {
		return nil, fmt.Errorf("store: expand log file: %w", err)
	}

	return &fileConfig{
		Path:  path,
		Level: v.GetString("log.level"),
		File:  logFile,
	}, nil
}

type fileConfig struct {
	Path  string `json:"path"`
	Level string `json:"level"`
	File  string `json:"file,omitempty"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) LogLevel() string {
	return f.Level
}

func (f *fileConfig) LogFile() string {
	return f.File
}
