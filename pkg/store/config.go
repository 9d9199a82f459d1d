package store

import (
	"fmt"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config locates the on-disk document store.
type Config interface {
	BasePath() string
}

// LoadConfig resolves the store path from a .dayplan config file in
// the working directory, the DAYPLAN environment, or the default.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.dayplan.db")
	viper.SetConfigName(".dayplan") // .yaml is implicit
	viper.SetEnvPrefix("DAYPLAN")
	viper.AutomaticEnv()

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: reading config file: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expanding store path: %w", err)
	}

	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
