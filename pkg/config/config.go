package config

import (
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

const (
	defaultEnvPrefix = "restaurants"
	// 未指定文件时在 $HOME 与工作目录下查找 .restaurants.yaml
	defaultName = ".restaurants"
)

type option struct {
	file      string
	envPrefix string
	fs        afero.Fs
}

type Option func(*option)

// WithConfigFile reads exactly this file, its extension picks the format
func WithConfigFile(file string) Option {
	return func(o *option) { o.file = file }
}

// WithEnvPrefix RESTAURANTS_DATABASE_DRIVER overrides database.driver by default
func WithEnvPrefix(prefix string) Option {
	return func(o *option) { o.envPrefix = prefix }
}

// WithFs reads the config file from fs instead of the os filesystem
func WithFs(fs afero.Fs) Option {
	return func(o *option) { o.fs = fs }
}

// LoadConfig fills the global viper from the config file and the environment
func LoadConfig(opts ...Option) error {
	o := &option{envPrefix: defaultEnvPrefix}
	for _, opt := range opts {
		opt(o)
	}
	if o.fs != nil {
		viper.SetFs(o.fs)
	}
	if o.file != "" {
		viper.SetConfigFile(o.file)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return errors.Wrap(err, "locate home directory")
		}
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigName(defaultName)
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix(o.envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	return errors.Wrap(viper.ReadInConfig(), "read config")
}
