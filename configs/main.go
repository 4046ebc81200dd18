package configs

import (
	"os"
	"path"
	"path/filepath"
	"reflect"

	"github.com/spf13/viper"
)

type Config struct {
	viper      *viper.Viper
	configPath string
}

type Configs struct {
	rootConfigs *Config
	GithubToken string
}

func (c *Configs) CreatePathIfNotExist(path string) error {
	dir := filepath.Dir(path)

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		err = os.MkdirAll(dir, os.ModePerm)
		if err != nil {
			return err
		}
	}

	return nil
}

func (c *Configs) marshalConfig(config *Config, cfg interface{}) error {
	reflectCfg := reflect.ValueOf(cfg)
	for i := 0; i < reflectCfg.NumField(); i++ {
		k := reflectCfg.Type().Field(i).Name
		v := reflectCfg.Field(i).Interface()
		config.viper.Set(k, v)
	}

	err := c.CreatePathIfNotExist(config.configPath)
	if err != nil {
		return err
	}

	return config.viper.WriteConfig()
}

func New() *Configs {
	// Root configs stored in ~/.snifftraffic
	// Includes the GitHub token and optional sniffer/output overrides
	rootViper := viper.New()
	rootPath := path.Join(os.Getenv("HOME"), ".snifftraffic/config.json")
	rootViper.SetConfigFile(rootPath)
	rootViper.ReadInConfig()

	rootConfig := &Config{
		viper:      rootViper,
		configPath: rootPath,
	}

	return &Configs{
		rootConfigs: rootConfig,
		GithubToken: os.Getenv("GITHUB_TOKEN"),
	}
}
