package configs

import (
	"encoding/json"
	"io/ioutil"
	"os"

	"github.com/merce-fra/snifftraffic/constants"
	"github.com/merce-fra/snifftraffic/entity"
)

func (c *Configs) GetRootConfig() (*entity.RootConfig, error) {
	var cfg entity.RootConfig
	b, err := ioutil.ReadFile(c.rootConfigs.configPath)
	if os.IsNotExist(err) {
		// A missing config file is fine, every field has a default
		return &cfg, nil
	} else if err != nil {
		return nil, err
	}
	err = json.Unmarshal(b, &cfg)
	return &cfg, err
}

func (c *Configs) SetRootConfig(cfg *entity.RootConfig) error {
	return c.marshalConfig(c.rootConfigs, *cfg)
}

// SnifferCommand returns the external traffic program run by deploy
func (c *Configs) SnifferCommand() string {
	cfg, err := c.GetRootConfig()
	if err != nil || cfg.Sniffer == "" {
		return constants.DefaultSniffer
	}
	return cfg.Sniffer
}

// OutputPath returns the dashboard file the renderer writes
func (c *Configs) OutputPath() string {
	cfg, err := c.GetRootConfig()
	if err != nil || cfg.Output == "" {
		return constants.DefaultOutput
	}
	return cfg.Output
}
