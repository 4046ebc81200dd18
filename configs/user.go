package configs

import (
	"github.com/merce-fra/snifftraffic/entity"
	"github.com/merce-fra/snifftraffic/errors"
)

func (c *Configs) GetUserConfigs() (*entity.UserConfig, error) {
	cfg, err := c.GetRootConfig()
	if err != nil {
		return nil, err
	}
	return &cfg.User, nil
}

func (c *Configs) SetUserConfigs(user *entity.UserConfig) error {
	cfg, err := c.GetRootConfig()
	if err != nil {
		return err
	}
	cfg.User = *user
	return c.SetRootConfig(cfg)
}

// GetToken resolves the GitHub token: environment first, stored config second
func (c *Configs) GetToken() (string, error) {
	if c.GithubToken != "" {
		return c.GithubToken, nil
	}

	user, err := c.GetUserConfigs()
	if err != nil {
		return "", err
	}
	if user.Token == "" {
		return "", errors.NotLoggedIn
	}
	return user.Token, nil
}
