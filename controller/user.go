package controller

import (
	"context"
	"fmt"

	"github.com/merce-fra/snifftraffic/entity"
	"github.com/merce-fra/snifftraffic/errors"
	"github.com/merce-fra/snifftraffic/ui"
)

func (c *Controller) Login(ctx context.Context) error {
	user, err := c.cfg.GetUserConfigs()
	if err != nil {
		return err
	}
	if user.Token != "" {
		overwrite, err := ui.PromptConfirm("A token is already saved, replace it")
		if err != nil {
			return errors.LoginFailed
		}
		if !overwrite {
			return nil
		}
	}

	token, err := ui.PromptToken()
	if err != nil {
		return errors.LoginFailed
	}

	err = c.cfg.SetUserConfigs(&entity.UserConfig{Token: token})
	if err != nil {
		return err
	}

	fmt.Printf("🔑 %s\n", ui.GreenText("Token saved"))
	if c.cfg.GithubToken != "" {
		fmt.Printf("%s\n", ui.YellowText("Heads up: GITHUB_TOKEN is set and takes precedence over the saved token"))
	}
	return nil
}

func (c *Controller) Logout(ctx context.Context) error {
	user, err := c.cfg.GetUserConfigs()
	if err != nil {
		return err
	}
	if user.Token == "" {
		fmt.Printf("🚪 %s\n", ui.YellowText("Already logged out"))
		return nil
	}

	err = c.cfg.SetUserConfigs(&entity.UserConfig{})
	if err != nil {
		return err
	}
	fmt.Printf("👋 %s\n", ui.YellowText("Logged out"))
	return nil
}

// HasToken reports whether any token is available and where it came from
func (c *Controller) HasToken() (bool, string) {
	if c.cfg.GithubToken != "" {
		return true, "environment"
	}
	user, err := c.cfg.GetUserConfigs()
	if err != nil || user.Token == "" {
		return false, ""
	}
	return true, "config"
}
