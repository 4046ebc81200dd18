package controller

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/browser"

	"github.com/merce-fra/snifftraffic/constants"
	"github.com/merce-fra/snifftraffic/entity"
	"github.com/merce-fra/snifftraffic/errors"
)

func (c *Controller) OpenDashboard(ctx context.Context) error {
	out := c.cfg.OutputPath()
	if _, err := os.Stat(out); os.IsNotExist(err) {
		return errors.NoDashboardFound
	}
	abs, err := filepath.Abs(out)
	if err != nil {
		return err
	}
	return browser.OpenFile(abs)
}

func (c *Controller) OpenTrafficPage(ctx context.Context, req *entity.TrafficRequest) error {
	return browser.OpenURL(fmt.Sprintf(constants.GithubURLMap["traffic"], req.Owner, req.Repo))
}
