package controller

import (
	"context"
)

func (c *Controller) GetLatestVersion(ctx context.Context) (string, error) {
	return c.gtwy.GetLatestVersion(ctx)
}
