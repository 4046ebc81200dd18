package gateway

import (
	"context"

	"github.com/merce-fra/snifftraffic/errors"
)

// GetLatestVersion returns the tag of the newest published release of this CLI
func (g *Gateway) GetLatestVersion(ctx context.Context) (string, error) {
	release, _, err := g.ghc.Repositories.GetLatestRelease(ctx, "merce-fra", "snifftraffic")
	if err != nil {
		return "", errors.LatestVersionUnknown
	}
	return release.GetTagName(), nil
}
