package controller

import (
	"context"
	"os"
	"time"

	"github.com/merce-fra/snifftraffic/constants"
	"github.com/merce-fra/snifftraffic/dashboard"
	"github.com/merce-fra/snifftraffic/entity"
	"github.com/merce-fra/snifftraffic/errors"
	"github.com/merce-fra/snifftraffic/store"
)

// BuildDashboard renders traffic_data.csv into the HTML dashboard and
// returns the file it wrote
func (c *Controller) BuildDashboard(ctx context.Context, req *entity.TrafficRequest) (string, error) {
	s := store.New(constants.CSVFile)
	if !s.Exists() {
		return "", errors.NoTrafficData
	}
	rows, err := s.Load()
	if err != nil {
		return "", err
	}

	referrers, err := c.gtwy.GetTrafficReferrers(ctx, req)
	if err != nil {
		return "", err
	}

	// The overview just decorates the header, a failure here
	// shouldn't block the dashboard
	overview, err := c.ghGateway.GetRepoOverview(ctx, req)
	if err != nil {
		overview = nil
	}

	data := &entity.DashboardData{
		Owner:     req.Owner,
		Repo:      req.Repo,
		UpdatedAt: time.Now().Format("2006-01-02 15:04:05"),
		Rows:      rows,
		Referrers: referrers,
		Overview:  overview,
	}

	out := c.cfg.OutputPath()
	f, err := os.Create(out)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := dashboard.Render(f, data); err != nil {
		return "", errors.DashboardRenderFailed
	}
	return out, nil
}
