package controller

import (
	"context"

	"github.com/merce-fra/snifftraffic/constants"
	"github.com/merce-fra/snifftraffic/entity"
	"github.com/merce-fra/snifftraffic/store"
)

// FetchTraffic pulls the daily clone and view counts plus popular
// referrers and folds any new dates into traffic_data.csv
func (c *Controller) FetchTraffic(ctx context.Context, req *entity.TrafficRequest) (*entity.FetchResult, error) {
	if _, err := c.cfg.GetToken(); err != nil {
		return nil, err
	}

	clones, err := c.gtwy.GetTrafficClones(ctx, req)
	if err != nil {
		return nil, err
	}
	views, err := c.gtwy.GetTrafficViews(ctx, req)
	if err != nil {
		return nil, err
	}
	referrers, err := c.gtwy.GetTrafficReferrers(ctx, req)
	if err != nil {
		return nil, err
	}

	fetched := store.BuildRows(clones, views)
	s := store.New(constants.CSVFile)

	if !s.Exists() {
		if err := s.Save(fetched); err != nil {
			return nil, err
		}
		return &entity.FetchResult{
			Rows:      fetched,
			Added:     len(fetched),
			Created:   true,
			Referrers: referrers,
		}, nil
	}

	existing, err := s.Load()
	if err != nil {
		return nil, err
	}

	merged, added := store.Merge(existing, fetched)
	if added > 0 {
		if err := s.Save(merged); err != nil {
			return nil, err
		}
	}

	return &entity.FetchResult{
		Rows:      merged,
		Added:     added,
		Referrers: referrers,
	}, nil
}
