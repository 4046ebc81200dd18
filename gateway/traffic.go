package gateway

import (
	"context"

	"github.com/google/go-github/github"

	"github.com/merce-fra/snifftraffic/entity"
	"github.com/merce-fra/snifftraffic/errors"
)

func (g *Gateway) GetTrafficClones(ctx context.Context, req *entity.TrafficRequest) ([]*entity.TrafficPoint, error) {
	clones, _, err := g.ghc.Repositories.ListTrafficClones(ctx, req.Owner, req.Repo, &github.TrafficBreakdownOptions{Per: "day"})
	if err != nil {
		return nil, errors.TrafficFetchFailed
	}
	return trafficPoints(clones.Clones), nil
}

func (g *Gateway) GetTrafficViews(ctx context.Context, req *entity.TrafficRequest) ([]*entity.TrafficPoint, error) {
	views, _, err := g.ghc.Repositories.ListTrafficViews(ctx, req.Owner, req.Repo, &github.TrafficBreakdownOptions{Per: "day"})
	if err != nil {
		return nil, errors.TrafficFetchFailed
	}
	return trafficPoints(views.Views), nil
}

func (g *Gateway) GetTrafficReferrers(ctx context.Context, req *entity.TrafficRequest) ([]*entity.Referrer, error) {
	referrers, _, err := g.ghc.Repositories.ListTrafficReferrers(ctx, req.Owner, req.Repo)
	if err != nil {
		return nil, errors.ReferrersFetchFailed
	}

	out := make([]*entity.Referrer, 0, len(referrers))
	for _, ref := range referrers {
		out = append(out, &entity.Referrer{
			Referrer: ref.GetReferrer(),
			Count:    ref.GetCount(),
			Uniques:  ref.GetUniques(),
		})
	}
	return out, nil
}

func trafficPoints(data []*github.TrafficData) []*entity.TrafficPoint {
	points := make([]*entity.TrafficPoint, 0, len(data))
	for _, d := range data {
		points = append(points, &entity.TrafficPoint{
			Timestamp: d.GetTimestamp().Time,
			Count:     d.GetCount(),
			Uniques:   d.GetUniques(),
		})
	}
	return points
}
