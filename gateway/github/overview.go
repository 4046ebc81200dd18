package github

import (
	"context"
	"fmt"

	gql "github.com/machinebox/graphql"

	"github.com/merce-fra/snifftraffic/entity"
	"github.com/merce-fra/snifftraffic/errors"
)

func (g *Gateway) GetRepoOverview(ctx context.Context, req *entity.TrafficRequest) (*entity.RepoOverview, error) {
	token, err := g.cfg.GetToken()
	if err != nil {
		return nil, err
	}

	gqlReq := gql.NewRequest(`
		query($owner: String!, $name: String!) {
			repository(owner: $owner, name: $name) {
				nameWithOwner
				description
				homepageUrl
				forkCount
				stargazers {
					totalCount
				}
			}
		}
	`)
	gqlReq.Header.Set("Authorization", fmt.Sprintf("bearer %s", token))
	gqlReq.Var("owner", req.Owner)
	gqlReq.Var("name", req.Repo)

	var resp struct {
		Repository struct {
			NameWithOwner string `json:"nameWithOwner"`
			Description   string `json:"description"`
			HomepageURL   string `json:"homepageUrl"`
			ForkCount     int    `json:"forkCount"`
			Stargazers    struct {
				TotalCount int `json:"totalCount"`
			} `json:"stargazers"`
		} `json:"repository"`
	}
	if err := g.gqlClient.Run(ctx, gqlReq, &resp); err != nil {
		return nil, errors.OverviewFetchFailed
	}

	return &entity.RepoOverview{
		NameWithOwner: resp.Repository.NameWithOwner,
		Description:   resp.Repository.Description,
		HomepageURL:   resp.Repository.HomepageURL,
		Stars:         resp.Repository.Stargazers.TotalCount,
		Forks:         resp.Repository.ForkCount,
	}, nil
}
