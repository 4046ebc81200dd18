package github

import (
	gql "github.com/machinebox/graphql"

	"github.com/merce-fra/snifftraffic/configs"
)

const GH_API_URL = "https://api.github.com/graphql"

type Gateway struct {
	gqlClient *gql.Client
	cfg       *configs.Configs
}

func New() *Gateway {
	return &Gateway{
		gqlClient: gql.NewClient(GH_API_URL),
		cfg:       configs.New(),
	}
}
