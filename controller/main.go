package controller

import (
	"github.com/merce-fra/snifftraffic/configs"
	"github.com/merce-fra/snifftraffic/gateway"
	ghgw "github.com/merce-fra/snifftraffic/gateway/github"
)

type Controller struct {
	gtwy      *gateway.Gateway
	ghGateway *ghgw.Gateway
	cfg       *configs.Configs
	runner    CommandRunner
}

func New() *Controller {
	return &Controller{
		gtwy:      gateway.New(),
		ghGateway: ghgw.New(),
		cfg:       configs.New(),
		runner:    execRunner{},
	}
}
