package cmd

import (
	"github.com/merce-fra/snifftraffic/configs"
	"github.com/merce-fra/snifftraffic/constants"
	"github.com/merce-fra/snifftraffic/controller"
)

type Handler struct {
	ctrl *controller.Controller
	cfg  *configs.Configs
}

func New() *Handler {
	return &Handler{
		ctrl: controller.New(),
		cfg:  configs.New(),
	}
}

// ownerRepo resolves the target repository from positional args,
// defaulting to the hard-wired merce-fra/PELCA
func ownerRepo(args []string) (string, string) {
	owner := constants.DefaultOwner
	repo := constants.DefaultRepo
	if len(args) > 0 {
		owner = args[0]
	}
	if len(args) > 1 {
		repo = args[1]
	}
	return owner, repo
}
