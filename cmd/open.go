package cmd

import (
	"context"

	"github.com/merce-fra/snifftraffic/entity"
)

func (h *Handler) Open(ctx context.Context, req *entity.CommandRequest) error {
	remote, err := req.Cmd.Flags().GetBool("remote")
	if err != nil {
		return err
	}

	if remote {
		owner, repo := ownerRepo(req.Args)
		return h.ctrl.OpenTrafficPage(ctx, &entity.TrafficRequest{Owner: owner, Repo: repo})
	}
	return h.ctrl.OpenDashboard(ctx)
}
