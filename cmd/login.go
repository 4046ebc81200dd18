package cmd

import (
	"context"

	"github.com/merce-fra/snifftraffic/entity"
)

func (h *Handler) Login(ctx context.Context, req *entity.CommandRequest) error {
	return h.ctrl.Login(ctx)
}

func (h *Handler) Logout(ctx context.Context, req *entity.CommandRequest) error {
	return h.ctrl.Logout(ctx)
}
