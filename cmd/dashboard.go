package cmd

import (
	"context"
	"fmt"

	"github.com/merce-fra/snifftraffic/entity"
	"github.com/merce-fra/snifftraffic/ui"
)

func (h *Handler) Dashboard(ctx context.Context, req *entity.CommandRequest) error {
	owner, repo := ownerRepo(req.Args)

	ui.StartSpinner(&ui.SpinnerCfg{
		Message: "Rendering dashboard...",
		Tokens:  ui.ChartEmojis,
	})
	out, err := h.ctrl.BuildDashboard(ctx, &entity.TrafficRequest{Owner: owner, Repo: repo})
	if err != nil {
		ui.StopSpinner("")
		return err
	}
	ui.StopSpinner(fmt.Sprintf("📊 Dashboard generated: %s", ui.GrayText(out)))

	fmt.Printf("Run %s to view it\n", ui.Bold("snifftraffic open"))
	return nil
}
