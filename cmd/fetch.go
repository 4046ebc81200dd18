package cmd

import (
	"context"
	"fmt"

	"github.com/merce-fra/snifftraffic/constants"
	"github.com/merce-fra/snifftraffic/entity"
	"github.com/merce-fra/snifftraffic/ui"
)

func (h *Handler) Fetch(ctx context.Context, req *entity.CommandRequest) error {
	owner, repo := ownerRepo(req.Args)

	ui.StartSpinner(&ui.SpinnerCfg{
		Message: fmt.Sprintf("Sniffing traffic for %s...", ui.Bold(owner+"/"+repo)),
	})
	res, err := h.ctrl.FetchTraffic(ctx, &entity.TrafficRequest{Owner: owner, Repo: repo})
	if err != nil {
		ui.StopSpinner("")
		return err
	}

	switch {
	case res.Created:
		ui.StopSpinner(fmt.Sprintf("📊 Created %s with %d rows", constants.CSVFile, len(res.Rows)))
	case res.Added > 0:
		ui.StopSpinner(fmt.Sprintf("📈 Added %d new rows to %s", res.Added, constants.CSVFile))
	default:
		ui.StopSpinner("😴 No new traffic data to add")
	}

	if len(res.Referrers) > 0 {
		fmt.Printf("\n%s\n", ui.Bold("Popular referrers"))
		kv := map[string]string{}
		for _, ref := range res.Referrers {
			kv[ref.Referrer] = fmt.Sprintf("%d (%d unique)", ref.Count, ref.Uniques)
		}
		fmt.Print(ui.KeyValues(kv))
	}

	return nil
}
