package cmd

import (
	"context"
	"fmt"

	"github.com/merce-fra/snifftraffic/constants"
	"github.com/merce-fra/snifftraffic/entity"
)

func (h *Handler) Version(ctx context.Context, req *entity.CommandRequest) error {
	fmt.Println(fmt.Sprintf("snifftraffic version %s", constants.Version))
	if constants.Version != "source" {
		latest, err := h.ctrl.GetLatestVersion(ctx)
		if err != nil {
			return err
		}
		if latest != "" && latest != constants.Version {
			fmt.Println("A newer version of snifftraffic is available, please update to:", latest)
		}
	}
	return nil
}
