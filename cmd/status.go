package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/merce-fra/snifftraffic/constants"
	"github.com/merce-fra/snifftraffic/entity"
	"github.com/merce-fra/snifftraffic/lib/git"
	"github.com/merce-fra/snifftraffic/store"
	"github.com/merce-fra/snifftraffic/ui"
)

func (h *Handler) Status(ctx context.Context, req *entity.CommandRequest) error {
	if ok, source := h.ctrl.HasToken(); ok {
		fmt.Printf("Token: %s (from %s)\n", ui.GreenText("present"), source)
	} else {
		fmt.Println("Not logged in. Run snifftraffic login")
	}

	fmt.Printf("\n%s\n", ui.Bold("Defaults"))
	fmt.Print(ui.KeyValues(map[string]string{
		"Repository": constants.DefaultOwner + "/" + constants.DefaultRepo,
		"Sniffer":    h.cfg.SnifferCommand(),
		"Output":     h.cfg.OutputPath(),
		"CSV":        constants.CSVFile + " (exists: " + strconv.FormatBool(store.New(constants.CSVFile).Exists()) + ")",
	}))

	meta, err := git.GetAllMetadata(".")
	if err != nil {
		return err
	}
	if !meta.IsRepo {
		fmt.Println("\nCurrent directory is not a git checkout")
		return nil
	}

	fmt.Printf("\n%s\n", ui.Bold("Checkout"))
	fmt.Print(ui.KeyValues(map[string]string{
		"Repo":        meta.RepoName,
		"Branch":      meta.Branch,
		"Last commit": fmt.Sprintf("%s %s", meta.Commit.Hash, ui.Truncate(meta.Commit.Message, 60)),
		"Dirty":       strconv.FormatBool(meta.HasLocalChanges),
	}))

	return nil
}
