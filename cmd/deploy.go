package cmd

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	pkgerrors "github.com/pkg/errors"

	"github.com/merce-fra/snifftraffic/entity"
	"github.com/merce-fra/snifftraffic/ui"
)

func (h *Handler) Deploy(ctx context.Context, req *entity.CommandRequest) error {
	dryRun, err := req.Cmd.Flags().GetBool("dry-run")
	if err != nil {
		return err
	}

	if dryRun {
		steps := []string{}
		for _, step := range h.ctrl.DeployPlan(time.Now()) {
			steps = append(steps, fmt.Sprintf("%s  %s", step.Title, ui.GrayText(strings.Join(step.Argv, " "))))
		}
		fmt.Print(ui.OrderedList(steps))
		return nil
	}

	err = h.ctrl.Deploy(ctx)
	if err != nil {
		// Surface the external tool's exit code as our own,
		// its error text is already on the terminal
		fmt.Println(err.Error())
		if exitErr, ok := pkgerrors.Cause(err).(*exec.ExitError); ok {
			os.Exit(exitErr.ExitCode())
		}
		os.Exit(1)
	}

	fmt.Printf("✅ %s\n", ui.GreenText("Traffic update deployed"))
	return nil
}
