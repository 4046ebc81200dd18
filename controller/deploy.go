package controller

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/pkg/errors"

	"github.com/merce-fra/snifftraffic/constants"
	"github.com/merce-fra/snifftraffic/entity"
	"github.com/merce-fra/snifftraffic/ui"
)

// CommandRunner executes one external process, streams attached to the
// terminal. Swapped for a recorder in tests.
type CommandRunner interface {
	Run(ctx context.Context, argv []string) error
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, argv []string) error {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	return cmd.Run()
}

// CommitMessage stamps the deploy commit with the local time
func CommitMessage(now time.Time) string {
	return fmt.Sprintf("Update traffic %s", now.Format("2006-01-02 15:04:05"))
}

// DeployPlan is the fixed sequence deploy walks through: sniff traffic,
// stage the whole tree, commit, push origin/main
func (c *Controller) DeployPlan(now time.Time) []*entity.DeployStep {
	return []*entity.DeployStep{
		{
			Emoji: "📡",
			Title: "Sniffing repository traffic",
			Argv:  []string{c.cfg.SnifferCommand(), constants.DefaultOwner, constants.DefaultRepo},
		},
		{
			Emoji: "📦",
			Title: "Staging changes",
			Argv:  []string{"git", "add", "-A"},
		},
		{
			Emoji: "📝",
			Title: "Committing traffic update",
			Argv:  []string{"git", "commit", "-m", CommitMessage(now)},
		},
		{
			Emoji: "🚀",
			Title: "Pushing to origin/main",
			Argv:  []string{"git", "push", "origin", "main"},
		},
	}
}

// Deploy runs the plan in order and aborts on the first failing step.
// The failing tool's own output stays on the terminal, the returned
// error only names the step it came from.
func (c *Controller) Deploy(ctx context.Context) error {
	for _, step := range c.DeployPlan(time.Now()) {
		fmt.Printf("%s %s\n", step.Emoji, ui.MagentaText(step.Title))
		if err := c.runner.Run(ctx, step.Argv); err != nil {
			return errors.Wrapf(err, "%s failed", step.Title)
		}
	}
	return nil
}
