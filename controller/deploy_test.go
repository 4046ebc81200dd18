package controller

import (
	"context"
	"io/ioutil"
	"os"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/merce-fra/snifftraffic/configs"
)

type recordingRunner struct {
	calls  [][]string
	failAt int // 1-based call index to fail on, 0 never fails
	err    error
}

func (r *recordingRunner) Run(ctx context.Context, argv []string) error {
	r.calls = append(r.calls, argv)
	if r.failAt != 0 && len(r.calls) == r.failAt {
		return r.err
	}
	return nil
}

func newTestController(t *testing.T, runner CommandRunner) *Controller {
	home, err := ioutil.TempDir("", "snifftraffic")
	require.NoError(t, err)
	prev := os.Getenv("HOME")
	os.Setenv("HOME", home)
	t.Cleanup(func() { os.Setenv("HOME", prev) })

	return &Controller{
		cfg:    configs.New(),
		runner: runner,
	}
}

func TestCommitMessageFormat(t *testing.T) {
	now := time.Date(2024, 5, 3, 9, 8, 7, 0, time.Local)
	msg := CommitMessage(now)

	require.Equal(t, "Update traffic 2024-05-03 09:08:07", msg)
	require.Regexp(t, regexp.MustCompile(`^Update traffic \d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`), msg)
}

func TestDeployPlan(t *testing.T) {
	c := newTestController(t, &recordingRunner{})
	now := time.Date(2024, 5, 3, 9, 8, 7, 0, time.Local)

	plan := c.DeployPlan(now)
	require.Len(t, plan, 4)

	require.Equal(t, []string{"snifftraffic.py", "merce-fra", "PELCA"}, plan[0].Argv)
	require.Equal(t, []string{"git", "add", "-A"}, plan[1].Argv)
	require.Equal(t, []string{"git", "commit", "-m", "Update traffic 2024-05-03 09:08:07"}, plan[2].Argv)
	require.Equal(t, []string{"git", "push", "origin", "main"}, plan[3].Argv)
}

func TestDeployRunsStepsInOrder(t *testing.T) {
	runner := &recordingRunner{}
	c := newTestController(t, runner)

	require.NoError(t, c.Deploy(context.Background()))

	require.Len(t, runner.calls, 4)
	require.Equal(t, []string{"snifftraffic.py", "merce-fra", "PELCA"}, runner.calls[0])
	require.Equal(t, []string{"git", "add", "-A"}, runner.calls[1])
	require.Equal(t, []string{"git", "push", "origin", "main"}, runner.calls[3])
	require.Regexp(t, `^Update traffic \d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`, runner.calls[2][3])
}

func TestDeployAbortsOnFirstFailure(t *testing.T) {
	// Commit fails, e.g. nothing to commit. Push must never run.
	runner := &recordingRunner{failAt: 3, err: context.DeadlineExceeded}
	c := newTestController(t, runner)

	err := c.Deploy(context.Background())

	require.Error(t, err)
	require.Contains(t, err.Error(), "Committing traffic update")
	require.Len(t, runner.calls, 3)
}
