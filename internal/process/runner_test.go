package process

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSilent(t *testing.T) {
	out, err := NewRunner().RunSilent(context.Background(), "echo", []string{"hello"})
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(out))
}

func TestRunWithTimeoutDeadline(t *testing.T) {
	_, err := NewRunner().RunWithTimeout(context.Background(), 100*time.Millisecond, "sleep", []string{"5"})
	require.ErrorIs(t, err, ErrTimeout)
}

func TestRunWithTimeoutNonzeroExit(t *testing.T) {
	res, err := NewRunner().RunWithTimeout(context.Background(), 5*time.Second, "sh", []string{"-c", "exit 3"})
	require.NoError(t, err)
	assert.Equal(t, 3, res.ExitCode)
}

func TestRunWithTimeoutCapturesOutput(t *testing.T) {
	res, err := NewRunner().RunWithTimeout(context.Background(), 5*time.Second, "sh", []string{"-c", "echo out; echo err >&2"})
	require.NoError(t, err)
	assert.Equal(t, "out\n", res.Stdout)
	assert.Equal(t, "err\n", res.Stderr)
	assert.Zero(t, res.ExitCode)
}

func TestCommandExists(t *testing.T) {
	assert.True(t, CommandExists("sh"))
	assert.False(t, CommandExists("definitely-not-a-real-command-xyz"))
}
