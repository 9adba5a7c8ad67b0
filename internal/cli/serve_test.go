package cli

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeStopsOnCancel(t *testing.T) {
	db := isolate(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--db", db, "serve", "--addr", "127.0.0.1:0"})

	err := cmd.ExecuteContext(ctx)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Serving on 127.0.0.1:0")
}

func TestServeBadDatabase(t *testing.T) {
	isolate(t)

	_, err := execute(t, "", "--db", t.TempDir(), "serve", "--addr", "127.0.0.1:0")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "failed to open database")
}
