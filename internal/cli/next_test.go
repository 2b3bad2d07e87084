package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/primesieve/internal/config"
	"github.com/roach88/primesieve/internal/testutil"
)

func newTestRootOptions(format string) *RootOptions {
	return &RootOptions{
		Format:   format,
		Config:   config.Default(),
		TraceIDs: testutil.NewFixedTokenGenerator("trace-test"),
	}
}

func TestNextCommandText(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewNextCommand(newTestRootOptions("text"))
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--count", "10"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "2\n3\n5\n7\n11\n13\n17\n19\n23\n29\n", buf.String())
}

func TestNextCommandDefaultCountFromConfig(t *testing.T) {
	opts := newTestRootOptions("text")
	opts.Config.Count = 3

	buf := &bytes.Buffer{}
	cmd := NewNextCommand(opts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "2\n3\n5\n", buf.String())
}

func TestNextCommandJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewNextCommand(newTestRootOptions("json"))
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"-n", "5"})

	require.NoError(t, cmd.Execute())

	var resp struct {
		Status  string     `json:"status"`
		Data    NextResult `json:"data"`
		TraceID string     `json:"trace_id"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 5, resp.Data.Count)
	assert.Equal(t, []uint64{2, 3, 5, 7, 11}, resp.Data.Primes)
	assert.Equal(t, "trace-test", resp.TraceID)
}

func TestNextCommandZeroCount(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		buf := &bytes.Buffer{}
		cmd := NewNextCommand(newTestRootOptions("text"))
		cmd.SetOut(buf)
		cmd.SetArgs([]string{"--count", "0"})

		require.NoError(t, cmd.Execute())
		assert.Empty(t, buf.String())
	})

	t.Run("json", func(t *testing.T) {
		buf := &bytes.Buffer{}
		cmd := NewNextCommand(newTestRootOptions("json"))
		cmd.SetOut(buf)
		cmd.SetArgs([]string{"--count", "0"})

		require.NoError(t, cmd.Execute())
		assert.Contains(t, buf.String(), `"primes":[]`)
	})
}

func TestNextCommandNegativeCount(t *testing.T) {
	cmd := NewNextCommand(newTestRootOptions("text"))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--count", "-1"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "non-negative")
}

func TestNextCommandRejectsArgs(t *testing.T) {
	cmd := NewNextCommand(newTestRootOptions("text"))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"7"})

	require.Error(t, cmd.Execute())
}

func TestNextCommandThousandthPrime(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewNextCommand(newTestRootOptions("text"))
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--count", "1000"})

	require.NoError(t, cmd.Execute())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1000)
	assert.Equal(t, "7919", lines[999])
}
