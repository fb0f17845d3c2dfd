package terminal

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-cli/internal/session"
)

func TestInputReadsTwoPrompts(t *testing.T) {
	var prompts bytes.Buffer
	in := NewInput(strings.NewReader("3\n7\n"), &prompts)

	x, y, err := in.ReadCoordinates(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, x)
	assert.Equal(t, 7, y)
	assert.Equal(t, "x: y: ", prompts.String())

	_, _, err = in.ReadCoordinates(context.Background())
	assert.ErrorIs(t, err, io.EOF)
}

func TestInputReadsSingleLine(t *testing.T) {
	in := NewInput(strings.NewReader("4 5\n"), io.Discard)

	x, y, err := in.ReadCoordinates(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, x)
	assert.Equal(t, 5, y)
}

func TestInputParseFailure(t *testing.T) {
	var prompts bytes.Buffer
	in := NewInput(strings.NewReader("abc\n1\nzz\n2\n3\n"), &prompts)

	_, _, err := in.ReadCoordinates(context.Background())
	assert.ErrorIs(t, err, session.ErrParseFailure)
	// a bad x is reported without asking for y
	assert.Equal(t, "x: ", prompts.String())

	_, _, err = in.ReadCoordinates(context.Background())
	assert.ErrorIs(t, err, session.ErrParseFailure)

	x, y, err := in.ReadCoordinates(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, x)
	assert.Equal(t, 3, y)
}

func TestInputCancelled(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()

	in := NewInput(r, io.Discard)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := in.ReadCoordinates(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestInputCloseStopsScanner(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()

	in := NewInput(r, io.Discard)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := in.ReadCoordinates(ctx)
	require.ErrorIs(t, err, context.Canceled)

	require.NoError(t, in.Close())
	go w.Write([]byte("1 2\n"))

	select {
	case <-in.stopped:
	case <-time.After(time.Second):
		t.Fatal("scanner goroutine still blocked after Close")
	}
}
