package terminal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-cli/internal/mines"
)

func TestRenderHidden(t *testing.T) {
	b, err := mines.NewBoardFromMines(3, 2, []int{5})
	require.NoError(t, err)

	var out bytes.Buffer
	r := NewRenderer(&out)
	require.NoError(t, r.Render(b, false))

	want := "" +
		"    0  1  2\n" +
		" 0  .  .  . \n" +
		" 1  .  .  . \n"
	assert.Equal(t, want, out.String())
}

func TestRenderRevealed(t *testing.T) {
	b, err := mines.NewBoardFromMines(3, 2, []int{5})
	require.NoError(t, err)
	_, err = b.Reveal(0, 0)
	require.NoError(t, err)

	var out bytes.Buffer
	r := NewRenderer(&out)
	require.NoError(t, r.Render(b, false))

	want := "" +
		"    0  1  2\n" +
		" 0  0  1  . \n" +
		" 1  0  1  . \n"
	assert.Equal(t, want, out.String())

	out.Reset()
	require.NoError(t, r.Render(b, true))
	want = "" +
		"    0  1  2\n" +
		" 0  0  1  1 \n" +
		" 1  0  1 *  \n"
	assert.Equal(t, want, out.String())
}

func TestRenderWideBoardAlignsIndices(t *testing.T) {
	b, err := mines.NewBoardFromMines(12, 11, nil)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, NewRenderer(&out).Render(b, false))

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 12)
	assert.True(t, strings.HasSuffix(lines[0], " 9 10 11"))
	assert.True(t, strings.HasPrefix(lines[11], "10  . "))
}

func TestRenderClearsScreen(t *testing.T) {
	b, err := mines.NewBoardFromMines(1, 1, nil)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, NewRenderer(&out, WithClear(true)).Render(b, false))
	assert.True(t, strings.HasPrefix(out.String(), clearScreen))
}

func TestNoticeSurvivesOneRedraw(t *testing.T) {
	b, err := mines.NewBoardFromMines(1, 1, nil)
	require.NoError(t, err)

	var out bytes.Buffer
	r := NewRenderer(&out, WithClear(true))

	require.NoError(t, r.Notify("try again"))
	assert.Equal(t, "try again\n", out.String())

	out.Reset()
	require.NoError(t, r.Render(b, false))
	assert.True(t, strings.HasSuffix(out.String(), " 0  . \ntry again\n"))

	out.Reset()
	require.NoError(t, r.Render(b, false))
	assert.NotContains(t, out.String(), "try again")
}

func TestNoticePrintedOnceWithoutClear(t *testing.T) {
	b, err := mines.NewBoardFromMines(1, 1, nil)
	require.NoError(t, err)

	var out bytes.Buffer
	r := NewRenderer(&out)

	require.NoError(t, r.Notify("try again"))
	require.NoError(t, r.Render(b, false))
	assert.Equal(t, "try again\n    0\n 0  . \n", out.String())
}

func TestColorKeepsCellText(t *testing.T) {
	b, err := mines.NewBoardFromMines(2, 1, []int{1})
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, NewRenderer(&out, WithColor(true)).Render(b, true))
	assert.Contains(t, out.String(), "1")
	assert.Contains(t, out.String(), "*")
	assert.False(t, IsTerminal(&out))
}
