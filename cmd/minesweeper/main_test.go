package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vancomm/minesweeper-cli/internal/session"
)

func TestRunWins(t *testing.T) {
	var out bytes.Buffer
	code := run([]string{"--params", "1:1:0"}, strings.NewReader("0\n0\n"), &out)

	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "x: y: ")
	assert.Contains(t, out.String(), session.WinMessage)
}

func TestRunLoses(t *testing.T) {
	var out bytes.Buffer
	code := run([]string{"--params", "1:1:1"}, strings.NewReader("0 0\n"), &out)

	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), " 0 *  \n")
	assert.Contains(t, out.String(), session.LossMessage)
}

func TestRunRecoversFromBadInput(t *testing.T) {
	var out bytes.Buffer
	input := "nope\n7\n7\n0 0\n"
	code := run([]string{"--width", "1", "--height", "1", "-m", "0"}, strings.NewReader(input), &out)

	assert.Equal(t, 0, code)
	assert.Equal(t, 2, strings.Count(out.String(), session.InvalidInputMessage+"\n"+"   "))
	assert.Equal(t, 2, strings.Count(out.String(), session.InvalidInputMessage))
	assert.Contains(t, out.String(), session.WinMessage)
}

func TestRunEndOfInput(t *testing.T) {
	var out bytes.Buffer
	code := run([]string{"--seed", "3"}, strings.NewReader(""), &out)
	assert.Equal(t, 0, code)
	assert.NotContains(t, out.String(), session.WinMessage)
}

func TestRunRejectsBadConfig(t *testing.T) {
	var out bytes.Buffer
	assert.Equal(t, 2, run([]string{"--params", "2:2:5"}, strings.NewReader(""), &out))
	assert.Equal(t, 2, run([]string{"--width", "x"}, strings.NewReader(""), &out))
	assert.Empty(t, out.String())
}
