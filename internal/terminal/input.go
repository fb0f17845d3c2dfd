package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/vancomm/minesweeper-cli/internal/session"
)

// Input prompts for coordinates and reads one answer per line. A single
// "x y" line at the first prompt is accepted as well.
type Input struct {
	prompts io.Writer
	lines   chan string
	err     error /* set before lines is closed */

	done      chan struct{}
	closeOnce sync.Once
	stopped   chan struct{} /* closed when scan returns */
}

func NewInput(r io.Reader, prompts io.Writer) *Input {
	in := &Input{
		prompts: prompts,
		lines:   make(chan string),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go in.scan(bufio.NewScanner(r))
	return in
}

func (in *Input) scan(sc *bufio.Scanner) {
	defer close(in.stopped)
	defer close(in.lines)
	for sc.Scan() {
		select {
		case in.lines <- sc.Text():
		case <-in.done:
			return
		}
	}
	in.err = sc.Err()
}

// Close lets the scanning goroutine exit instead of waiting for a reader.
// A read already blocked on the underlying reader ends with that read.
func (in *Input) Close() error {
	in.closeOnce.Do(func() { close(in.done) })
	return nil
}

func (in *Input) readLine(ctx context.Context, prompt string) (string, error) {
	if _, err := fmt.Fprint(in.prompts, prompt); err != nil {
		return "", err
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-in.lines:
		if !ok {
			if in.err != nil {
				return "", in.err
			}
			return "", io.EOF
		}
		return line, nil
	}
}

func (in *Input) ReadCoordinates(ctx context.Context) (x, y int, err error) {
	line, err := in.readLine(ctx, "x: ")
	if err != nil {
		return 0, 0, err
	}
	if len(strings.Fields(line)) > 1 {
		return session.ParseCoordinates(line)
	}
	if x, err = session.ParseInt(line, "x"); err != nil {
		return 0, 0, err
	}

	line, err = in.readLine(ctx, "y: ")
	if err != nil {
		return 0, 0, err
	}
	if y, err = session.ParseInt(line, "y"); err != nil {
		return 0, 0, err
	}
	return x, y, nil
}
