package override

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// Terminal prompts an operator on a line based terminal. An empty answer
// accepts the default time; end of input cancels.
type Terminal struct {
	mu     sync.Mutex
	reader *bufio.Reader
	writer io.Writer
}

func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		reader: bufio.NewReader(in),
		writer: out,
	}
}

func (t *Terminal) RequestOverrideTime(ctx context.Context, flightRef, defaultTime string) (string, bool) {
	if ctx.Err() != nil {
		return "", false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprintf(t.writer, "Departure time for flight %s (HH:MM) [%s]: ", flightRef, defaultTime)

	line, err := t.reader.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		if err != io.EOF {
			slog.WarnContext(ctx, "failed to read override time", slog.String("error", err.Error()))
		}
		return "", false
	}

	answer := strings.TrimSpace(line)
	if answer == "" {
		return defaultTime, true
	}

	return answer, true
}

// Choose asks a numbered question and returns the trimmed answer. It returns
// false when input ended.
func (t *Terminal) Choose(ctx context.Context, question string) (string, bool) {
	if ctx.Err() != nil {
		return "", false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprint(t.writer, question)

	line, err := t.reader.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}

	return strings.TrimSpace(line), true
}
