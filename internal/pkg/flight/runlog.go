package flight

import "fmt"

// RunLog collects the human readable lines of one import run.
type RunLog struct {
	lines []string
}

func (l *RunLog) Addf(format string, args ...any) {
	if l == nil {
		return
	}
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

// Lines returns a copy of the collected lines.
func (l *RunLog) Lines() []string {
	if l == nil {
		return nil
	}

	lines := make([]string, len(l.lines))
	copy(lines, l.lines)

	return lines
}
