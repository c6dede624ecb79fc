package view

import (
	"fmt"
	"io"
	"strings"

	"labclone/internal/color"
	"labclone/internal/counter"
	"labclone/internal/ext"
)

// ErrorView renders nothing until at least one failure was counted,
// then points at the log file carrying the causes.
type ErrorView struct {
	failedCount *counter.Counter
	logFilePath string
	stdout      io.Writer
}

func NewErrorView(failedCount *counter.Counter, logFilePath string, stdout io.Writer) *ErrorView {
	return &ErrorView{
		failedCount: failedCount,
		logFilePath: logFilePath,
		stdout:      stdout,
	}
}

func (v ErrorView) Render(int) int {
	failed := v.failedCount.Count()
	if failed == 0 {
		return 0
	}
	out := fmt.Sprintf("--- %s failed ---\nSee log file:\n%s\n",
		color.FgRed(fmt.Sprintf("%d", failed)),
		color.FgMagenta(ext.ReplaceHomeDirWithTilde(v.logFilePath)))
	_, err := fmt.Fprint(v.stdout, out)
	if err != nil {
		return 0
	}
	return strings.Count(out, "\n")
}
