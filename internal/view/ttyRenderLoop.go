package view

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"
)

// StartTTYRenderLoop redraws r in place until ctx is cancelled. file
// must be a terminal; its width is re-read every frame so resizes are
// picked up.
func StartTTYRenderLoop(ctx context.Context, r View, out io.Writer, file *os.File) {
	if !term.IsTerminal(int(file.Fd())) {
		panic(fmt.Errorf("cannot start a TTY render loop on a non-terminal file"))
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil {
		panic(err)
	}
	lineCount := r.Render(width)

	for {
		select {
		case <-ctx.Done():
			return
		default:
			width, _, err = term.GetSize(int(file.Fd()))
			if err != nil {
				return
			}
			_, err := fmt.Fprint(out, ansiLineOffset(lineCount))
			if err != nil {
				return
			}
			lineCount = r.Render(width)
			time.Sleep(100 * time.Millisecond) // Refresh rate
		}
	}
}
