package terminalView

import (
	"fmt"
	"io"
	"strings"
	"time"

	"labclone/internal/color"
	logger "labclone/internal/log"
	"labclone/internal/view"
)

// CloneView renders the pipeline counters as three lines.
type CloneView struct {
	viewModel *CloneViewModel
	stdout    io.Writer
}

func NewCloneView(vm *CloneViewModel, stdout io.Writer) *CloneView {
	return &CloneView{viewModel: vm, stdout: stdout}
}

func (v *CloneView) Render(int) int {
	counts := v.viewModel.Counts
	out := fmt.Sprintf("%s projects discovered\n%s cloned, %s failed\n%s received\n",
		color.FgMagenta(fmt.Sprintf("%d", counts.Discovered.Count())),
		color.FgGreen(fmt.Sprintf("%d", counts.Cloned.Count())),
		color.FgRed(fmt.Sprintf("%d", counts.Failed.Count())),
		color.FgMagenta(view.FormatByteCount(counts.Bytes.Count())))
	_, err := fmt.Fprint(v.stdout, out)
	if err != nil {
		return 0
	}
	return strings.Count(out, "\n")
}

// CloneCommandView is the full terminal frame for one run: the
// counters plus the failure pointer and elapsed-time footers.
type CloneCommandView struct {
	compositeView *view.CompositeView
}

func NewCloneCommandView(vm *CloneViewModel, startTime time.Time, stdout io.Writer) *CloneCommandView {
	compositeView := view.NewCompositeView(make([]view.View, 0))
	compositeView.AddView(NewCloneView(vm, stdout))
	compositeView.AddFooter(view.NewErrorView(vm.Counts.Failed, logger.GetLogFilePath(), stdout))
	compositeView.AddFooter(view.NewTimeElapsedView(startTime, stdout, time.Since))

	return &CloneCommandView{compositeView: compositeView}
}

func (c CloneCommandView) Render(width int) (lines int) {
	return c.compositeView.Render(width)
}
