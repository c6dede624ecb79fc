package terminalView

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"labclone/internal/color"
)

func TestCloneViewRender(t *testing.T) {
	vm := NewCloneViewModel()
	vm.Counts.Discovered.Add(20)
	vm.Counts.Cloned.Add(18)
	vm.Counts.Failed.Add(2)
	vm.Counts.Bytes.Add(2048)

	var buf bytes.Buffer
	cloneView := NewCloneView(vm, &buf)

	lines := cloneView.Render(80)
	if lines != 3 {
		t.Errorf("expected 3 lines, got %d", lines)
	}

	expected := fmt.Sprintf("%s projects discovered\n%s cloned, %s failed\n%s received\n",
		color.FgMagenta("20"),
		color.FgGreen("18"),
		color.FgRed("2"),
		color.FgMagenta("2.0 KiB"))
	if buf.String() != expected {
		t.Errorf("Render() output mismatch.\nExpected:\n%q\nGot:\n%q", expected, buf.String())
	}
}

func TestCloneViewRenderZeroCounts(t *testing.T) {
	vm := NewCloneViewModel()
	var buf bytes.Buffer
	NewCloneView(vm, &buf).Render(80)

	if !strings.Contains(buf.String(), "0 B received") {
		t.Errorf("expected zero byte count, got %q", buf.String())
	}
}
