package progress

import (
	"fmt"
	"io"
	"time"

	"labclone/internal/color"
	"labclone/internal/counter"
	logger "labclone/internal/log"
	"labclone/internal/view"
)

// Counts are the live counters the terminal view reads while the
// aggregator is still consuming events.
type Counts struct {
	Discovered *counter.Counter
	Cloned     *counter.Counter
	Failed     *counter.Counter
	Bytes      *counter.Counter
}

func NewCounts() Counts {
	return Counts{
		Discovered: counter.NewCounter(),
		Cloned:     counter.NewCounter(),
		Failed:     counter.NewCounter(),
		Bytes:      counter.NewCounter(),
	}
}

// Summary is the final tally of a run.
type Summary struct {
	Total         int
	Cloned        int
	Failed        int
	ReceivedBytes int
	Elapsed       time.Duration
}

func (s Summary) Render(out io.Writer) {
	_, _ = fmt.Fprintf(out, "%s cloned, %s failed, %s received. %s seconds\n",
		color.FgGreen(fmt.Sprintf("%d/%d", s.Cloned, s.Total)),
		color.FgRed(fmt.Sprintf("%d", s.Failed)),
		color.FgMagenta(view.FormatByteCount(s.ReceivedBytes)),
		color.FgGreen(fmt.Sprintf("%.2f", s.Elapsed.Seconds())))
}

// Aggregator folds the event stream into counters and a per-project
// report line for every resolution.
type Aggregator struct {
	out       io.Writer
	counts    Counts
	startTime time.Time
}

func NewAggregator(out io.Writer, counts Counts, startTime time.Time) *Aggregator {
	return &Aggregator{out: out, counts: counts, startTime: startTime}
}

// Run consumes actions until the channel closes, then returns the
// final tally. The close of the fanned-in stream is the completion
// signal: discovery and the dispatcher each hold one upstream side, so
// a close implies discovery finished and every spawned worker has
// resolved. Declaring completion on todo reaching zero alone would
// race against projects still being discovered.
func (a *Aggregator) Run(actions <-chan Action) Summary {
	var todo, total, cloned, failed, receivedBytes int
	for action := range actions {
		switch action.Kind {
		case KindToClone:
			todo++
			total++
			a.counts.Discovered.Add(1)
		case KindCloned:
			todo--
			cloned++
			receivedBytes += action.ReceivedBytes
			a.counts.Cloned.Add(1)
			a.counts.Bytes.Add(action.ReceivedBytes)
			line := fmt.Sprintf("%s %s (%s, %d objects)",
				color.FgGreen("cloned"), action.ProjectPath,
				view.FormatByteCount(action.ReceivedBytes), action.ReceivedObjects)
			_, _ = fmt.Fprintln(a.out, line)
			logger.Log.Infof("Cloned %s: %d bytes, %d objects",
				action.ProjectPath, action.ReceivedBytes, action.ReceivedObjects)
		case KindFailed:
			todo--
			failed++
			a.counts.Failed.Add(1)
			line := fmt.Sprintf("%s %s: %s",
				color.FgRed("failed"), action.ProjectPath, action.Err)
			_, _ = fmt.Fprintln(a.out, line)
			logger.Log.Errorf("Failed to clone %s: %s", action.ProjectPath, action.Err)
		}
		if todo < 0 {
			logger.Log.Errorf("Resolution for %s observed before its announcement", action.ProjectPath)
		}
	}
	if todo != 0 {
		logger.Log.Errorf("Run finished with %d unresolved projects", todo)
	}
	return Summary{
		Total:         total,
		Cloned:        cloned,
		Failed:        failed,
		ReceivedBytes: receivedBytes,
		Elapsed:       time.Since(a.startTime),
	}
}
