package gitrepo

import (
	"bytes"
	"regexp"
	"strconv"
)

// go-git hands the Progress writer the server's sideband verbatim,
// which for upload-pack looks like
//
//	"Enumerating objects: 1523, done."
//	"Counting objects:  45% (685/1523)\rCounting objects: 100% (1523/1523), done."
//	"Compressing objects: 100% (700/700), done."
//	"Total 1523 (delta 700), reused 1400 (delta 650), pack-reused 0"
//
// The object count comes from the Total line; Counting is the
// fallback for servers that never send one.
var (
	totalRgx    = regexp.MustCompile(`Total (\d+) \(`)
	countingRgx = regexp.MustCompile(`Counting objects:\s+(?:\d+% \(\d+/(\d+)\)|(\d+))`)
)

// transferTracker is the io.Writer handed to go-git as the progress
// sink. It parses the sideband lines and keeps the object counter at
// the highest value seen, so the final read after the clone returns
// is the cumulative transfer.
type transferTracker struct {
	stats *TransferStats
	buf   []byte
}

func newTransferTracker(stats *TransferStats) *transferTracker {
	return &transferTracker{stats: stats}
}

func (t *transferTracker) Write(p []byte) (int, error) {
	t.buf = append(t.buf, p...)
	for {
		i := bytes.IndexAny(t.buf, "\r\n")
		if i < 0 {
			break
		}
		t.parseLine(string(t.buf[:i]))
		t.buf = t.buf[i+1:]
	}
	// Progress lines end in \r; the final "done" line may not, so the
	// remainder is parsed too. Parsing is idempotent, the counter only
	// goes up.
	t.parseLine(string(t.buf))
	return len(p), nil
}

func (t *transferTracker) parseLine(line string) {
	if m := totalRgx.FindStringSubmatch(line); m != nil {
		t.bumpObjects(m[1])
		return
	}
	if m := countingRgx.FindStringSubmatch(line); m != nil {
		count := m[1]
		if count == "" {
			count = m[2]
		}
		t.bumpObjects(count)
	}
}

func (t *transferTracker) bumpObjects(count string) {
	objects, err := strconv.Atoi(count)
	if err == nil && objects > t.stats.ReceivedObjects {
		t.stats.ReceivedObjects = objects
	}
}
