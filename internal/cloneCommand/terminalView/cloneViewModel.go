package terminalView

import (
	"labclone/internal/progress"
)

// CloneViewModel owns the live counters shared between the aggregator
// (writer) and the render loop (reader).
type CloneViewModel struct {
	Counts progress.Counts
}

func NewCloneViewModel() *CloneViewModel {
	return &CloneViewModel{Counts: progress.NewCounts()}
}
