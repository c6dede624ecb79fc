package gitrepo

import (
	"context"

	"golang.org/x/sync/errgroup"

	"labclone/internal/ext"
	"labclone/internal/progress"
)

// DefaultWorkerLimit bounds concurrent clones when no limit is
// configured. The original behavior was one unbounded goroutine per
// project; a bounded pool keeps open connections and file descriptors
// proportional to the limit instead of the backlog.
const DefaultWorkerLimit = 16

// CloneRepositories consumes repositories until the channel closes,
// running one worker per repository with at most workerLimit clones in
// flight. Each worker emits exactly one terminal action; the action
// channel is closed after the last worker resolves, which the
// aggregator relies on for completion detection. Worker failures are
// isolated: they surface as Failed actions, never abort the dispatch
// loop.
func CloneRepositories(ctx context.Context, repositories <-chan *Repository, actions chan<- progress.Action, mirrorer Mirrorer, workerLimit int) {
	defer close(actions)

	group, _ := errgroup.WithContext(ctx)
	group.SetLimit(ext.DefaultValue(workerLimit, DefaultWorkerLimit))
	for receivedRepo := range repositories {
		receivedRepo := receivedRepo
		group.Go(func() error {
			actions <- receivedRepo.Clone(mirrorer)
			return nil
		})
	}
	_ = group.Wait()
}
