package gitlab

import (
	"fmt"

	"labclone/internal/gitrepo"
	logger "labclone/internal/log"
	"labclone/internal/progress"
)

const ProjectChannelBufferSize = 500
const ActionChannelBufferSize = 500

// ProjectLister is the slice of the API the discovery producer needs.
type ProjectLister interface {
	ListProjects(idAfter uint64) ([]Project, error)
}

type ChanneledApi struct {
	api ProjectLister
}

func NewChanneledApi(api ProjectLister) *ChanneledApi {
	return &ChanneledApi{api: api}
}

// StreamProjects walks the listing to exhaustion, publishing every
// project of every page in page order, each preceded by its ToClone
// announcement on the action channel. It stops on an empty page or
// when a page ends on the same id as the previous one, which guards
// against a server re-serving its tail page forever. Any listing
// failure aborts discovery: later pages depend on the cursor of the
// failed one, so there is nothing local to recover. Both channels are
// closed on return, success or failure.
func (channeledApi *ChanneledApi) StreamProjects(projects chan<- Project, actions chan<- progress.Action) error {
	defer close(projects)
	defer close(actions)

	var idAfter uint64
	for {
		page, err := channeledApi.api.ListProjects(idAfter)
		if err != nil {
			return fmt.Errorf("failed to list projects after id %d: %w", idAfter, err)
		}
		if len(page) == 0 {
			logger.Log.Debugf("Listing exhausted after id %d", idAfter)
			return nil
		}

		lastID := page[len(page)-1].ID
		for _, project := range page {
			actions <- progress.ToClone()
			projects <- project
		}

		if lastID == idAfter {
			// Fixed point: the server returned the previous tail again.
			logger.Log.Debugf("Listing repeated tail id %d, stopping", lastID)
			return nil
		}
		idAfter = lastID
	}
}

// ConvertProjectsToRepos adapts discovered projects into clone-ready
// repositories carrying the run's clone options.
func ConvertProjectsToRepos(projects <-chan Project, options gitrepo.CloneOptions) <-chan *gitrepo.Repository {
	repoChannel := make(chan *gitrepo.Repository, ProjectChannelBufferSize)
	go func() {
		for receivedProject := range projects {
			repoChannel <- &gitrepo.Repository{
				ID:                receivedProject.ID,
				SSHURLToRepo:      receivedProject.SSHURLToRepo,
				HTTPURLToRepo:     receivedProject.HTTPURLToRepo,
				PathWithNamespace: receivedProject.PathWithNamespace,
				CloneOptions:      options,
			}
		}
		close(repoChannel)
	}()
	return repoChannel
}
