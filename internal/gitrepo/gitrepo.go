package gitrepo

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/transport/ssh"

	"labclone/internal/color"
	logger "labclone/internal/log"
	"labclone/internal/progress"
)

// Repository is one unit of clone work, produced from a discovered
// project and consumed by exactly one worker.
type Repository struct {
	ID                uint64
	SSHURLToRepo      string
	HTTPURLToRepo     string
	PathWithNamespace string
	CloneOptions      CloneOptions
}

// RunCloneOptions is the CloneOptions of a normal run, resolved once
// at startup and shared read-only by every worker.
type RunCloneOptions struct {
	Directory   string
	CloneMethod CloneMethod
	KeyPath     string
}

func (o RunCloneOptions) CloneRootDirectory() string { return o.Directory }
func (o RunCloneOptions) Method() CloneMethod        { return o.CloneMethod }
func (o RunCloneOptions) SSHKeyPath() string         { return o.KeyPath }

func (project *Repository) cloneURL() string {
	if project.CloneOptions.Method() == Ssh {
		return project.SSHURLToRepo
	}
	return project.HTTPURLToRepo
}

// Clone mirrors the repository into root/path_with_namespace and
// returns the terminal event for the aggregator. A pre-existing
// destination resolves as cloned with whatever was transferred
// (normally nothing); any other failure resolves as failed and stays
// isolated to this repository.
func (project *Repository) Clone(mirrorer Mirrorer) progress.Action {
	destination := path.Join(project.CloneOptions.CloneRootDirectory(), project.PathWithNamespace)
	stats := &TransferStats{}

	logger.Log.Debugf("Cloning %s to %s", project.PathWithNamespace, destination)
	err := mirrorer.Mirror(project.cloneURL(), destination, stats)
	switch {
	case err == nil:
		logger.Log.Infof("Cloned %s to %s", color.FgMagenta(project.PathWithNamespace), color.FgMagenta(destination))
		return progress.Cloned(project.PathWithNamespace, stats.ReceivedBytes, stats.ReceivedObjects)
	case errors.Is(err, ErrRepositoryExists):
		logger.Log.Debugf("Repository %s already exists at %s, skipping clone", project.PathWithNamespace, destination)
		return progress.Cloned(project.PathWithNamespace, stats.ReceivedBytes, stats.ReceivedObjects)
	default:
		return progress.Failed(project.PathWithNamespace, err.Error())
	}
}

// GitMirrorer clones with go-git. The object count is sampled from
// the remote's sideband progress stream; received bytes are measured
// off the packfiles the clone writes, which are the raw transfer
// payload.
type GitMirrorer struct {
	options CloneOptions
}

func NewGitMirrorer(options CloneOptions) *GitMirrorer {
	return &GitMirrorer{options: options}
}

func (m *GitMirrorer) Mirror(url string, destination string, stats *TransferStats) error {
	cloneOptions := &git.CloneOptions{
		URL:      url,
		Progress: newTransferTracker(stats),
	}
	if m.options.Method() == Ssh {
		// The key file is read per attempt, never cached across workers.
		keys, err := ssh.NewPublicKeysFromFile("git", m.options.SSHKeyPath(), "")
		if err != nil {
			return fmt.Errorf("failed to load ssh key %s: %w", m.options.SSHKeyPath(), err)
		}
		cloneOptions.Auth = keys
	}

	_, err := git.PlainClone(destination, false, cloneOptions)
	if errors.Is(err, git.ErrRepositoryAlreadyExists) {
		return ErrRepositoryExists
	}
	if err != nil {
		return err
	}
	stats.ReceivedBytes = packfileBytes(destination)
	return nil
}

// packfileBytes sums the packfiles under the clone's .git directory.
// Pack indexes are computed locally and do not count as received.
func packfileBytes(destination string) int {
	packs, err := filepath.Glob(filepath.Join(destination, ".git", "objects", "pack", "*.pack"))
	if err != nil {
		return 0
	}
	total := 0
	for _, pack := range packs {
		if info, err := os.Stat(pack); err == nil {
			total += int(info.Size())
		}
	}
	return total
}
