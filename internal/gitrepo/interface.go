package gitrepo

import "errors"

// ErrRepositoryExists reports that the destination already contains a
// repository. Callers treat it as "already satisfied", not a failure.
var ErrRepositoryExists = errors.New("repository already exists at destination")

// TransferStats accumulates cumulative transfer progress for one
// clone. Owned by a single worker and read only after the mirror
// operation returns; never shared across workers.
type TransferStats struct {
	ReceivedBytes   int
	ReceivedObjects int
}

// Mirrorer performs a full clone of a remote repository into a local
// destination, creating directories as needed and reporting transfer
// progress into stats. Implementations return ErrRepositoryExists
// when the destination already holds a repository.
type Mirrorer interface {
	Mirror(url string, destination string, stats *TransferStats) error
}

// CloneOptions carries the run-wide settings a clone worker needs to
// place and authenticate a single clone.
type CloneOptions interface {
	CloneRootDirectory() string
	Method() CloneMethod
	SSHKeyPath() string
}
