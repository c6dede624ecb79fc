/*
Package progress carries the pipeline's event stream: one announcement
per discovered project and exactly one terminal event per announced
project, consumed by the Aggregator to decide when a run is done.
*/
package progress

type Kind int

const (
	// KindToClone announces one additional unit of work, emitted by
	// discovery before a clone of that project is attempted.
	KindToClone Kind = iota
	// KindCloned resolves a unit of work as mirrored, including the
	// case where the destination already held a repository.
	KindCloned
	// KindFailed resolves a unit of work as not cloneable.
	KindFailed
)

// Action is a single pipeline progress event. Actions are created by
// the discovery producer or a clone worker and passed by value to the
// Aggregator, which never retains them.
type Action struct {
	Kind            Kind
	ProjectPath     string
	ReceivedBytes   int
	ReceivedObjects int
	Err             string
}

func ToClone() Action {
	return Action{Kind: KindToClone}
}

func Cloned(projectPath string, receivedBytes, receivedObjects int) Action {
	return Action{
		Kind:            KindCloned,
		ProjectPath:     projectPath,
		ReceivedBytes:   receivedBytes,
		ReceivedObjects: receivedObjects,
	}
}

func Failed(projectPath string, err string) Action {
	return Action{Kind: KindFailed, ProjectPath: projectPath, Err: err}
}
