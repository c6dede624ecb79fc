package gitrepo

import "fmt"

// CloneMethod selects the transport, and with it which remote URL a
// project is cloned from. Fixed for the duration of a run.
type CloneMethod int

const (
	Https CloneMethod = iota
	Ssh
)

func ParseCloneMethod(s string) (CloneMethod, error) {
	switch s {
	case "https":
		return Https, nil
	case "ssh":
		return Ssh, nil
	}
	return Https, fmt.Errorf("unknown clone method %q, expected https or ssh", s)
}

func (m CloneMethod) String() string {
	if m == Ssh {
		return "ssh"
	}
	return "https"
}
