package pipeline

// Milestone is one fixed progress event of a build. Milestones are
// always delivered in declaration order.
type Milestone int

const (
	BoundsDone Milestone = iota
	FaceSurfaceDone
	ShellDone
	MergeDone
	TextureDone
	HeadwearDone
)

// String returns a human-readable milestone name.
func (ms Milestone) String() string {
	switch ms {
	case BoundsDone:
		return "bounds"
	case FaceSurfaceDone:
		return "face-surface"
	case ShellDone:
		return "shell"
	case MergeDone:
		return "merge"
	case TextureDone:
		return "texture"
	case HeadwearDone:
		return "headwear"
	default:
		return "unknown"
	}
}

// emit delivers a milestone without ever blocking the build: a slow or
// absent reader drops events rather than stalling geometry work.
func emit(ch chan<- Milestone, ms Milestone) {
	if ch == nil {
		return
	}
	select {
	case ch <- ms:
	default:
	}
}
