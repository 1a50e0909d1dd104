package constants

// TaskStatus is the lifecycle state of a task. A task moves strictly
// forward: open -> pending_verification -> completed.
type TaskStatus string

const (
	StatusOpen                TaskStatus = "open"
	StatusPendingVerification TaskStatus = "pending_verification"
	StatusCompleted           TaskStatus = "completed"
)

var transitions = map[TaskStatus]TaskStatus{
	StatusOpen:                StatusPendingVerification,
	StatusPendingVerification: StatusCompleted,
}

// CanTransitionTo reports whether next is the single legal successor of s.
func (s TaskStatus) CanTransitionTo(next TaskStatus) bool {
	return transitions[s] == next
}

func (s TaskStatus) Valid() bool {
	switch s {
	case StatusOpen, StatusPendingVerification, StatusCompleted:
		return true
	}
	return false
}
