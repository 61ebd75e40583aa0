package constants

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// DefaultColumnID is the status given to tasks created without one.
const DefaultColumnID = "backlog"
