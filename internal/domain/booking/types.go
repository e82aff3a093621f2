package booking

// Status is the five-value booking lifecycle state. The zero value is not
// a valid status.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCanceled  Status = "canceled"
	StatusRejected  Status = "rejected"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCanceled, StatusRejected:
		return true
	default:
		return false
	}
}

// IsActive reports whether the booking still holds its walker's time slot.
// Only active bookings participate in conflict detection.
func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}

// IsTerminal reports whether no further transition is legal.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusCanceled, StatusRejected:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the edge exists in the lifecycle graph,
// ignoring actor and guard checks.
func (s Status) CanTransitionTo(target Status) bool {
	_, ok := transitionRules[s][target]
	return ok
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
