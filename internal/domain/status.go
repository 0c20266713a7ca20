package domain

type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusQueued     Status = "queued"
	StatusProcessing Status = "processing"
	StatusSucceeded  Status = "succeeded"
	StatusFailed     Status = "failed"
)

var transitions = map[Status][]Status{
	StatusNotStarted: {StatusQueued},
	StatusQueued:     {StatusProcessing},
	StatusProcessing: {StatusSucceeded, StatusFailed},
}

// CanTransitionTo reports whether the lifecycle allows moving from s to next.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

func (s Status) IsTerminal() bool {
	return s == StatusSucceeded || s == StatusFailed
}

func (s Status) Valid() bool {
	switch s {
	case StatusNotStarted, StatusQueued, StatusProcessing, StatusSucceeded, StatusFailed:
		return true
	default:
		return false
	}
}
