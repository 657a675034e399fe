package schedule

import (
	"errors"
	"fmt"
)

var ErrUnknownStatus = errors.New("schedule: unknown status code")

// Status classifies what a reservation means for the days it covers.
type Status string

const (
	StatusConfirmed Status = "CONFIRMED"
	StatusOption    Status = "OPTION"
	StatusBlocked   Status = "BLOCKED"
	StatusFree      Status = "FREE"
)

// statusPriority is the single ranking used everywhere a day is covered by
// more than one reservation. Higher wins.
var statusPriority = map[Status]int{
	StatusBlocked:   3,
	StatusOption:    2,
	StatusConfirmed: 1,
	StatusFree:      0,
}

// Priority returns the overlap rank of the status. Unknown statuses rank
// below every known one.
func (s Status) Priority() int {
	p, ok := statusPriority[s]
	if !ok {
		return -1
	}
	return p
}

func (s Status) Valid() bool {
	_, ok := statusPriority[s]
	return ok
}

// ChecksOutOnEndDate reports whether raw feed ranges for this status follow
// the checkout convention, where the given end date is the vacancy day
// rather than the last occupied night.
func (s Status) ChecksOutOnEndDate() bool {
	return s == StatusConfirmed || s == StatusFree
}

// ParseStatus maps a feed status code onto a Status.
func ParseStatus(code string) (Status, error) {
	switch code {
	case "booked":
		return StatusConfirmed, nil
	case "option":
		return StatusOption, nil
	case "blocked":
		return StatusBlocked, nil
	case "free":
		return StatusFree, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, code)
	}
}
