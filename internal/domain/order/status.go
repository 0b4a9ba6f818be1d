package order

import "deal-marketplace/internal/pkg/errs"

var (
	ErrInvalidStatus     = errs.NewValidation("invalid status")
	ErrIllegalTransition = errs.NewConflict("illegal transition")
)

type Status string

const (
	StatusPlaced    Status = "Placed"
	StatusPreparing Status = "Preparing"
	StatusReady     Status = "Ready"
	StatusCompleted Status = "Completed"
)

// Sequence is the fulfillment order; position is the status index.
var Sequence = []Status{StatusPlaced, StatusPreparing, StatusReady, StatusCompleted}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if st.Index() < 0 {
		return "", ErrInvalidStatus
	}
	return st, nil
}

func (s Status) Index() int {
	for i, v := range Sequence {
		if v == s {
			return i
		}
	}
	return -1
}

func (s Status) String() string { return string(s) }

// CanAdvanceTo allows any strictly forward move, including skips.
func (s Status) CanAdvanceTo(target Status) error {
	if target.Index() < 0 {
		return ErrInvalidStatus
	}
	if target.Index() <= s.Index() {
		return ErrIllegalTransition
	}
	return nil
}

// StatusNames is Sequence in storage form.
func StatusNames() []string {
	out := make([]string, len(Sequence))
	for i, s := range Sequence {
		out[i] = string(s)
	}
	return out
}
