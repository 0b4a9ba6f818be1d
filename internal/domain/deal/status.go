package deal

import "slices"

type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusSubmitted Status = "SUBMITTED"
	StatusPublished Status = "PUBLISHED"
	StatusRejected  Status = "REJECTED"
)

func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusDraft, StatusSubmitted, StatusPublished, StatusRejected:
		return st, nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) String() string { return string(s) }

// Editable reports whether owner edits are accepted in this status.
func (s Status) Editable() bool { return s == StatusDraft || s == StatusRejected }

func (s Status) Deletable() bool { return s == StatusDraft }

// Transition is one labelled edge of the moderation graph.
type Transition struct {
	Name string
	From []Status
	To   Status
}

var (
	Submit = Transition{Name: "submit", From: []Status{StatusDraft, StatusRejected}, To: StatusSubmitted}
	// Approve and Reject are admin-only.
	Approve = Transition{Name: "approve", From: []Status{StatusSubmitted}, To: StatusPublished}
	Reject  = Transition{Name: "reject", From: []Status{StatusSubmitted}, To: StatusRejected}
)

func (t Transition) Allows(from Status) bool {
	return slices.Contains(t.From, from)
}

// FromStrings is the source set in storage form.
func (t Transition) FromStrings() []string {
	out := make([]string, len(t.From))
	for i, s := range t.From {
		out[i] = string(s)
	}
	return out
}
