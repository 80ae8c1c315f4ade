// internal/domain/review/status.go
package review

// Status is the review state of a homework submission as reported by the review API.
type Status string

const (
	StatusApproved  Status = "approved"
	StatusReviewing Status = "reviewing"
	StatusRejected  Status = "rejected"
)

var verdicts = map[Status]string{
	StatusApproved:  "The work has been reviewed: the reviewer liked everything. Hooray!",
	StatusReviewing: "The work has been taken for review by the reviewer.",
	StatusRejected:  "The work has been reviewed: the reviewer has comments.",
}

// Verdict returns the display sentence for a status and whether the status is known.
func Verdict(s Status) (string, bool) {
	v, ok := verdicts[s]
	return v, ok
}

// Known reports whether s belongs to the status catalog.
func (s Status) Known() bool {
	_, ok := verdicts[s]
	return ok
}
