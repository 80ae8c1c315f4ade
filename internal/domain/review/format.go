// internal/domain/review/format.go
package review

import "fmt"

// FormatStatus builds the chat message announcing the review status of a homework.
func FormatStatus(hw Homework) (string, error) {
	name, ok := hw[KeyHomeworkName]
	if !ok {
		return "", &MissingFieldError{Field: KeyHomeworkName}
	}
	rawStatus, ok := hw[KeyStatus]
	if !ok {
		return "", &MissingFieldError{Field: KeyStatus}
	}

	s, ok := rawStatus.(string)
	if !ok {
		return "", &UnknownStatusError{Status: rawStatus}
	}
	verdict, ok := Verdict(Status(s))
	if !ok {
		return "", &UnknownStatusError{Status: s}
	}

	return fmt.Sprintf(`Changed review status for "%v". %s`, name, verdict), nil
}
