// internal/domain/review/homework.go
package review

import "time"

// Keys of the review API payload.
const (
	KeyHomeworks    = "homeworks"
	KeyCurrentDate  = "current_date"
	KeyHomeworkName = "homework_name"
	KeyStatus       = "status"
)

// Response is the decoded body of the homework statuses endpoint.
// Its shape is owned by the remote API, so it is kept as a generic JSON value
// and checked by ExtractLatest.
type Response = any

// Homework is a single submission record returned by the review API.
type Homework map[string]any

// Delivery describes a status notification that reached the chat.
type Delivery struct {
	ID           int64
	HomeworkName string
	Status       Status
	Message      string
	Cursor       int64 // from_date value that will be used by the next poll
	DeliveredAt  time.Time
}
