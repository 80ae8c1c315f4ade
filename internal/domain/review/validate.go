// internal/domain/review/validate.go
package review

import (
	"encoding/json"
	"fmt"
	"math"
)

// ExtractLatest checks the shape of a review API response and returns the most recent homework,
// which the API puts first in the "homeworks" list.
func ExtractLatest(resp Response) (Homework, error) {
	body, ok := resp.(map[string]any)
	if !ok {
		return nil, &MalformedResponseError{Type: typeName(resp)}
	}

	raw, ok := body[KeyHomeworks]
	if !ok || raw == nil {
		return nil, &ParseError{Err: ErrHomeworksMissing}
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, &ParseError{Err: fmt.Errorf("%w: got %s", ErrHomeworksNotList, typeName(raw))}
	}
	if len(list) == 0 {
		return nil, &ParseError{Err: ErrHomeworksEmpty}
	}

	hw, ok := list[0].(map[string]any)
	if !ok {
		return nil, &ParseError{Err: fmt.Errorf("%w: got %s", ErrHomeworkNotObject, typeName(list[0]))}
	}
	return Homework(hw), nil
}

// NextCursor returns the "current_date" of the response when it is an integer newer than prev.
// Otherwise prev is kept, so the cursor never moves backwards.
func NextCursor(resp Response, prev int64) int64 {
	body, ok := resp.(map[string]any)
	if !ok {
		return prev
	}
	if next, ok := cursorValue(body[KeyCurrentDate]); ok && next > prev {
		return next
	}
	return prev
}

func cursorValue(v any) (int64, bool) {
	switch v := v.(type) {
	case json.Number:
		n, err := v.Int64()
		return n, err == nil
	case float64:
		// float64(math.MaxInt64) rounds up to 2^63, which is out of range.
		if v != math.Trunc(v) || v < math.MinInt64 || v >= math.MaxInt64 {
			return 0, false
		}
		return int64(v), true
	case int64:
		return v, true
	case int:
		return int64(v), true
	}
	return 0, false
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "list"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number, float64, int, int64:
		return "number"
	default:
		return fmt.Sprintf("%T", v)
	}
}
