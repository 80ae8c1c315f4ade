package review

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, body string) Response {
	t.Helper()
	dec := json.NewDecoder(strings.NewReader(body))
	dec.UseNumber()
	var v any
	require.NoError(t, dec.Decode(&v))
	return v
}

func TestExtractLatest_NotAnObject(t *testing.T) {
	for _, body := range []string{`[]`, `"text"`, `42`, `null`, `true`} {
		_, err := ExtractLatest(decode(t, body))

		var malformed *MalformedResponseError
		require.ErrorAs(t, err, &malformed, "body %s", body)
	}
}

func TestExtractLatest_BadHomeworkList(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{"missing key", `{"current_date": 1}`, ErrHomeworksMissing},
		{"null list", `{"homeworks": null}`, ErrHomeworksMissing},
		{"not a list", `{"homeworks": {"homework_name": "hw1"}}`, ErrHomeworksNotList},
		{"empty list", `{"homeworks": [], "current_date": 1700000000}`, ErrHomeworksEmpty},
		{"entry not an object", `{"homeworks": ["hw1"]}`, ErrHomeworkNotObject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExtractLatest(decode(t, tt.body))

			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestExtractLatest_ReturnsFirstEntry(t *testing.T) {
	resp := decode(t, `{"homeworks":[
		{"homework_name":"hw2","status":"reviewing"},
		{"homework_name":"hw1","status":"approved"}
	]}`)

	hw, err := ExtractLatest(resp)
	require.NoError(t, err)
	assert.Equal(t, "hw2", hw[KeyHomeworkName])
	assert.Equal(t, "reviewing", hw[KeyStatus])
}

func TestNextCursor(t *testing.T) {
	const prev = int64(1600000000)

	assert.Equal(t, int64(1700000000), NextCursor(decode(t, `{"current_date":1700000000}`), prev))
	assert.Equal(t, prev, NextCursor(decode(t, `{"homeworks":[]}`), prev))
	assert.Equal(t, prev, NextCursor(decode(t, `{"current_date":"yesterday"}`), prev))
	assert.Equal(t, prev, NextCursor(decode(t, `{"current_date":1.5}`), prev))
	assert.Equal(t, prev, NextCursor(decode(t, `[1700000000]`), prev))
	assert.Equal(t, int64(1700000000), NextCursor(map[string]any{KeyCurrentDate: float64(1700000000)}, prev))
}

func TestNextCursor_NeverMovesBackwards(t *testing.T) {
	const prev = int64(1700000000)

	assert.Equal(t, prev, NextCursor(decode(t, `{"current_date":0}`), prev))
	assert.Equal(t, prev, NextCursor(decode(t, `{"current_date":1}`), prev))
	assert.Equal(t, prev, NextCursor(decode(t, `{"current_date":-5}`), prev))
	assert.Equal(t, prev, NextCursor(decode(t, `{"current_date":1700000000}`), prev))
	assert.Equal(t, prev+1, NextCursor(decode(t, `{"current_date":1700000001}`), prev))
}

func TestNextCursor_OutOfRangeNumbers(t *testing.T) {
	const prev = int64(1700000000)

	assert.Equal(t, prev, NextCursor(decode(t, `{"current_date":1e30}`), prev))
	assert.Equal(t, prev, NextCursor(decode(t, `{"current_date":99999999999999999999}`), prev))
	assert.Equal(t, prev, NextCursor(map[string]any{KeyCurrentDate: float64(1e30)}, prev))
	assert.Equal(t, prev, NextCursor(map[string]any{KeyCurrentDate: float64(9223372036854775807)}, prev))
}
