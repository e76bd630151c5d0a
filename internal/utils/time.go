package util

import (
	"strings"
	"time"
)

// UTCTime renders as an ISO-8601 UTC timestamp with millisecond precision.
type UTCTime struct {
	time.Time
}

const layout = "2006-01-02T15:04:05.000Z07:00"

func NewUTCTime(t time.Time) UTCTime {
	return UTCTime{Time: t.UTC()}
}

func (t *UTCTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return err
	}
	t.Time = parsed.UTC()
	return nil
}

func (t UTCTime) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + t.String() + `"`), nil
}

func (t UTCTime) String() string {
	return t.UTC().Format(layout)
}
