package model

import (
	"strings"
	"time"

	"github.com/rotisserie/eris"
)

// Date is a point in time that tolerates the two formats seen in
// exported files: full RFC 3339 timestamps (what the historical exporter
// wrote for date_creation) and bare YYYY-MM-DD dates.
type Date struct {
	time.Time
}

// NewDate wraps t as a Date.
func NewDate(t time.Time) *Date {
	return &Date{Time: t}
}

// UnmarshalJSON parses either an RFC 3339 timestamp or a bare date.
func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" || s == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return eris.Errorf("model: invalid date %q", s)
	}
	d.Time = t
	return nil
}

// MarshalJSON writes the date as an RFC 3339 timestamp.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.UTC().Format(time.RFC3339) + `"`), nil
}
