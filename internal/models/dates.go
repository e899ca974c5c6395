package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const (
	// DateLayout is the on-disk format for calendar dates
	DateLayout = "2006-01-02"
	// TimestampLayout is the on-disk format for UTC timestamps
	TimestampLayout = "2006-01-02 15:04:05"
)

// Date is a calendar day persisted as yyyy-MM-dd text
type Date struct {
	time.Time
}

// NewDate truncates t to its calendar day
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current local calendar day
func Today() Date {
	return NewDate(time.Now())
}

// ParseDate parses yyyy-MM-dd
func ParseDate(s string) (Date, error) {
	t, err := parseLoose(s)
	if err != nil {
		return Date{}, err
	}
	return NewDate(t), nil
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

func (Date) GormDataType() string { return "text" }

func (d Date) Value() (driver.Value, error) {
	return d.Format(DateLayout), nil
}

// Scan accepts the text column, or whatever time value the driver produced.
// Unparseable values read back as today.
func (d *Date) Scan(value interface{}) error {
	t, ok := scanTime(value)
	if !ok {
		*d = Today()
		return nil
	}
	*d = NewDate(t)
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Timestamp is a UTC instant persisted as yyyy-MM-dd HH:mm:ss text
type Timestamp struct {
	time.Time
}

// Now returns the current UTC time at second precision
func Now() Timestamp {
	return Timestamp{time.Now().UTC().Truncate(time.Second)}
}

func (ts Timestamp) String() string {
	return ts.UTC().Format(TimestampLayout)
}

func (Timestamp) GormDataType() string { return "text" }

func (ts Timestamp) Value() (driver.Value, error) {
	return ts.UTC().Format(TimestampLayout), nil
}

func (ts *Timestamp) Scan(value interface{}) error {
	t, ok := scanTime(value)
	if !ok {
		*ts = Now()
		return nil
	}
	*ts = Timestamp{t.UTC()}
	return nil
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(ts.String())
}

func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	t, err := parseLoose(s)
	if err != nil {
		return err
	}
	*ts = Timestamp{t.UTC()}
	return nil
}

func scanTime(value interface{}) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		return v, true
	case string:
		t, err := parseLoose(v)
		return t, err == nil
	case []byte:
		t, err := parseLoose(string(v))
		return t, err == nil
	default:
		return time.Time{}, false
	}
}

var looseLayouts = []string{
	TimestampLayout,
	DateLayout,
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05",
}

func parseLoose(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range looseLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
