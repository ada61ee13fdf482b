package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TimeOfDay is a wall-clock time expressed as minutes since midnight.
// It carries no date and no timezone.
type TimeOfDay int

// ParseTimeOfDay parses a 24-hour "HH:mm" string.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var h, m int
	if _, err := fmt.Sscanf(strings.TrimSpace(s), "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	return TimeOfDay(h*60 + m), nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// Add returns the time shifted forward by the given number of minutes.
func (t TimeOfDay) Add(minutes int) TimeOfDay {
	return t + TimeOfDay(minutes)
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	parsed, err := ParseTimeOfDay(strings.Trim(string(data), `"`))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t TimeOfDay) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *TimeOfDay) Scan(src interface{}) error {
	switch v := src.(type) {
	case int64:
		*t = TimeOfDay(v)
		return nil
	case []byte:
		parsed, err := ParseTimeOfDay(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into TimeOfDay", src)
	}
}

// Date is a pure calendar date. It is interpreted as local wall-clock
// midnight and is never shifted through a UTC offset.
type Date struct {
	time.Time
}

const dateLayout = "2006-01-02"

// ParseDate parses a "YYYY-MM-DD" string in the local location.
func ParseDate(s string) (Date, error) {
	t, err := time.ParseInLocation(dateLayout, strings.TrimSpace(s), time.Local)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{Time: t}, nil
}

// NewDate truncates an instant to its local calendar date.
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, t.Location())}
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

// MidnightIn returns the date's midnight rebuilt in the given location,
// for windowing against instants regardless of how the date was hydrated.
func (d Date) MidnightIn(loc *time.Location) time.Time {
	y, m, day := d.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, loc)
}

// Equal reports whether two values name the same calendar date.
func (d Date) Equal(other Date) bool {
	y1, m1, d1 := d.Date()
	y2, m2, d2 := other.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	parsed, err := ParseDate(strings.Trim(string(data), `"`))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		// Drivers decode DATE columns at UTC midnight; rebuild the
		// calendar day at local midnight.
		y, m, day := v.Date()
		*d = Date{Time: time.Date(y, m, day, 0, 0, 0, 0, time.Local)}
		return nil
	case []byte:
		parsed, err := ParseDate(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}

// DayHours is the open/close pair for a weekday the salon is open.
type DayHours struct {
	Open  TimeOfDay `json:"open"`
	Close TimeOfDay `json:"close"`
}

// BusinessHours holds per-weekday opening hours. A weekday without an
// entry is closed.
type BusinessHours struct {
	days [7]*DayHours
}

// NewBusinessHours builds the weekly schedule, rejecting any day whose
// open time is not strictly before its close time.
func NewBusinessHours(days map[time.Weekday]DayHours) (BusinessHours, error) {
	var bh BusinessHours
	for weekday, hours := range days {
		if hours.Open >= hours.Close {
			return BusinessHours{}, fmt.Errorf("%s: open %s must be before close %s",
				weekday, hours.Open, hours.Close)
		}
		h := hours
		bh.days[int(weekday)] = &h
	}
	return bh, nil
}

// Day returns the hours for a weekday; ok is false when the day is closed.
func (b BusinessHours) Day(weekday time.Weekday) (DayHours, bool) {
	h := b.days[int(weekday)]
	if h == nil {
		return DayHours{}, false
	}
	return *h, true
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseBusinessHours parses a weekday→"HH:mm-HH:mm" map, with "closed"
// (or a missing entry) marking a closed day.
func ParseBusinessHours(spec map[string]string) (BusinessHours, error) {
	days := make(map[time.Weekday]DayHours)
	for name, value := range spec {
		weekday, ok := weekdayNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return BusinessHours{}, fmt.Errorf("unknown weekday %q", name)
		}
		value = strings.TrimSpace(value)
		if strings.EqualFold(value, "closed") || value == "" {
			continue
		}
		parts := strings.SplitN(value, "-", 2)
		if len(parts) != 2 {
			return BusinessHours{}, fmt.Errorf("%s: expected \"open-close\", got %q", name, value)
		}
		open, err := ParseTimeOfDay(parts[0])
		if err != nil {
			return BusinessHours{}, fmt.Errorf("%s: %w", name, err)
		}
		close, err := ParseTimeOfDay(parts[1])
		if err != nil {
			return BusinessHours{}, fmt.Errorf("%s: %w", name, err)
		}
		days[weekday] = DayHours{Open: open, Close: close}
	}
	return NewBusinessHours(days)
}

// BlockedDate is a calendar date on which no bookings are permitted
// regardless of business hours. Blocking is prospective only.
type BlockedDate struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Date      Date      `db:"blocked_on" json:"date"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
