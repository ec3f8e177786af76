package task

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date without time-of-day, rendered as yyyy-mm-dd.
type Date struct {
	t time.Time
}

// ParseDate accepts only a strict yyyy-mm-dd literal that names a real
// calendar date. Shape violations and impossible dates (2025-02-30) both
// report ErrDateParse.
func ParseDate(s string) (Date, error) {
	if !dateShapeOK(s) {
		return Date{}, fmt.Errorf("%w: %q (want yyyy-mm-dd)", ErrDateParse, s)
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrDateParse, s)
	}
	return Date{t: t}, nil
}

// dateShapeOK checks the 4-2-2 digit pattern without pulling in regexp.
func dateShapeOK(s string) bool {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return false
	}
	for i, c := range s {
		if i == 4 || i == 7 {
			continue
		}
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func (d Date) String() string {
	return d.t.Format(dateLayout)
}

func (d Date) IsZero() bool {
	return d.t.IsZero()
}

func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

// Time exposes the underlying instant (midnight UTC) for storage backends.
func (d Date) Time() time.Time {
	return d.t
}
