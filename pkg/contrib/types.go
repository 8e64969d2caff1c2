package contrib

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"time"
)

// DateLayout is the layout of every date in the payload.
const DateLayout = "2006-01-02"

// Data is the contribution calendar of one user.
type Data struct {
	Years         []Year         `json:"years"`
	Contributions []Contribution `json:"contributions"`
}

// Year summarises one calendar year.
type Year struct {
	Year  string `json:"year"`
	Total int    `json:"total"`
	Range Range  `json:"range"`
}

// Range is the inclusive first and last day a year covers.
type Range struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Contribution is the activity of a single day.
type Contribution struct {
	Date      string    `json:"date"`
	Count     int       `json:"count"`
	Color     string    `json:"color,omitempty"`
	Intensity Intensity `json:"intensity"`
}

// Intensity buckets a day's count into 0 (none) through 4 (most).
// Some API versions send it as a quoted number, so both forms decode.
type Intensity int

// MaxIntensity is the highest bucket.
const MaxIntensity Intensity = 4

// UnmarshalJSON accepts 3 and "3".
func (i *Intensity) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(b, `"`)
	if len(b) == 0 || string(b) == "null" {
		*i = 0
		return nil
	}
	n, err := strconv.Atoi(string(b))
	if err != nil {
		return fmt.Errorf("intensity: %w", err)
	}
	*i = Intensity(n).Clamp()
	return nil
}

// MarshalJSON always writes a number.
func (i Intensity) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(i))
}

// Clamp limits i to [0, MaxIntensity].
func (i Intensity) Clamp() Intensity {
	return min(max(i, 0), MaxIntensity)
}

// Empty reports whether the calendar has no years, i.e. the profile was not
// found.
func (d *Data) Empty() bool {
	return d == nil || len(d.Years) == 0
}

// Days returns the contributions that fall inside y's range, oldest first.
// Entries with unparsable dates are skipped.
func (d *Data) Days(y Year) []Day {
	start, err1 := time.Parse(DateLayout, y.Range.Start)
	end, err2 := time.Parse(DateLayout, y.Range.End)
	if err1 != nil || err2 != nil {
		return nil
	}

	var days []Day
	for _, c := range d.Contributions {
		t, err := time.Parse(DateLayout, c.Date)
		if err != nil || t.Before(start) || t.After(end) {
			continue
		}
		days = append(days, Day{Date: t, Count: c.Count, Intensity: c.Intensity.Clamp()})
	}
	slices.SortFunc(days, func(a, b Day) int { return a.Date.Compare(b.Date) })
	return days
}

// Day is a parsed Contribution.
type Day struct {
	Date      time.Time
	Count     int
	Intensity Intensity
}
