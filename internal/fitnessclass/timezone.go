package fitnessclass

import (
	"errors"
	"time"
)

var ErrInvalidDateTime = errors.New("invalid dateTime")

var wallClockLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

// ParseDateTime reads a timestamp for storage and returns it in UTC. Values
// without an offset are wall-clock time in loc; an explicit offset wins.
func ParseDateTime(value string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t.UTC(), nil
	}

	for _, layout := range wallClockLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, ErrInvalidDateTime
}

func toDisplay(classes []FitnessClass, loc *time.Location) {
	for i := range classes {
		classes[i].DateTime = classes[i].DateTime.In(loc)
	}
}
