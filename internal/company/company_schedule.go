package company

import (
	"fmt"
	"strings"
	"time"
)

// NormalizeClock accepts HH:MM or HH:MM:SS and returns HH:MM:SS.
func NormalizeClock(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("15:04:05"), nil
		}
	}
	return "", fmt.Errorf("invalid time of day %q", raw)
}

// ClockOffset is the distance from midnight of an HH:MM:SS value.
func ClockOffset(value string) (time.Duration, error) {
	norm, err := NormalizeClock(value)
	if err != nil {
		return 0, err
	}
	t, _ := time.Parse("15:04:05", norm)
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second, nil
}

// At places an HH:MM:SS value on the local calendar day of ref.
func At(ref time.Time, value string) (time.Time, error) {
	offset, err := ClockOffset(value)
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := ref.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, ref.Location()).Add(offset), nil
}
