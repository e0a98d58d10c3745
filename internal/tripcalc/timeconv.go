package tripcalc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidTimeFormat is returned for clock text that matches neither
// "h:mm AM/PM" nor 24-hour "HH:MM".
var ErrInvalidTimeFormat = errors.New("invalid time format")

// To24Hour converts "h:mm AM/PM" (1-2 digit hour, 2-digit minute,
// case-insensitive meridiem) into "HH:MM".
func To24Hour(s string) (string, error) {
	parts := strings.Fields(strings.TrimSpace(s))
	if len(parts) != 2 {
		return "", ErrInvalidTimeFormat
	}

	h, m, err := splitClock(parts[0], 1, 12)
	if err != nil {
		return "", err
	}

	switch strings.ToUpper(parts[1]) {
	case "AM":
		if h == 12 {
			h = 0
		}
	case "PM":
		if h != 12 {
			h += 12
		}
	default:
		return "", ErrInvalidTimeFormat
	}

	return fmt.Sprintf("%02d:%02d", h, m), nil
}

// To12Hour converts 24-hour "HH:MM" into "h:mm AM/PM".
// Hour 0 renders as "12:MM AM", hour 12 as "12:MM PM".
func To12Hour(s string) (string, error) {
	h, m, err := splitClock(strings.TrimSpace(s), 0, 23)
	if err != nil {
		return "", err
	}

	meridiem := "AM"
	if h >= 12 {
		meridiem = "PM"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", h12, m, meridiem), nil
}

// Normalize24 accepts either 24-hour "HH:MM" or 12-hour "h:mm AM/PM"
// (Adhoc screens capture 12-hour text) and yields zero-padded "HH:MM".
func Normalize24(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrInvalidTimeFormat
	}
	if h, m, err := splitClock(s, 0, 23); err == nil {
		return fmt.Sprintf("%02d:%02d", h, m), nil
	}
	return To24Hour(s)
}

// DurationHours computes elapsed hours from start to end, both 24-hour
// "HH:MM". A negative span is taken to cross midnight and gets 24 hours
// added. The result is a fixed-2 decimal string.
func DurationHours(start, end string) (string, error) {
	sh, sm, err := splitClock(strings.TrimSpace(start), 0, 23)
	if err != nil {
		return "", err
	}
	eh, em, err := splitClock(strings.TrimSpace(end), 0, 23)
	if err != nil {
		return "", err
	}

	minutes := (eh*60 + em) - (sh*60 + sm)
	if minutes < 0 {
		minutes += 24 * 60
	}

	hours := decimal.NewFromInt(int64(minutes)).Div(decimal.NewFromInt(60))
	return hours.Round(2).StringFixed(2), nil
}

// splitClock parses "h:mm" with the hour constrained to [minHour,maxHour]
// and a mandatory 2-digit minute.
func splitClock(s string, minHour, maxHour int) (int, int, error) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, ErrInvalidTimeFormat
	}
	if len(hh) < 1 || len(hh) > 2 || len(mm) != 2 {
		return 0, 0, ErrInvalidTimeFormat
	}

	h, err := strconv.Atoi(hh)
	if err != nil || h < minHour || h > maxHour {
		return 0, 0, ErrInvalidTimeFormat
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return 0, 0, ErrInvalidTimeFormat
	}
	return h, m, nil
}
