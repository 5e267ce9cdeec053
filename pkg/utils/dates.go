package utils

import "time"

const DateLayout = "2006-01-02"

// ParseDate validates a YYYY-MM-DD string and returns its time value.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

func Today() string {
	return time.Now().Format(DateLayout)
}

// AddDays shifts a YYYY-MM-DD string by n calendar days.
func AddDays(date string, n int) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, n).Format(DateLayout), nil
}
