package utils

import (
	"errors"
	"testing"
)

func TestParseDate(t *testing.T) {
	if _, err := ParseDate("2026-02-07"); err != nil {
		t.Fatalf("valid date rejected: %v", err)
	}

	for _, bad := range []string{"07.02.2026", "2026-2-7", "2026-13-01", "", "yesterday"} {
		if _, err := ParseDate(bad); !errors.Is(err, ErrInvalidDate) {
			t.Errorf("ParseDate(%q): got %v, want ErrInvalidDate", bad, err)
		}
	}
}

func TestAddDays(t *testing.T) {
	got, err := AddDays("2026-02-01", 30)
	if err != nil {
		t.Fatal(err)
	}
	if got != "2026-03-03" {
		t.Errorf("AddDays(2026-02-01, 30) = %s, want 2026-03-03", got)
	}
}
