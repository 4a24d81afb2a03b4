package date

import (
	"testing"
	"time"
)

func TestParseMonth(t *testing.T) {
	cases := []struct {
		in   string
		want Month
	}{
		{"2023-04", NewMonth(2023, time.April)},
		{"2023-4", NewMonth(2023, time.April)},
		{"1999-12", NewMonth(1999, time.December)},
	}
	for _, c := range cases {
		got, err := ParseMonth(c.in)
		if err != nil {
			t.Fatalf("ParseMonth(%q) unexpected error: %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("ParseMonth(%q) = %v; want %v", c.in, got, c.want)
		}
	}
}

func TestParseMonthInvalid(t *testing.T) {
	for _, in := range []string{"", "2023", "2023-13", "april"} {
		if _, err := ParseMonth(in); err == nil {
			t.Errorf("ParseMonth(%q) expected an error", in)
		}
	}
}

func TestMonthString(t *testing.T) {
	if got := NewMonth(2023, time.April).String(); got != "2023-04" {
		t.Errorf("String() = %q; want %q", got, "2023-04")
	}
	if got := (Month{}).String(); got != "" {
		t.Errorf("zero Month String() = %q; want empty", got)
	}
}

func TestMonthZero(t *testing.T) {
	if !(Month{}).IsZero() {
		t.Error("zero Month must report IsZero")
	}
	if NewMonth(2023, time.April).IsZero() {
		t.Error("2023-04 must not report IsZero")
	}
}

func TestMonthOf(t *testing.T) {
	at := time.Date(2023, time.April, 12, 10, 30, 0, 0, time.UTC)
	if got := MonthOf(at); got != NewMonth(2023, time.April) {
		t.Errorf("MonthOf(%v) = %v; want 2023-04", at, got)
	}
}

func TestMonthBefore(t *testing.T) {
	a := NewMonth(2023, time.April)
	b := NewMonth(2023, time.May)
	if !a.Before(b) {
		t.Errorf("%v must be before %v", a, b)
	}
	if b.Before(a) {
		t.Errorf("%v must not be before %v", b, a)
	}
}
