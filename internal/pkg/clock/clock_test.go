package clock

import (
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	cases := []struct {
		offset  string
		seconds int
		wantErr bool
	}{
		{"", 0, false},
		{"+05:30", 5*3600 + 30*60, false},
		{"-03:00", -3 * 3600, false},
		{"+00:00", 0, false},
		{"0530", 0, true},
		{"x05:30", 0, true},
	}
	for _, c := range cases {
		clk, err := New(c.offset)
		if c.wantErr {
			if err == nil {
				t.Errorf("New(%q) expected error, got nil", c.offset)
			}
			continue
		}
		if err != nil {
			t.Errorf("New(%q) unexpected error: %v", c.offset, err)
			continue
		}
		_, gotSeconds := time.Now().In(clk.Location()).Zone()
		if gotSeconds != c.seconds {
			t.Errorf("New(%q) offset = %d seconds, want %d", c.offset, gotSeconds, c.seconds)
		}
	}
}

func TestFixed(t *testing.T) {
	at := time.Date(2024, 4, 15, 10, 30, 0, 0, time.UTC)
	clk := Fixed{At: at}
	if !clk.Now().Equal(at) {
		t.Errorf("Fixed.Now() = %v, want %v", clk.Now(), at)
	}
}

func TestKeys(t *testing.T) {
	at := time.Date(2024, 4, 5, 10, 30, 0, 0, time.UTC)
	if got := MonthKey(at); got != "2024-04" {
		t.Errorf("MonthKey = %q, want 2024-04", got)
	}
	if got := DateKey(at); got != "2024-04-05" {
		t.Errorf("DateKey = %q, want 2024-04-05", got)
	}
}
