package renderer

import (
	"testing"
	"time"
)

func TestNl2br(t *testing.T) {
	got := string(nl2br("Hi <b>there</b>\nbye"))
	want := "Hi &lt;b&gt;there&lt;/b&gt;<br>bye"
	if got != want {
		t.Errorf("nl2br() = %q, want %q", got, want)
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	var nilTime *time.Time
	tests := []struct {
		in   interface{}
		want string
	}{
		{d, "Mar 5, 2024"},
		{&d, "Mar 5, 2024"},
		{nilTime, ""},
		{time.Time{}, ""},
		{"2024-03-05", ""},
	}
	for _, tt := range tests {
		if got := formatDate(tt.in); got != tt.want {
			t.Errorf("formatDate(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
