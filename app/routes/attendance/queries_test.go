package attendance

import "testing"

func TestDateKey(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"2024-03-10", "20240310", true},
		{"2024-12-01", "20241201", true},
		{"2024-13-01", "", false},
		{"10-03-2024", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := dateKey(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("dateKey(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestSlotKey(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"18:00", "18_00", true},
		{"09:30", "09_30", true},
		{"24:00", "", false},
		{"6pm", "", false},
	}

	for _, tt := range tests {
		got, ok := slotKey(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("slotKey(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestDisplayRoundtrip(t *testing.T) {
	if got := displayDate("20240310"); got != "2024-03-10" {
		t.Errorf("displayDate = %q", got)
	}
	if got := displaySlot("18_00"); got != "18:00" {
		t.Errorf("displaySlot = %q", got)
	}
}
