package store

import "testing"

func TestPathBuilders(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"branches", BranchesPath("u1"), "clubs/u1/branches"},
		{"groups", GroupsPath("u1", "b1"), "clubs/u1/branches/b1/groups"},
		{"students", StudentsPath("u1", "g1"), "clubs/u1/students/g1"},
		{"trainers", TrainersPath("u1"), "clubs/u1/trainers"},
		{"attendance slot", AttendanceSlotPath("u1", "g1", "20240310", "18_00"), "clubs/u1/attendance/g1/20240310/18_00"},
		{"progress", ProgressPath("u1", "s1"), "clubs/u1/progress/s1"},
		{"matches", MatchesPath("u1"), "clubs/u1/matches"},
		{"payments", PaymentsPath("u1"), "clubs/u1/payments"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestValidPath(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"clubs/u1/payments", true},
		{"clubs/u1/attendance/g1/20240310/18_00", true},
		{"", false},
		{"clubs//payments", false},
		{"clubs/u1/..", false},
		{"clubs/u1/pay ments", false},
		{"clubs/u1/\n", false},
	}

	for _, tt := range tests {
		if got := ValidPath(tt.path); got != tt.want {
			t.Errorf("ValidPath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestOwnedBy(t *testing.T) {
	if !OwnedBy("clubs/u1/payments", "u1") {
		t.Error("own partition must be accessible")
	}
	if !OwnedBy("clubs/u1", "u1") {
		t.Error("partition root must be accessible")
	}
	if OwnedBy("clubs/u2/payments", "u1") {
		t.Error("foreign partition must be rejected")
	}
	if OwnedBy("clubs/u11/payments", "u1") {
		t.Error("owner id prefix match must not leak into another tenant")
	}
}

func TestSplit(t *testing.T) {
	parent, key := Split("clubs/u1/payments/p1")
	if parent != "clubs/u1/payments" || key != "p1" {
		t.Errorf("Split = (%q, %q)", parent, key)
	}

	parent, key = Split("lone")
	if parent != "" || key != "lone" {
		t.Errorf("Split of single segment = (%q, %q)", parent, key)
	}
}
