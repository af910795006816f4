package handle

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"alice", "alice"},
		{"@Alice", "alice"},
		{"  @ALICE ", "alice"},
		{"@ alice", "alice"},
		{"", ""},
		{"@", ""},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalize_SigilIsIgnored(t *testing.T) {
	for _, h := range []string{"alice", "Bob_99", "x.y", "MiXeD"} {
		if Normalize("@"+h) != Normalize(h) {
			t.Errorf("Normalize(@%s) != Normalize(%s)", h, h)
		}
	}
}
