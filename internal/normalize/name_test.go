package normalize

import "testing"

func TestName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Ramón", "ramon"},
		{"  NICOLÁS  pérez ", "nicolas perez"},
		{"ñandú", "nandu"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Name(tt.in); got != tt.want {
			t.Errorf("Name(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
