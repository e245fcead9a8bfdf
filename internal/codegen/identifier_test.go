package codegen

import "testing"

func TestIdentifier(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{name: "check", want: "Check"},
		{name: "arrow-up-right", want: "ArrowUpRight"},
		{name: "bar-chart-2", want: "BarChart2"},
		{name: "x", want: "X"},
		{name: "3d-box", want: "Icon3dBox"},
		{name: "element", want: "ElementIcon"},
		{name: "kind-path", want: "KindPathIcon"},
	}
	for _, tt := range tests {
		if got := Identifier(tt.name); got != tt.want {
			t.Errorf("Identifier(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestValidName(t *testing.T) {
	for _, name := range []string{"x", "arrow-up", "bar-chart-2"} {
		if !ValidName(name) {
			t.Errorf("expected %q to be valid", name)
		}
	}
	for _, name := range []string{"", "Arrow", "arrow--up", "-x", "x-", "arrow_up"} {
		if ValidName(name) {
			t.Errorf("expected %q to be invalid", name)
		}
	}
}
