package flow

import "testing"

func TestIndexByName(t *testing.T) {
	instances := []Instance{
		{Name: "alpha", Pipeline: "p1"},
		{Name: "beta", Pipeline: "p2"},
	}

	tests := []struct {
		name string
		want int
	}{
		{"alpha", 0},
		{"beta", 1},
		{"ghost", -1},
		{"", -1},
	}

	for _, tt := range tests {
		if got := IndexByName(instances, tt.name); got != tt.want {
			t.Errorf("IndexByName(%q) = %d, want %d", tt.name, got, tt.want)
		}
	}

	if got := IndexByName(nil, "alpha"); got != -1 {
		t.Errorf("IndexByName(nil, alpha) = %d, want -1", got)
	}
}
