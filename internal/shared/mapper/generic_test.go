package mapper

import (
	"strconv"
	"testing"
)

func TestMapSlice(t *testing.T) {
	tests := []struct {
		name string
		in   []int
		want []string
	}{
		{"nil input", nil, []string{}},
		{"empty input", []int{}, []string{}},
		{"values", []int{1, 22, 333}, []string{"1", "22", "333"}},
	}
	for _, tt := range tests {
		got := MapSlice(tt.in, strconv.Itoa)
		if got == nil {
			t.Errorf("%s: MapSlice() returned nil", tt.name)
			continue
		}
		if len(got) != len(tt.want) {
			t.Errorf("%s: len = %d, want %d", tt.name, len(got), len(tt.want))
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("%s: [%d] = %q, want %q", tt.name, i, got[i], tt.want[i])
			}
		}
	}
}
