package handlers

import "testing"

func TestAtoiOr(t *testing.T) {
	tests := []struct {
		name string
		in   string
		def  int
		want int
	}{
		{"empty uses default", "", 100, 100},
		{"valid number", "42", 0, 42},
		{"garbage uses default", "abc", 7, 7},
		{"negative passes through", "-3", 0, -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := atoiOr(tt.in, tt.def); got != tt.want {
				t.Errorf("atoiOr(%q, %d) = %d, want %d", tt.in, tt.def, got, tt.want)
			}
		})
	}
}
