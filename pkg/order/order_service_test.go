package order

import (
	"testing"
)

func TestGrossAmount(t *testing.T) {
	tests := []struct {
		name  string
		total float64
		want  int64
	}{
		{"whole amount unchanged", 163.00, 163},
		{"fraction above half rounds up", 163.99, 164},
		{"fraction below half rounds down", 163.49, 163},
		{"exact half rounds away from zero", 163.50, 164},
		{"zero stays zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := grossAmount(tt.total); got != tt.want {
				t.Errorf("grossAmount(%v) = %d, want %d", tt.total, got, tt.want)
			}
		})
	}
}
