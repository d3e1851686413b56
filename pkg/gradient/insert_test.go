package gradient_test

import (
	"testing"

	"github.com/alkime/gradients/pkg/gradient"
	"github.com/stretchr/testify/assert"
)

func TestInsertPosition(t *testing.T) {
	tests := []struct {
		name      string
		positions []int
		want      int
	}{
		{"no stops", nil, 50},
		{"single stop below half", []int{30}, 65},
		{"single stop at half", []int{50}, 25},
		{"single stop above half", []int{90}, 45},
		{"single stop at zero", []int{0}, 50},
		{"ends only", []int{0, 100}, 50},
		{"leading gap", []int{40, 60, 100}, 20},
		{"trailing gap", []int{0, 20, 40}, 70},
		{"middle gap", []int{0, 10, 90, 100}, 50},
		{"rounds half up", []int{0, 25, 100}, 63},
		{"earliest gap wins ties", []int{0, 50, 100}, 25},
		{"trailing tie loses", []int{25, 50, 75}, 13},
		{"all stacked at end", []int{100, 100}, 50},
		{"stacked at zero", []int{0, 0}, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, gradient.InsertPosition(tt.positions))
		})
	}
}
