package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverallScore_Weighting(t *testing.T) {
	// 0.5*100*0.35 + 80*0.20 + 60*0.25 + 40*0.20 = 56.5, rounds to 57.
	assert.Equal(t, 57, OverallScore(0.5, 80, 60, 40))
}

func TestOverallScore_Bounds(t *testing.T) {
	assert.Equal(t, 100, OverallScore(1.0, 100, 100, 100))
	assert.Equal(t, 0, OverallScore(0, 0, 0, 0))
}

func TestOverallScore_SkillsOnly(t *testing.T) {
	assert.Equal(t, 35, OverallScore(1.0, 0, 0, 0))
}

func TestClampScore(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want int
	}{
		{"negative clamps to zero", -5, 0},
		{"over hundred clamps", 150, 100},
		{"rounds down", 49.4, 49},
		{"rounds half up", 49.5, 50},
		{"exact", 72, 72},
		{"zero", 0, 0},
		{"hundred", 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampScore(tt.in))
		})
	}
}
