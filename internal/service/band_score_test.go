package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverallBand(t *testing.T) {
	tests := []struct {
		name   string
		scores ScoreSet
		want   float64
	}{
		{"mixed", ScoreSet{TaskAchievement: 6.5, CoherenceCohesion: 7, LexicalResource: 5.5, GrammaticalRange: 6}, 6.5},
		{"all nines", ScoreSet{TaskAchievement: 9, CoherenceCohesion: 9, LexicalResource: 9, GrammaticalRange: 9}, 9.0},
		{"all zeros", ScoreSet{}, 0.0},
		{"rounds up", ScoreSet{TaskAchievement: 6, CoherenceCohesion: 6, LexicalResource: 6, GrammaticalRange: 7}, 6.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OverallBand(tt.scores))
		})
	}
}

func TestOverallBand_HalfPointClosure(t *testing.T) {
	// Any four half-point inputs must aggregate to a half-point band.
	for a := 0.0; a <= 9; a += 0.5 {
		for b := 0.0; b <= 9; b += 1.5 {
			s := ScoreSet{TaskAchievement: a, CoherenceCohesion: b, LexicalResource: 4.5, GrammaticalRange: 7}
			band := OverallBand(s)
			assert.Zero(t, math.Mod(band*2, 1), "band %v is not a half point", band)
		}
	}
}

func TestRoundToHalf(t *testing.T) {
	assert.Equal(t, 6.5, RoundToHalf(6.25))
	assert.Equal(t, 6.0, RoundToHalf(6.24))
	assert.Equal(t, 7.0, RoundToHalf(6.75))
	assert.Equal(t, 0.0, RoundToHalf(0))
	assert.Equal(t, 9.0, RoundToHalf(9))
}
