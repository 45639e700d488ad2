package service

import "math"

// RoundToHalf quantizes a band value to the nearest 0.5.
func RoundToHalf(v float64) float64 {
	return math.Round(v*2) / 2
}

// OverallBand computes the overall IELTS band from the four criterion bands:
// the mean, rounded to the nearest half point. Inputs are assumed to already
// be within [0, 9]; no clamping happens here.
func OverallBand(s ScoreSet) float64 {
	sum := s.TaskAchievement + s.CoherenceCohesion + s.LexicalResource + s.GrammaticalRange
	return RoundToHalf(sum / 4)
}
