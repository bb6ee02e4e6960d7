package ovr

import "math"

const (
	// Peer ratings run 1..10; 6 is a neutral performance.
	neutralRating = 6.0
	maxStep       = 2

	minOVR = 40
	maxOVR = 99
)

// Adjust returns the new overall rating after a match, given the average peer
// rating (1..10) the player received. The rating moves at most maxStep per
// match and stays inside [minOVR, maxOVR].
func Adjust(current int, avgRating float64) int {
	step := int(math.Round(avgRating - neutralRating))
	if step > maxStep {
		step = maxStep
	}
	if step < -maxStep {
		step = -maxStep
	}
	next := current + step
	if next < minOVR {
		return minOVR
	}
	if next > maxOVR {
		return maxOVR
	}
	return next
}

// FoldAverage merges one match's average rating into the running career
// average over n previously rated matches.
func FoldAverage(career float64, n int, matchAvg float64) float64 {
	if n <= 0 {
		return matchAvg
	}
	return (career*float64(n) + matchAvg) / float64(n+1)
}
