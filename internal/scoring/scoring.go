// Package scoring computes contribution scores for comments.
//
// A comment earns points for length, cited sources, and voluntary identity
// disclosure. All terms are non-negative, so a score is never below zero.
package scoring

import (
	"math"
)

// IdentityBonus is awarded when a commenter voluntarily discloses identity
const IdentityBonus = 5.0

// PointsPerCitation is awarded per cited source
const PointsPerCitation = 2.0

// charsPerPoint converts body length to points
const charsPerPoint = 100.0

// Round2 rounds to two decimal places, half away from zero
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// CommentScore computes the contribution score for a comment:
//
//	round2(bodyLength/100 + citations*2 + identity bonus)
//
// Negative citation counts are clamped to zero.
func CommentScore(bodyLength, citationCount int, disclosesIdentity bool) float64 {
	if bodyLength < 0 {
		bodyLength = 0
	}
	if citationCount < 0 {
		citationCount = 0
	}
	score := float64(bodyLength)/charsPerPoint + float64(citationCount)*PointsPerCitation
	if disclosesIdentity {
		score += IdentityBonus
	}
	return Round2(score)
}
