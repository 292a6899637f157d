package score

import (
	"math"

	"github.com/Kaarthikeya12/FAKE-CHECK/internal/model"
)

// Tier thresholds are inclusive lower bounds, evaluated top-down
var imageTiers = []struct {
	min   int
	label model.Label
	color model.Color
}{
	{75, model.LabelLikelyTrue, model.ColorGreen},
	{60, model.LabelMostlyTrue, model.ColorLightGreen},
	{40, model.LabelUncertain, model.ColorYellow},
	{25, model.LabelLikelyFalse, model.ColorOrange},
}

// TextColor maps a credibility score to the coarse four-tier color scale
// used when the verdict label comes from the AI assessor
func TextColor(score int) model.Color {
	switch {
	case score >= 75:
		return model.ColorGreen
	case score >= 50:
		return model.ColorYellow
	case score >= 25:
		return model.ColorOrange
	default:
		return model.ColorRed
	}
}

// ImageTier maps a credibility score to the five-tier label and color scale
func ImageTier(score int) (model.Label, model.Color) {
	for _, tier := range imageTiers {
		if score >= tier.min {
			return tier.label, tier.color
		}
	}
	return model.LabelFalse, model.ColorRed
}

// Clamp bounds v to [0,100]
func Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(100, v))
}

// ClampRound bounds v to [0,100] and rounds half away from zero
func ClampRound(v float64) int {
	return int(math.Round(Clamp(v)))
}

// DedupeFlags merges flag lists, dropping blanks and repeats while keeping
// first-seen order
func DedupeFlags(lists ...[]string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, list := range lists {
		for _, flag := range list {
			if flag == "" || seen[flag] {
				continue
			}
			seen[flag] = true
			out = append(out, flag)
		}
	}
	return out
}
