package models

import "math"

// Stats are the aggregate results shown above the vote list.
type Stats struct {
	Total    int
	CountOui int
	CountNon int
	PctOui   float64
	PctNon   float64
}

// ComputeStats counts votes per choice. Percentages are rounded to one
// decimal place and are both 0 for an empty list.
//
// Rounding is half-to-even so two complementary shares never add up to more
// than 100.
func ComputeStats(votes []Vote) Stats {
	s := Stats{Total: len(votes)}
	for _, v := range votes {
		switch v.Choice {
		case ChoiceOui:
			s.CountOui++
		case ChoiceNon:
			s.CountNon++
		}
	}
	if s.Total > 0 {
		s.PctOui = percent(s.CountOui, s.Total)
		s.PctNon = percent(s.CountNon, s.Total)
	}
	return s
}

func percent(count, total int) float64 {
	return math.RoundToEven(float64(count*1000)/float64(total)) / 10
}
