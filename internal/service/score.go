package service

import (
	"math"

	"tunisiaclean/internal/model"
)

// ScoreThresholds are the minimum scores offered by the cleanliness facet
var ScoreThresholds = []float64{3, 4, 4.5}

// ScoreLabel returns the French tier name for a cleanliness score
func ScoreLabel(score float64) string {
	switch {
	case score >= 4.5:
		return "Excellent"
	case score >= 4.0:
		return "Très bon"
	case score >= 3.0:
		return "Bon"
	case score >= 2.0:
		return "Moyen"
	default:
		return "À améliorer"
	}
}

// ScoreBreakdown derives the three bars shown under the cleanliness score.
// Values are rounded to one decimal and capped at 5.
func ScoreBreakdown(score float64) []model.ScoreBreakdown {
	return []model.ScoreBreakdown{
		{Label: "Respect des valeurs", Score: roundScore(score * 0.9)},
		{Label: "Éthique", Score: roundScore(score * 1.1)},
		{Label: "Authenticité", Score: roundScore(score * 0.95)},
	}
}

func roundScore(v float64) float64 {
	return math.Round(math.Min(v, 5)*10) / 10
}

// BuildDetail assembles the detail page payload for a location
func BuildDetail(l model.Location) model.LocationDetail {
	schedule := make([]model.DaySchedule, 0, len(model.Weekdays))
	for _, day := range model.Weekdays {
		hours, ok := l.OpeningHours[day]
		row := model.DaySchedule{Day: day, Label: day.Label()}
		if !ok || hours.Closed() {
			row.Closed = true
		} else {
			row.Open = hours.Open
			row.Close = hours.Close
		}
		schedule = append(schedule, row)
	}

	return model.LocationDetail{
		Location:       l,
		TypeLabel:      l.Type.Label(),
		ScoreLabel:     ScoreLabel(l.CleanlinessScore),
		ScoreBreakdown: ScoreBreakdown(l.CleanlinessScore),
		Schedule:       schedule,
	}
}
