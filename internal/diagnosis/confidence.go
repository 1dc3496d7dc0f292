package diagnosis

import (
	"math"

	"coachdiag/internal/model"
)

const (
	confidenceBase = 85.0
	confidenceMin  = 75.0
	confidenceMax  = 98.0

	consistencyCeiling = 10.0
	consistencyFactor  = 0.8
	clarityCap         = 5.0
	clarityFactor      = 0.5

	straightLineShare   = 0.8
	straightLinePenalty = 5.0
)

// Confidence estimates how far the classification can be trusted, in [75, 98].
// It rewards steady response latency and a clear winner, and penalises
// answer sheets dominated by one label.
func Confidence(responses []model.Response, typeScores TypeScores) int {
	c := confidenceBase

	consistency := math.Max(0, consistencyCeiling-responseTimeStdDev(responses)/1000)
	c += consistency * consistencyFactor

	if gap, ok := typeScores.Gap(); ok {
		c += math.Min(clarityCap, gap*clarityFactor)
	}

	if dominantAnswerShare(responses) > straightLineShare {
		c -= straightLinePenalty
	}

	c = math.Min(confidenceMax, math.Max(confidenceMin, c))
	return int(math.Round(c))
}

// responseTimeStdDev is the population standard deviation in milliseconds
func responseTimeStdDev(responses []model.Response) float64 {
	if len(responses) == 0 {
		return 0
	}
	var sum float64
	for _, r := range responses {
		sum += float64(r.ResponseTime)
	}
	mean := sum / float64(len(responses))

	var sq float64
	for _, r := range responses {
		d := float64(r.ResponseTime) - mean
		sq += d * d
	}
	return math.Sqrt(sq / float64(len(responses)))
}

func dominantAnswerShare(responses []model.Response) float64 {
	if len(responses) == 0 {
		return 0
	}
	counts := make(map[model.Answer]int, len(model.AnswerLabels))
	best := 0
	for _, r := range responses {
		counts[r.Answer]++
		if counts[r.Answer] > best {
			best = counts[r.Answer]
		}
	}
	return float64(best) / float64(len(responses))
}
