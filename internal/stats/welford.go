package stats

// Running holds running totals using Welford's online mean update.
// The mean stays numerically stable over millions of trips
// without keeping the observations around.
type Running struct {
	Count int     // n - number of observations
	Sum   float64 // plain total
	Mean  float64 // running mean
}

// Add folds one observation into the running state.
// Reference: https://en.wikipedia.org/wiki/Algorithms_for_calculating_variance#Welford's_online_algorithm
func (w *Running) Add(v float64) {
	w.Count++
	w.Sum += v
	w.Mean += (v - w.Mean) / float64(w.Count)
}
