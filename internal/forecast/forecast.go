// Package forecast implements the linear trend projection for the
// statistics views.
package forecast

// Result holds a fitted trend line and its projection.
type Result struct {
	Forecast  []float64 `json:"forecast"`  // Projected values, one per future period
	Slope     float64   `json:"slope"`     // Slope of the fitted line
	Intercept float64   `json:"intercept"` // Intercept of the fitted line
}

// Fit fits a straight line y = slope*x + intercept over the series by
// ordinary least squares, with x being the 0-based index, and projects
// it for the next horizon indices.
//
// A series with fewer than two points cannot be fitted. It degrades to
// a flat projection of the last known value (or 0 for an empty series)
// with a zero slope and intercept, so callers never have to deal with
// a singular fit.
func Fit(series []float64, horizon int) Result {
	if horizon < 0 {
		horizon = 0
	}

	if len(series) < 2 {
		last := 0.0
		if len(series) == 1 {
			last = series[0]
		}

		flat := make([]float64, horizon)
		for i := range flat {
			flat[i] = last
		}

		return Result{Forecast: flat}
	}

	n := float64(len(series))

	var sumX, sumY, sumXY, sumXX float64
	for i, y := range series {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}

	slope := (n*sumXY - sumX*sumY) / (n*sumXX - sumX*sumX)
	intercept := (sumY - slope*sumX) / n

	forecast := make([]float64, horizon)
	for i := range forecast {
		x := float64(len(series) + i)
		forecast[i] = slope*x + intercept
	}

	return Result{
		Forecast:  forecast,
		Slope:     slope,
		Intercept: intercept,
	}
}
