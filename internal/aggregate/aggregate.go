package aggregate

import (
	"sort"
	"time"
)

// Point is one dated observation of a metric.
type Point struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// Series extracts dated values from records and returns them sorted by date.
// The input slice is never reordered.
func Series[T any](items []T, date func(T) time.Time, value func(T) float64) []Point {
	points := make([]Point, 0, len(items))
	for _, item := range items {
		points = append(points, Point{
			Date:  date(item),
			Value: value(item),
		})
	}
	sortPoints(points)
	return points
}

// ChangeStatus tells whether PercentChange carries a value.
type ChangeStatus string

const (
	ChangeOK            ChangeStatus = "ok"
	ChangeNotEnoughData ChangeStatus = "not_enough_data"
	// ChangeUndefined is reported when the older window averages to zero.
	ChangeUndefined ChangeStatus = "undefined"
)

// WindowStats summarizes a metric over a window and compares it with the
// previous window of the same length.
type WindowStats struct {
	WindowDays      int          `json:"windowDays,omitempty"`
	WindowSize      int          `json:"windowSize,omitempty"`
	Count           int          `json:"count"`
	Average         float64      `json:"average"`
	MostRecent      float64      `json:"mostRecent"`
	PreviousCount   int          `json:"previousCount"`
	PreviousAverage float64      `json:"previousAverage"`
	PercentChange   float64      `json:"percentChange"`
	ChangeStatus    ChangeStatus `json:"changeStatus"`
	// TrendPerDay is the least-squares slope over the recent window.
	TrendPerDay float64 `json:"trendPerDay"`
}

// HasChange reports whether PercentChange is meaningful.
func (ws WindowStats) HasChange() bool {
	return ws.ChangeStatus == ChangeOK
}

// Window aggregates the points dated in (now-days, now] and compares them with
// (now-2*days, now-days]. Fewer points than days is fine, whatever is
// available is used.
func Window(points []Point, now time.Time, days int) WindowStats {
	if days <= 0 {
		return WindowStats{
			WindowDays:   days,
			ChangeStatus: ChangeNotEnoughData,
		}
	}

	recentFrom := now.AddDate(0, 0, -days)
	olderFrom := now.AddDate(0, 0, -2*days)

	recent := Between(points, recentFrom, now)
	older := Between(points, olderFrom, recentFrom)

	stats := summarize(recent, older)
	stats.WindowDays = days
	return stats
}

// Recent aggregates the last n points and compares them with the n points
// before those.
func Recent(points []Point, n int) WindowStats {
	if n <= 0 {
		return WindowStats{
			WindowSize:   n,
			ChangeStatus: ChangeNotEnoughData,
		}
	}

	sorted := make([]Point, len(points))
	copy(sorted, points)
	sortPoints(sorted)

	recentStart := len(sorted) - n
	if recentStart < 0 {
		recentStart = 0
	}
	olderStart := recentStart - n
	if olderStart < 0 {
		olderStart = 0
	}

	stats := summarize(sorted[recentStart:], sorted[olderStart:recentStart])
	stats.WindowSize = n
	return stats
}

// Between returns the points dated in (from, to], sorted by date.
func Between(points []Point, from, to time.Time) []Point {
	res := make([]Point, 0)
	for _, p := range points {
		if p.Date.After(from) && !p.Date.After(to) {
			res = append(res, p)
		}
	}
	sortPoints(res)
	return res
}

// Mean returns the arithmetic mean, ok is false for an empty slice.
func Mean(values []float64) (mean float64, ok bool) {
	if len(values) == 0 {
		return 0, false
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), true
}

// PercentChange computes (recent - older) / older * 100, ok is false when
// older is zero.
func PercentChange(recent, older float64) (change float64, ok bool) {
	if older == 0 {
		return 0, false
	}
	return (recent - older) / older * 100, true
}

// Slope is the least-squares slope of value over days, 0 with fewer than two
// distinct dates.
func Slope(points []Point) float64 {
	if len(points) < 2 {
		return 0
	}

	origin := points[0].Date
	for _, p := range points {
		if p.Date.Before(origin) {
			origin = p.Date
		}
	}

	n := float64(len(points))
	var sumX, sumY, sumXY, sumXX float64
	for _, p := range points {
		x := p.Date.Sub(origin).Hours() / 24
		sumX += x
		sumY += p.Value
		sumXY += x * p.Value
		sumXX += x * x
	}

	denominator := n*sumXX - sumX*sumX
	if denominator == 0 {
		return 0
	}
	return (n*sumXY - sumX*sumY) / denominator
}

func summarize(recent, older []Point) WindowStats {
	stats := WindowStats{
		Count:         len(recent),
		PreviousCount: len(older),
		ChangeStatus:  ChangeNotEnoughData,
	}

	if avg, ok := Mean(values(recent)); ok {
		stats.Average = avg
		stats.MostRecent = recent[len(recent)-1].Value
		stats.TrendPerDay = Slope(recent)
	}
	if avg, ok := Mean(values(older)); ok {
		stats.PreviousAverage = avg
	}

	if len(recent) == 0 || len(older) == 0 {
		return stats
	}

	change, ok := PercentChange(stats.Average, stats.PreviousAverage)
	if !ok {
		stats.ChangeStatus = ChangeUndefined
		return stats
	}
	stats.PercentChange = change
	stats.ChangeStatus = ChangeOK
	return stats
}

func values(points []Point) []float64 {
	vals := make([]float64, 0, len(points))
	for _, p := range points {
		vals = append(vals, p.Value)
	}
	return vals
}

func sortPoints(points []Point) {
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})
}
