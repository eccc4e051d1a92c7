package report

import (
	"math"

	"github.com/blackwell-systems/trackdown/internal/date"
	"github.com/blackwell-systems/trackdown/internal/track"
)

// TrackingPeriod describes the span the parsed data actually covers, which
// may be narrower than the requested period. Days counts dates with
// entries, not calendar days between Start and End.
type TrackingPeriod struct {
	Start date.Date `json:"start"`
	End   date.Date `json:"end"`
	Days  int       `json:"days"`
}

// Tracking derives the covered period from a result. ok is false when the
// result holds no entries.
func Tracking(res track.ParseResult) (tp TrackingPeriod, ok bool) {
	dates := res.Dates()
	if len(dates) == 0 {
		return TrackingPeriod{}, false
	}
	return TrackingPeriod{
		Start: dates[0],
		End:   dates[len(dates)-1],
		Days:  res.Days(),
	}, true
}

// AveragePerDay reports the mean minutes per tracked day, rounded. The
// divisor is the number of dates with entries; gap days inside the span do
// not dilute the average.
func AveragePerDay(res track.ParseResult) int {
	if res.Days() == 0 {
		return 0
	}
	return int(math.Round(float64(res.TotalMinutes()) / float64(res.Days())))
}
