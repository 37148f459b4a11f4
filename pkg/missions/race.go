package missions

import (
	"cmp"
	"slices"
)

var defaultRoster = []string{"RVSN USSR", "NASA", "SpaceX", "CASC", "Roscosmos"}

// DefaultRoster returns the organizations compared by the space race view.
// The returned slice is a copy and may be modified by the caller.
func DefaultRoster() []string {
	return slices.Clone(defaultRoster)
}

// BuildRaceSeries counts launches per roster organization for every year
// present in records.
//
// A point exists for each distinct year in records, even when no roster
// organization launched that year. Each point's Counts holds every roster
// name, starting at zero. Organizations outside the roster are ignored.
// Points are ascending by year.
func BuildRaceSeries(records []Record, roster []string) []RaceSeriesPoint {
	members := make(map[string]struct{}, len(roster))
	for _, name := range roster {
		members[name] = struct{}{}
	}

	points := make([]RaceSeriesPoint, 0)
	byYear := make(map[int]int)
	for _, r := range records {
		idx, ok := byYear[r.Year]
		if !ok {
			counts := make(map[string]int, len(members))
			for name := range members {
				counts[name] = 0
			}
			points = append(points, RaceSeriesPoint{Year: r.Year, Counts: counts})
			idx = len(points) - 1
			byYear[r.Year] = idx
		}
		if _, ok := members[r.Organization]; ok {
			points[idx].Counts[r.Organization]++
		}
	}

	slices.SortFunc(points, func(a, b RaceSeriesPoint) int {
		return cmp.Compare(a.Year, b.Year)
	})
	return points
}
