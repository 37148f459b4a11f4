package missions

import (
	"cmp"
	"slices"
)

// Defaults used by the interactive views.
const (
	DefaultStartYear        = 1957
	DefaultEndYear          = 2024
	DefaultTopOrganizations = 7
	DefaultTopLocations     = 10
)

// OverviewStats summarises a record set for the dashboard header.
type OverviewStats struct {
	TotalMissions      int `json:"total_missions" yaml:"total_missions"`
	SuccessfulMissions int `json:"successful_missions" yaml:"successful_missions"`
	Organizations      int `json:"organizations" yaml:"organizations"`
	Locations          int `json:"locations" yaml:"locations"`
}

// Overview counts missions, successes and distinct organizations and
// launch sites.
func Overview(records []Record) OverviewStats {
	orgs := make(map[string]struct{})
	locations := make(map[string]struct{})
	stats := OverviewStats{TotalMissions: len(records)}
	for _, r := range records {
		if r.Status == StatusSuccess {
			stats.SuccessfulMissions++
		}
		orgs[r.Organization] = struct{}{}
		locations[r.Location] = struct{}{}
	}
	stats.Organizations = len(orgs)
	stats.Locations = len(locations)
	return stats
}

// SuccessRate returns success as a percentage of total, or 0 when total is
// not positive.
func SuccessRate(success, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(success) / float64(total) * 100
}

// Band classifies a success rate for colouring.
type Band string

const (
	BandHigh Band = "high"
	BandGood Band = "good"
	BandFair Band = "fair"
	BandLow  Band = "low"
)

// RateBand buckets a success percentage at 90, 80 and 70.
func RateBand(rate float64) Band {
	switch {
	case rate >= 90:
		return BandHigh
	case rate >= 80:
		return BandGood
	case rate >= 70:
		return BandFair
	default:
		return BandLow
	}
}

type OrganizationCount struct {
	Organization string `json:"organization" yaml:"organization"`
	Count        int    `json:"count" yaml:"count"`
}

// TopOrganizations returns the n organizations with the most records,
// ties in first-seen order. n <= 0 returns every organization.
func TopOrganizations(records []Record, n int) []OrganizationCount {
	orgs, tallies := groupTallies(records, func(r Record) string { return r.Organization })
	counts := make([]OrganizationCount, 0, len(orgs))
	for _, org := range orgs {
		counts = append(counts, OrganizationCount{Organization: org, Count: tallies[org].total})
	}
	slices.SortStableFunc(counts, func(a, b OrganizationCount) int {
		return cmp.Compare(b.Count, a.Count)
	})
	if n > 0 && len(counts) > n {
		counts = counts[:n]
	}
	return counts
}

// RangeSummary is the interactive timeline view for one year range.
type RangeSummary struct {
	StartYear          int                 `json:"start_year" yaml:"start_year"`
	EndYear            int                 `json:"end_year" yaml:"end_year"`
	TotalMissions      int                 `json:"total_missions" yaml:"total_missions"`
	SuccessfulMissions int                 `json:"successful_missions" yaml:"successful_missions"`
	SuccessRate        float64             `json:"success_rate" yaml:"success_rate"`
	Yearly             []YearlyAggregate   `json:"yearly" yaml:"yearly"`
	TopOrganizations   []OrganizationCount `json:"top_organizations" yaml:"top_organizations"`
}

// Timeline filters the full record set to [startYear, endYear] and derives
// every figure of the range view from that subset. Callers must pass the
// unfiltered records each time; ranges do not compose.
func Timeline(records []Record, startYear, endYear, top int) RangeSummary {
	filtered := FilterByYearRange(records, startYear, endYear)
	success := 0
	for _, r := range filtered {
		if r.Status == StatusSuccess {
			success++
		}
	}
	return RangeSummary{
		StartYear:          startYear,
		EndYear:            endYear,
		TotalMissions:      len(filtered),
		SuccessfulMissions: success,
		SuccessRate:        SuccessRate(success, len(filtered)),
		Yearly:             aggregateByYear(filtered),
		TopOrganizations:   TopOrganizations(filtered, top),
	}
}

// LocationRank is a location row annotated for the launch site view.
type LocationRank struct {
	Location    string  `json:"location" yaml:"location"`
	Total       int     `json:"total" yaml:"total"`
	Success     int     `json:"success" yaml:"success"`
	Failure     int     `json:"failure" yaml:"failure"`
	SuccessRate float64 `json:"success_rate" yaml:"success_rate"`
	Band        Band    `json:"band" yaml:"band"`
}

// RankLocations annotates the first n rows of byLocation, which is expected
// in Aggregate order. n <= 0 keeps every row.
func RankLocations(byLocation []LocationAggregate, n int) []LocationRank {
	if n > 0 && len(byLocation) > n {
		byLocation = byLocation[:n]
	}
	ranks := make([]LocationRank, 0, len(byLocation))
	for _, row := range byLocation {
		rate := SuccessRate(row.Success, row.Total)
		ranks = append(ranks, LocationRank{
			Location:    row.Location,
			Total:       row.Total,
			Success:     row.Success,
			Failure:     row.Failure,
			SuccessRate: rate,
			Band:        RateBand(rate),
		})
	}
	return ranks
}
