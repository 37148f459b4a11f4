package missions

import (
	"cmp"
	"slices"
)

// tally is an immutable per-group counter; add returns the next value.
type tally struct {
	total   int
	success int
	failure int
}

func (t tally) add(status Status) tally {
	t.total++
	switch status {
	case StatusSuccess:
		t.success++
	case StatusFailure:
		t.failure++
	}
	return t
}

// groupTallies folds records into one tally per key. Keys are returned in
// the order they were first seen.
func groupTallies[K comparable](records []Record, key func(Record) K) ([]K, map[K]tally) {
	order := make([]K, 0)
	tallies := make(map[K]tally)
	for _, r := range records {
		k := key(r)
		t, seen := tallies[k]
		if !seen {
			order = append(order, k)
		}
		tallies[k] = t.add(r.Status)
	}
	return order, tallies
}

// Aggregate groups records by year, organization and location.
//
// Every record counts once towards the total of each of its groups. Only
// StatusSuccess and StatusFailure are counted as success or failure; any
// other status contributes to the total alone. Yearly rows are ascending
// by year. Organization and location rows are descending by total, ties
// keeping the order in which the group first appeared.
func Aggregate(records []Record) AggregateResult {
	return AggregateResult{
		Yearly:         aggregateByYear(records),
		ByOrganization: aggregateByOrganization(records),
		ByLocation:     aggregateByLocation(records),
	}
}

func aggregateByYear(records []Record) []YearlyAggregate {
	years, tallies := groupTallies(records, func(r Record) int { return r.Year })
	rows := make([]YearlyAggregate, 0, len(years))
	for _, year := range years {
		t := tallies[year]
		rows = append(rows, YearlyAggregate{Year: year, Total: t.total, Success: t.success, Failure: t.failure})
	}
	slices.SortFunc(rows, func(a, b YearlyAggregate) int {
		return cmp.Compare(a.Year, b.Year)
	})
	return rows
}

func aggregateByOrganization(records []Record) []OrganizationAggregate {
	orgs, tallies := groupTallies(records, func(r Record) string { return r.Organization })
	rows := make([]OrganizationAggregate, 0, len(orgs))
	for _, org := range orgs {
		t := tallies[org]
		rows = append(rows, OrganizationAggregate{Organization: org, Total: t.total, Success: t.success, Failure: t.failure})
	}
	slices.SortStableFunc(rows, func(a, b OrganizationAggregate) int {
		return cmp.Compare(b.Total, a.Total)
	})
	return rows
}

func aggregateByLocation(records []Record) []LocationAggregate {
	locations, tallies := groupTallies(records, func(r Record) string { return r.Location })
	rows := make([]LocationAggregate, 0, len(locations))
	for _, loc := range locations {
		t := tallies[loc]
		rows = append(rows, LocationAggregate{Location: loc, Total: t.total, Success: t.success, Failure: t.failure})
	}
	slices.SortStableFunc(rows, func(a, b LocationAggregate) int {
		return cmp.Compare(b.Total, a.Total)
	})
	return rows
}
