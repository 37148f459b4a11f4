package missions

// FilterByYearRange returns the records whose year lies in [startYear,
// endYear], in their original order. A start after the end is not
// swapped and yields an empty result.
func FilterByYearRange(records []Record, startYear, endYear int) []Record {
	filtered := make([]Record, 0)
	for _, r := range records {
		if r.Year >= startYear && r.Year <= endYear {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// FilterYearly applies the same inclusive bounds to precomputed yearly rows.
func FilterYearly(yearly []YearlyAggregate, startYear, endYear int) []YearlyAggregate {
	filtered := make([]YearlyAggregate, 0)
	for _, row := range yearly {
		if row.Year >= startYear && row.Year <= endYear {
			filtered = append(filtered, row)
		}
	}
	return filtered
}
