package missions

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var (
	propYears  = []int{0, 1957, 1958, 1969, 1990, 2020, 2024}
	propOrgs   = []string{"RVSN USSR", "NASA", "nasa", "SpaceX", "CASC", "Roscosmos", "ISRO", "Arianespace", ""}
	propSites  = []string{"Baikonur", "Cape Canaveral", "Jiuquan", "Kourou", "Plesetsk", ""}
	propStatus = []Status{StatusSuccess, StatusFailure, StatusPartialFailure, StatusPrelaunchFailure, "", "Unknown"}
)

// randomRecords builds a record set drawn from small pools so that groups
// collide often.
func randomRecords(r *rand.Rand) []Record {
	n := r.IntN(60)
	records := make([]Record, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, Record{
			Year:         propYears[r.IntN(len(propYears))],
			Organization: propOrgs[r.IntN(len(propOrgs))],
			Location:     propSites[r.IntN(len(propSites))],
			Status:       propStatus[r.IntN(len(propStatus))],
		})
	}
	return records
}

// forEachRecordSet runs check against a fixed sequence of generated inputs.
func forEachRecordSet(t *testing.T, check func(t *testing.T, records []Record)) {
	t.Helper()
	r := rand.New(rand.NewPCG(1957, 2024))
	for i := 0; i < 300; i++ {
		records := randomRecords(r)
		check(t, records)
		if t.Failed() {
			t.Logf("failing input (%d records): %+v", len(records), records)
			return
		}
	}
}

func TestPropertyConservation(t *testing.T) {
	forEachRecordSet(t, func(t *testing.T, records []Record) {
		got := Aggregate(records)
		yearly, orgs, sites := 0, 0, 0
		for _, row := range got.Yearly {
			yearly += row.Total
		}
		for _, row := range got.ByOrganization {
			orgs += row.Total
		}
		for _, row := range got.ByLocation {
			sites += row.Total
		}
		if yearly != len(records) || orgs != len(records) || sites != len(records) {
			t.Errorf("totals yearly=%d orgs=%d sites=%d, want %d each", yearly, orgs, sites, len(records))
		}
	})
}

func TestPropertyPartitionCompleteness(t *testing.T) {
	forEachRecordSet(t, func(t *testing.T, records []Record) {
		got := Aggregate(records)
		years := make(map[int]int)
		for _, row := range got.Yearly {
			years[row.Year]++
		}
		orgs := make(map[string]int)
		for _, row := range got.ByOrganization {
			orgs[row.Organization]++
		}
		sites := make(map[string]int)
		for _, row := range got.ByLocation {
			sites[row.Location]++
		}
		for _, r := range records {
			if years[r.Year] != 1 {
				t.Errorf("year %d appears in %d groups", r.Year, years[r.Year])
			}
			if orgs[r.Organization] != 1 {
				t.Errorf("organization %q appears in %d groups", r.Organization, orgs[r.Organization])
			}
			if sites[r.Location] != 1 {
				t.Errorf("location %q appears in %d groups", r.Location, sites[r.Location])
			}
		}
	})
}

func TestPropertySuccessFailureDisjoint(t *testing.T) {
	forEachRecordSet(t, func(t *testing.T, records []Record) {
		allDecided := make(map[string]bool)
		for _, r := range records {
			decided := r.Status == StatusSuccess || r.Status == StatusFailure
			if prev, ok := allDecided[r.Organization]; ok {
				decided = decided && prev
			}
			allDecided[r.Organization] = decided
		}

		for _, row := range Aggregate(records).ByOrganization {
			sum := row.Success + row.Failure
			if sum > row.Total {
				t.Errorf("%q: success+failure=%d exceeds total %d", row.Organization, sum, row.Total)
			}
			if (sum == row.Total) != allDecided[row.Organization] {
				t.Errorf("%q: success+failure=%d total=%d but all-decided=%v", row.Organization, sum, row.Total, allDecided[row.Organization])
			}
		}
	})
}

func TestPropertySortOrder(t *testing.T) {
	forEachRecordSet(t, func(t *testing.T, records []Record) {
		got := Aggregate(records)
		for i := 1; i < len(got.Yearly); i++ {
			if got.Yearly[i-1].Year > got.Yearly[i].Year {
				t.Errorf("yearly out of order at %d: %d > %d", i, got.Yearly[i-1].Year, got.Yearly[i].Year)
			}
		}
		for i := 1; i < len(got.ByOrganization); i++ {
			if got.ByOrganization[i-1].Total < got.ByOrganization[i].Total {
				t.Errorf("organizations out of order at %d", i)
			}
		}
		for i := 1; i < len(got.ByLocation); i++ {
			if got.ByLocation[i-1].Total < got.ByLocation[i].Total {
				t.Errorf("locations out of order at %d", i)
			}
		}
	})
}

func TestPropertyRangeFilter(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	forEachRecordSet(t, func(t *testing.T, records []Record) {
		start := propYears[r.IntN(len(propYears))]
		end := propYears[r.IntN(len(propYears))]
		got := FilterByYearRange(records, start, end)

		for _, rec := range got {
			if rec.Year < start || rec.Year > end {
				t.Errorf("year %d outside [%d, %d]", rec.Year, start, end)
			}
		}

		want := make([]Record, 0)
		for _, rec := range records {
			if rec.Year >= start && rec.Year <= end {
				want = append(want, rec)
			}
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("filter [%d, %d] mismatch (-want +got):\n%s", start, end, diff)
		}
	})
}

func TestPropertyDegenerateRange(t *testing.T) {
	forEachRecordSet(t, func(t *testing.T, records []Record) {
		if got := FilterByYearRange(records, 2000, 1999); len(got) != 0 {
			t.Errorf("expected empty result for reversed range, got %d records", len(got))
		}
	})
}

func TestPropertyRosterClosure(t *testing.T) {
	roster := DefaultRoster()
	forEachRecordSet(t, func(t *testing.T, records []Record) {
		for _, p := range BuildRaceSeries(records, roster) {
			if len(p.Counts) != len(roster) {
				t.Errorf("year %d has %d keys, want %d", p.Year, len(p.Counts), len(roster))
			}
			for _, name := range roster {
				if _, ok := p.Counts[name]; !ok {
					t.Errorf("year %d missing roster key %q", p.Year, name)
				}
			}
		}
	})
}

func TestPropertyIdempotence(t *testing.T) {
	roster := DefaultRoster()
	forEachRecordSet(t, func(t *testing.T, records []Record) {
		before := slices.Clone(records)

		if diff := cmp.Diff(Aggregate(records), Aggregate(records)); diff != "" {
			t.Errorf("Aggregate not idempotent:\n%s", diff)
		}
		if diff := cmp.Diff(BuildRaceSeries(records, roster), BuildRaceSeries(records, roster)); diff != "" {
			t.Errorf("BuildRaceSeries not idempotent:\n%s", diff)
		}
		if diff := cmp.Diff(FilterByYearRange(records, 1958, 2020), FilterByYearRange(records, 1958, 2020)); diff != "" {
			t.Errorf("FilterByYearRange not idempotent:\n%s", diff)
		}
		if diff := cmp.Diff(before, records); diff != "" {
			t.Errorf("input mutated:\n%s", diff)
		}
	})
}
