package dashboard

import (
	"context"
	"math"

	"github.com/spaceviz/spaceviz/pkg/missions"
)

// YearRange is an optional inclusive range. How a nil bound is filled
// depends on the view.
type YearRange struct {
	From *int
	To   *int
}

func (s *Store) resolve(r YearRange) (int, int) {
	from, to := s.opts.StartYear, s.opts.EndYear
	if r.From != nil {
		from = *r.From
	}
	if r.To != nil {
		to = *r.To
	}
	return from, to
}

func (s *Store) Overview(ctx context.Context) (missions.OverviewStats, error) {
	records, err := s.Wait(ctx)
	if err != nil {
		return missions.OverviewStats{}, err
	}
	return missions.Overview(records), nil
}

func (s *Store) Aggregates(ctx context.Context) (missions.AggregateResult, error) {
	records, err := s.Wait(ctx)
	if err != nil {
		return missions.AggregateResult{}, err
	}
	return missions.Aggregate(records), nil
}

// Yearly returns the yearly rows within r. Unlike Timeline, a missing
// bound leaves that side open rather than taking the configured default.
func (s *Store) Yearly(ctx context.Context, r YearRange) ([]missions.YearlyAggregate, error) {
	agg, err := s.Aggregates(ctx)
	if err != nil {
		return nil, err
	}
	if r.From == nil && r.To == nil {
		return agg.Yearly, nil
	}
	from, to := math.MinInt, math.MaxInt
	if r.From != nil {
		from = *r.From
	}
	if r.To != nil {
		to = *r.To
	}
	return missions.FilterYearly(agg.Yearly, from, to), nil
}

// Organizations returns the first limit organization rows; limit <= 0
// returns all of them.
func (s *Store) Organizations(ctx context.Context, limit int) ([]missions.OrganizationAggregate, error) {
	agg, err := s.Aggregates(ctx)
	if err != nil {
		return nil, err
	}
	rows := agg.ByOrganization
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

// Locations ranks launch sites. A nil limit uses the configured default,
// and a non-positive limit returns every site.
func (s *Store) Locations(ctx context.Context, limit *int) ([]missions.LocationRank, error) {
	agg, err := s.Aggregates(ctx)
	if err != nil {
		return nil, err
	}
	n := s.opts.TopLocations
	if limit != nil {
		n = *limit
	}
	return missions.RankLocations(agg.ByLocation, n), nil
}

// Race builds the race series for roster, or for the configured roster
// when roster is empty.
func (s *Store) Race(ctx context.Context, roster []string) ([]missions.RaceSeriesPoint, []string, error) {
	records, err := s.Wait(ctx)
	if err != nil {
		return nil, nil, err
	}
	if len(roster) == 0 {
		roster = s.Options().Roster
	}
	return missions.BuildRaceSeries(records, roster), roster, nil
}

// Timeline summarises the range r over the full dataset. A nil top uses
// the configured default.
func (s *Store) Timeline(ctx context.Context, r YearRange, top *int) (missions.RangeSummary, error) {
	records, err := s.Wait(ctx)
	if err != nil {
		return missions.RangeSummary{}, err
	}
	from, to := s.resolve(r)
	n := s.opts.TopOrganizations
	if top != nil {
		n = *top
	}
	return missions.Timeline(records, from, to, n), nil
}
