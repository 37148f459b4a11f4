package missions

import "time"

// Status is the simplified outcome of a mission.
type Status string

const (
	StatusSuccess          Status = "Success"
	StatusFailure          Status = "Failure"
	StatusPartialFailure   Status = "Partial Failure"
	StatusPrelaunchFailure Status = "Prelaunch Failure"
)

// Record captures a single launch with the fields the dashboard views
// need. Records are treated as values and never modified by this package.
type Record struct {
	Year         int       `json:"year" yaml:"year"`
	Organization string    `json:"organization" yaml:"organization"`
	Location     string    `json:"location" yaml:"location"`
	Status       Status    `json:"status" yaml:"status"`
	LaunchDate   time.Time `json:"launch_date,omitzero" yaml:"launch_date,omitempty"`
	Detail       string    `json:"detail,omitempty" yaml:"detail,omitempty"`
	RocketStatus string    `json:"rocket_status,omitempty" yaml:"rocket_status,omitempty"`
}

// YearlyAggregate counts launches for one calendar year.
type YearlyAggregate struct {
	Year    int `json:"year" yaml:"year"`
	Total   int `json:"total" yaml:"total"`
	Success int `json:"success" yaml:"success"`
	Failure int `json:"failure" yaml:"failure"`
}

// OrganizationAggregate counts launches for one launching organization.
type OrganizationAggregate struct {
	Organization string `json:"organization" yaml:"organization"`
	Total        int    `json:"total" yaml:"total"`
	Success      int    `json:"success" yaml:"success"`
	Failure      int    `json:"failure" yaml:"failure"`
}

// LocationAggregate counts launches for one launch site.
type LocationAggregate struct {
	Location string `json:"location" yaml:"location"`
	Total    int    `json:"total" yaml:"total"`
	Success  int    `json:"success" yaml:"success"`
	Failure  int    `json:"failure" yaml:"failure"`
}

// AggregateResult bundles the three grouped views produced by Aggregate.
type AggregateResult struct {
	Yearly         []YearlyAggregate       `json:"yearly" yaml:"yearly"`
	ByOrganization []OrganizationAggregate `json:"by_organization" yaml:"by_organization"`
	ByLocation     []LocationAggregate     `json:"by_location" yaml:"by_location"`
}

// RaceSeriesPoint holds per-organization launch counts for one year. Counts
// is keyed by exactly the roster passed to BuildRaceSeries.
type RaceSeriesPoint struct {
	Year   int            `json:"year" yaml:"year"`
	Counts map[string]int `json:"counts" yaml:"counts"`
}
