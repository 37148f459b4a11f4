package main

import (
	"github.com/spf13/cobra"

	"github.com/spaceviz/spaceviz/pkg/dashboard"
	"github.com/spaceviz/spaceviz/pkg/missions"
	"github.com/spaceviz/spaceviz/pkg/report"
)

// changedInt returns the value of an int flag, or nil when it was not set.
func changedInt(cmd *cobra.Command, name string) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, err := cmd.Flags().GetInt(name)
	if err != nil {
		return nil
	}
	return &v
}

func addRangeFlags(cmd *cobra.Command, from, to int) {
	cmd.Flags().Int("from", from, "First year to include")
	cmd.Flags().Int("to", to, "Last year to include")
}

func yearRange(cmd *cobra.Command) dashboard.YearRange {
	return dashboard.YearRange{From: changedInt(cmd, "from"), To: changedInt(cmd, "to")}
}

func newOverviewCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Show mission, organization and launch site totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := opts.openStore(cmd.Context())
			if err != nil {
				return err
			}
			stats, err := store.Overview(cmd.Context())
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), opts.output, stats, func() string {
				return report.FormatOverview(stats)
			})
		},
	}
}

func newYearlyCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "yearly",
		Short: "Show launches per year",
		Long:  "Show launches per year. A bound that is not set leaves that side of the range open.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := opts.openStore(cmd.Context())
			if err != nil {
				return err
			}
			rows, err := store.Yearly(cmd.Context(), yearRange(cmd))
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), opts.output, rows, func() string {
				return report.FormatYearly(rows)
			})
		},
	}
	addRangeFlags(cmd, 0, 0)
	return cmd
}

func newOrganizationsCommand(opts *rootOptions) *cobra.Command {
	var top int
	cmd := &cobra.Command{
		Use:     "organizations",
		Aliases: []string{"orgs"},
		Short:   "Show launches per organization, busiest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := opts.openStore(cmd.Context())
			if err != nil {
				return err
			}
			rows, err := store.Organizations(cmd.Context(), top)
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), opts.output, rows, func() string {
				return report.FormatOrganizations(rows)
			})
		},
	}
	cmd.Flags().IntVar(&top, "top", 0, "Number of organizations to show, 0 for all")
	return cmd
}

func newLocationsCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "locations",
		Short: "Rank launch sites by launches with their success rate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := opts.openStore(cmd.Context())
			if err != nil {
				return err
			}
			rows, err := store.Locations(cmd.Context(), changedInt(cmd, "top"))
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), opts.output, rows, func() string {
				return report.FormatLocations(rows)
			})
		},
	}
	cmd.Flags().Int("top", missions.DefaultTopLocations, "Number of launch sites to show, 0 for all")
	return cmd
}

type raceView struct {
	Roster []string                   `json:"roster" yaml:"roster"`
	Points []missions.RaceSeriesPoint `json:"points" yaml:"points"`
}

func newRaceCommand(opts *rootOptions) *cobra.Command {
	var roster []string
	cmd := &cobra.Command{
		Use:   "race",
		Short: "Compare yearly launches of a roster of organizations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := opts.openStore(cmd.Context())
			if err != nil {
				return err
			}
			points, used, err := store.Race(cmd.Context(), roster)
			if err != nil {
				return err
			}
			view := raceView{Roster: used, Points: points}
			return writeOutput(cmd.OutOrStdout(), opts.output, view, func() string {
				return report.FormatRace(points, used)
			})
		},
	}
	cmd.Flags().StringSliceVar(&roster, "roster", nil, "Organizations to compare (default from config)")
	return cmd
}

func newTimelineCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Summarise an inclusive range of years",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := opts.openStore(cmd.Context())
			if err != nil {
				return err
			}
			summary, err := store.Timeline(cmd.Context(), yearRange(cmd), changedInt(cmd, "top"))
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), opts.output, summary, func() string {
				return report.FormatTimeline(summary)
			})
		},
	}
	addRangeFlags(cmd, missions.DefaultStartYear, missions.DefaultEndYear)
	cmd.Flags().Int("top", missions.DefaultTopOrganizations, "Number of organizations to list")
	return cmd
}
