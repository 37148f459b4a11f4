package report

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/spaceviz/spaceviz/pkg/missions"
)

var printer = message.NewPrinter(language.English)

// count formats n with thousands separators.
func count(n int) string {
	return printer.Sprintf("%d", n)
}

func percent(rate float64) string {
	return printer.Sprintf("%.1f%%", rate)
}

func heading(b *strings.Builder, title string) {
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("=", len(title)) + "\n\n")
}

// table writes tab separated rows aligned into columns.
func table(b *strings.Builder, header string, rows []string) {
	w := tabwriter.NewWriter(b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, header)
	for _, row := range rows {
		fmt.Fprintln(w, row)
	}
	w.Flush()
}

// FormatOverview renders the dataset headline figures.
func FormatOverview(stats missions.OverviewStats) string {
	var b strings.Builder
	heading(&b, "Mission Overview")
	b.WriteString(fmt.Sprintf("Total missions:      %s\n", count(stats.TotalMissions)))
	b.WriteString(fmt.Sprintf("Successful missions: %s\n", count(stats.SuccessfulMissions)))
	b.WriteString(fmt.Sprintf("Organizations:       %s\n", count(stats.Organizations)))
	b.WriteString(fmt.Sprintf("Launch sites:        %s\n", count(stats.Locations)))
	return b.String()
}

func FormatYearly(rows []missions.YearlyAggregate) string {
	var b strings.Builder
	heading(&b, "Launches per Year")
	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, fmt.Sprintf("%d\t%s\t%s\t%s\t", r.Year, count(r.Total), count(r.Success), count(r.Failure)))
	}
	table(&b, "Year\tTotal\tSuccess\tFailure\t", lines)
	return b.String()
}

func FormatOrganizations(rows []missions.OrganizationAggregate) string {
	var b strings.Builder
	heading(&b, "Launches per Organization")
	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, fmt.Sprintf("%s\t%s\t%s\t%s\t%s\t", r.Organization, count(r.Total), count(r.Success), count(r.Failure),
			percent(missions.SuccessRate(r.Success, r.Total))))
	}
	table(&b, "Organization\tTotal\tSuccess\tFailure\tRate\t", lines)
	return b.String()
}

func FormatLocations(rows []missions.LocationRank) string {
	var b strings.Builder
	heading(&b, "Launch Sites")
	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, fmt.Sprintf("%s\t%s\t%s\t%s\t%s\t%s\t", r.Location, count(r.Total), count(r.Success), count(r.Failure),
			percent(r.SuccessRate), r.Band))
	}
	table(&b, "Location\tTotal\tSuccess\tFailure\tRate\tBand\t", lines)
	return b.String()
}

// FormatRace renders one row per year with a column per roster member, in
// roster order.
func FormatRace(points []missions.RaceSeriesPoint, roster []string) string {
	var b strings.Builder
	heading(&b, "Space Race")
	lines := make([]string, 0, len(points))
	for _, p := range points {
		cells := []string{fmt.Sprint(p.Year)}
		for _, name := range roster {
			cells = append(cells, count(p.Counts[name]))
		}
		lines = append(lines, strings.Join(cells, "\t")+"\t")
	}
	table(&b, "Year\t"+strings.Join(roster, "\t")+"\t", lines)
	return b.String()
}

func FormatTimeline(s missions.RangeSummary) string {
	var b strings.Builder
	heading(&b, fmt.Sprintf("Timeline %d-%d", s.StartYear, s.EndYear))
	b.WriteString(fmt.Sprintf("Total missions:      %s\n", count(s.TotalMissions)))
	b.WriteString(fmt.Sprintf("Successful missions: %s\n", count(s.SuccessfulMissions)))
	b.WriteString(fmt.Sprintf("Success rate:        %s\n\n", percent(s.SuccessRate)))

	lines := make([]string, 0, len(s.TopOrganizations))
	for _, c := range s.TopOrganizations {
		lines = append(lines, fmt.Sprintf("%s\t%s\t", c.Organization, count(c.Count)))
	}
	table(&b, "Organization\tLaunches\t", lines)
	b.WriteString("\n")

	yearly := make([]string, 0, len(s.Yearly))
	for _, r := range s.Yearly {
		yearly = append(yearly, fmt.Sprintf("%d\t%s\t", r.Year, count(r.Total)))
	}
	table(&b, "Year\tLaunches\t", yearly)
	return b.String()
}
