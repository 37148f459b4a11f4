package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/spaceviz/spaceviz/pkg/dashboard"
	"github.com/spaceviz/spaceviz/pkg/missions"
)

type toolDefinition struct {
	Name        string
	Description string
}

var toolCatalog = []toolDefinition{
	{
		Name:        "mission_overview",
		Description: "Count all missions, successful missions, organizations and launch sites in the dataset.",
	},
	{
		Name:        "yearly_launches",
		Description: "Launch totals per year with success and failure counts, optionally limited to an inclusive year range.",
	},
	{
		Name:        "organization_totals",
		Description: "Launch totals per organization, busiest first.",
	},
	{
		Name:        "location_totals",
		Description: "Busiest launch sites with success rate and rating band.",
	},
	{
		Name:        "space_race",
		Description: "Launches per year for a roster of organizations, zero-filled for every year in the dataset.",
	},
	{
		Name:        "mission_timeline",
		Description: "Summary of an inclusive year range: totals, success rate, yearly rows and top organizations.",
	},
}

func tool(name string) *mcp.Tool {
	for _, def := range toolCatalog {
		if def.Name == name {
			return &mcp.Tool{Name: def.Name, Description: def.Description}
		}
	}
	panic("unknown tool " + name)
}

type OverviewInput struct{}

type YearlyInput struct {
	From *int `json:"from,omitempty" jsonschema:"first year to include"`
	To   *int `json:"to,omitempty" jsonschema:"last year to include"`
}

type YearlyResult struct {
	Yearly []missions.YearlyAggregate `json:"yearly" jsonschema:"yearly rows ascending by year"`
}

type OrganizationsInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"maximum rows to return; 0 returns all"`
}

type OrganizationsResult struct {
	Organizations []missions.OrganizationAggregate `json:"organizations" jsonschema:"organizations descending by total"`
}

type LocationsInput struct {
	Limit *int `json:"limit,omitempty" jsonschema:"maximum rows to return; defaults to the configured top locations"`
}

type LocationsResult struct {
	Locations []missions.LocationRank `json:"locations" jsonschema:"launch sites descending by total"`
}

type RaceInput struct {
	Roster []string `json:"roster,omitempty" jsonschema:"organizations to compare; defaults to the configured roster"`
}

type RaceResult struct {
	Roster []string                   `json:"roster" jsonschema:"organizations compared"`
	Points []missions.RaceSeriesPoint `json:"points" jsonschema:"launch counts per year ascending"`
}

type TimelineInput struct {
	From *int `json:"from,omitempty" jsonschema:"first year to include"`
	To   *int `json:"to,omitempty" jsonschema:"last year to include"`
	Top  *int `json:"top,omitempty" jsonschema:"number of top organizations to list"`
}

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, tool("mission_overview"), s.overviewHandler())
	mcp.AddTool(s.mcpServer, tool("yearly_launches"), s.yearlyHandler())
	mcp.AddTool(s.mcpServer, tool("organization_totals"), s.organizationsHandler())
	mcp.AddTool(s.mcpServer, tool("location_totals"), s.locationsHandler())
	mcp.AddTool(s.mcpServer, tool("space_race"), s.raceHandler())
	mcp.AddTool(s.mcpServer, tool("mission_timeline"), s.timelineHandler())
}

func (s *Server) overviewHandler() mcp.ToolHandlerFor[OverviewInput, missions.OverviewStats] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ OverviewInput) (*mcp.CallToolResult, missions.OverviewStats, error) {
		stats, err := s.store.Overview(ctx)
		return nil, stats, err
	}
}

func (s *Server) yearlyHandler() mcp.ToolHandlerFor[YearlyInput, YearlyResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input YearlyInput) (*mcp.CallToolResult, YearlyResult, error) {
		rows, err := s.store.Yearly(ctx, dashboard.YearRange{From: input.From, To: input.To})
		if err != nil {
			return nil, YearlyResult{}, err
		}
		return nil, YearlyResult{Yearly: rows}, nil
	}
}

func (s *Server) organizationsHandler() mcp.ToolHandlerFor[OrganizationsInput, OrganizationsResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input OrganizationsInput) (*mcp.CallToolResult, OrganizationsResult, error) {
		rows, err := s.store.Organizations(ctx, input.Limit)
		if err != nil {
			return nil, OrganizationsResult{}, err
		}
		return nil, OrganizationsResult{Organizations: rows}, nil
	}
}

func (s *Server) locationsHandler() mcp.ToolHandlerFor[LocationsInput, LocationsResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input LocationsInput) (*mcp.CallToolResult, LocationsResult, error) {
		rows, err := s.store.Locations(ctx, input.Limit)
		if err != nil {
			return nil, LocationsResult{}, err
		}
		return nil, LocationsResult{Locations: rows}, nil
	}
}

func (s *Server) raceHandler() mcp.ToolHandlerFor[RaceInput, RaceResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input RaceInput) (*mcp.CallToolResult, RaceResult, error) {
		points, roster, err := s.store.Race(ctx, input.Roster)
		if err != nil {
			return nil, RaceResult{}, err
		}
		return nil, RaceResult{Roster: roster, Points: points}, nil
	}
}

func (s *Server) timelineHandler() mcp.ToolHandlerFor[TimelineInput, missions.RangeSummary] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input TimelineInput) (*mcp.CallToolResult, missions.RangeSummary, error) {
		summary, err := s.store.Timeline(ctx, dashboard.YearRange{From: input.From, To: input.To}, input.Top)
		return nil, summary, err
	}
}
