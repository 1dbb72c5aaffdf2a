// ABOUTME: MCP resource implementations for healthtrack.
// ABOUTME: Exposes today's summary, meals, and activities as JSON resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/healthtrack/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "healthtrack://summary/today",
		Name:        "Today's Summary",
		Description: "Calorie, carbon, and activity totals for today",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "healthtrack://meals/today",
		Name:        "Today's Meals",
		Description: "Meals recorded today, newest first",
		MIMEType:    "application/json",
	}, s.handleMealsResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "healthtrack://activities/today",
		Name:        "Today's Activities",
		Description: "Sustainability activities for today with completion state",
		MIMEType:    "application/json",
	}, s.handleActivitiesResource)
}

// resolveDate substitutes today for an empty date, asking the store's own
// clock when it exposes one so everything stays on the injected clock.
func resolveDate(repo storage.Repository, date string) string {
	if date != "" {
		return date
	}
	if c, ok := repo.(interface{ Today() string }); ok {
		return c.Today()
	}
	return time.Now().Format("2006-01-02")
}

// buildDailySummary collects the aggregate numbers for a date.
// An empty date means today.
func buildDailySummary(repo storage.Repository, date string) (dailySummaryOutput, error) {
	date = resolveDate(repo, date)

	consumed, err := repo.TotalCaloriesConsumed(date)
	if err != nil {
		return dailySummaryOutput{}, fmt.Errorf("failed to total calories consumed: %w", err)
	}
	burned, err := repo.TotalCaloriesBurned(date)
	if err != nil {
		return dailySummaryOutput{}, fmt.Errorf("failed to total calories burned: %w", err)
	}
	carbon, err := repo.TotalCarbonSaved(date)
	if err != nil {
		return dailySummaryOutput{}, fmt.Errorf("failed to total carbon saved: %w", err)
	}
	completed, err := repo.CompletedActivitiesCount(date)
	if err != nil {
		return dailySummaryOutput{}, fmt.Errorf("failed to count completed activities: %w", err)
	}
	total, err := repo.TotalActivitiesCount(date)
	if err != nil {
		return dailySummaryOutput{}, fmt.Errorf("failed to count activities: %w", err)
	}

	return dailySummaryOutput{
		Date:                date,
		CaloriesConsumed:    consumed,
		CaloriesBurned:      burned,
		CarbonSaved:         carbon,
		ActivitiesCompleted: completed,
		ActivitiesTotal:     total,
	}, nil
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal resource: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      uri,
				MIMEType: "application/json",
				Text:     string(data),
			},
		},
	}, nil
}

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	summary, err := buildDailySummary(s.repo, "")
	if err != nil {
		return nil, err
	}
	return jsonResource("healthtrack://summary/today", summary)
}

func (s *Server) handleMealsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	meals, err := s.repo.ListMeals("")
	if err != nil {
		return nil, fmt.Errorf("failed to list meals: %w", err)
	}
	return jsonResource("healthtrack://meals/today", meals)
}

func (s *Server) handleActivitiesResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	activities, err := s.repo.ListActivities("")
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	return jsonResource("healthtrack://activities/today", activities)
}
