// ABOUTME: MCP tool implementations for healthtrack.
// ABOUTME: Provides meal, exercise, activity, and summary operations.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/harperreed/healthtrack/internal/models"
	"github.com/harperreed/healthtrack/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// add_meal
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_meal",
		Description: "Record a meal with its calorie count",
	}, s.handleAddMeal)

	// list_meals
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_meals",
		Description: "List meals for a date (defaults to today), newest first",
	}, s.handleListMeals)

	// add_exercise
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_exercise",
		Description: "Record an exercise session with duration and optional distance",
	}, s.handleAddExercise)

	// add_activity
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_activity",
		Description: "Add a sustainability activity for today",
	}, s.handleAddActivity)

	// set_activity_completed
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "set_activity_completed",
		Description: "Mark an activity as complete or incomplete",
	}, s.handleSetActivityCompleted)

	// daily_summary
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "daily_summary",
		Description: "Get calorie, carbon, and activity totals for a date",
	}, s.handleDailySummary)

	// weekly_summary
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "weekly_summary",
		Description: "Get per-day calorie and carbon totals for the seven days ending on a date",
	}, s.handleWeeklySummary)
}

// Tool input/output types

type addMealInput struct {
	Name     string `json:"name" jsonschema:"Name of the meal"`
	Calories int    `json:"calories" jsonschema:"Calorie count for the meal"`
}

type mealOutput struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Calories int    `json:"calories"`
	Message  string `json:"message"`
}

type listMealsInput struct {
	Date string `json:"date,omitempty" jsonschema:"Date in YYYY-MM-DD form, defaults to today"`
}

type addExerciseInput struct {
	Name       string  `json:"name" jsonschema:"Name of the exercise"`
	Duration   int     `json:"duration" jsonschema:"Duration in minutes"`
	DistanceKm float64 `json:"distance_km,omitempty" jsonschema:"Distance in kilometers"`
}

type exerciseOutput struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	CaloriesBurned int     `json:"calories_burned"`
	CarbonSaved    float64 `json:"carbon_saved"`
	Message        string  `json:"message"`
}

type addActivityInput struct {
	Name string `json:"name" jsonschema:"Name of the activity"`
}

type activityOutput struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

type setActivityCompletedInput struct {
	ID        int64 `json:"id" jsonschema:"Activity ID"`
	Completed bool  `json:"completed" jsonschema:"Completion state to set"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type dailySummaryInput struct {
	Date string `json:"date,omitempty" jsonschema:"Date in YYYY-MM-DD form, defaults to today"`
}

type weeklySummaryInput struct {
	EndDate string `json:"end_date,omitempty" jsonschema:"Last day of the window in YYYY-MM-DD form, defaults to today"`
}

type weeklySummaryOutput struct {
	Days                  []storage.DayTotals `json:"days"`
	TotalCaloriesConsumed int                 `json:"total_calories_consumed"`
	TotalCaloriesBurned   int                 `json:"total_calories_burned"`
	TotalCarbonSaved      float64             `json:"total_carbon_saved"`
}

type dailySummaryOutput struct {
	Date                string  `json:"date"`
	CaloriesConsumed    int     `json:"calories_consumed"`
	CaloriesBurned      int     `json:"calories_burned"`
	CarbonSaved         float64 `json:"carbon_saved"`
	ActivitiesCompleted int     `json:"activities_completed"`
	ActivitiesTotal     int     `json:"activities_total"`
}

// Tool handlers

func (s *Server) handleAddMeal(ctx context.Context, req *mcp.CallToolRequest, input addMealInput) (*mcp.CallToolResult, mealOutput, error) {
	if input.Name == "" {
		return nil, mealOutput{}, fmt.Errorf("meal name is required")
	}

	id, err := s.repo.AddMeal(input.Name, input.Calories)
	if err != nil {
		return nil, mealOutput{}, fmt.Errorf("failed to add meal: %w", err)
	}

	return nil, mealOutput{
		ID:       id,
		Name:     input.Name,
		Calories: input.Calories,
		Message:  fmt.Sprintf("Recorded %s (%d cal)", input.Name, input.Calories),
	}, nil
}

func (s *Server) handleListMeals(ctx context.Context, req *mcp.CallToolRequest, input listMealsInput) (*mcp.CallToolResult, any, error) {
	meals, err := s.repo.ListMeals(input.Date)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list meals: %w", err)
	}

	if len(meals) == 0 {
		return nil, map[string]interface{}{"message": "No meals found"}, nil
	}

	return nil, meals, nil
}

func (s *Server) handleAddExercise(ctx context.Context, req *mcp.CallToolRequest, input addExerciseInput) (*mcp.CallToolResult, exerciseOutput, error) {
	if input.Name == "" {
		return nil, exerciseOutput{}, fmt.Errorf("exercise name is required")
	}
	if input.Duration <= 0 {
		return nil, exerciseOutput{}, fmt.Errorf("duration must be positive")
	}

	id, err := s.repo.AddExercise(input.Name, input.Duration, input.DistanceKm)
	if err != nil {
		return nil, exerciseOutput{}, fmt.Errorf("failed to add exercise: %w", err)
	}

	burned := models.CaloriesBurnedFor(input.Duration)
	saved := models.CarbonSavedFor(input.DistanceKm)

	return nil, exerciseOutput{
		ID:             id,
		Name:           input.Name,
		CaloriesBurned: burned,
		CarbonSaved:    saved,
		Message:        fmt.Sprintf("Logged %s: %d cal burned, %.1f kg CO2 saved", input.Name, burned, saved),
	}, nil
}

func (s *Server) handleAddActivity(ctx context.Context, req *mcp.CallToolRequest, input addActivityInput) (*mcp.CallToolResult, activityOutput, error) {
	if input.Name == "" {
		return nil, activityOutput{}, fmt.Errorf("activity name is required")
	}

	id, err := s.repo.AddActivity(input.Name)
	if err != nil {
		return nil, activityOutput{}, fmt.Errorf("failed to add activity: %w", err)
	}

	return nil, activityOutput{
		ID:      id,
		Name:    input.Name,
		Message: fmt.Sprintf("Added activity %s", input.Name),
	}, nil
}

func (s *Server) handleSetActivityCompleted(ctx context.Context, req *mcp.CallToolRequest, input setActivityCompletedInput) (*mcp.CallToolResult, simpleOutput, error) {
	updated, err := s.repo.SetActivityCompleted(input.ID, input.Completed)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to update activity: %w", err)
	}
	if !updated {
		return nil, simpleOutput{}, fmt.Errorf("no activity with id %d", input.ID)
	}

	state := "incomplete"
	if input.Completed {
		state = "complete"
	}
	return nil, simpleOutput{Message: fmt.Sprintf("Activity %d marked %s", input.ID, state)}, nil
}

func (s *Server) handleDailySummary(ctx context.Context, req *mcp.CallToolRequest, input dailySummaryInput) (*mcp.CallToolResult, dailySummaryOutput, error) {
	summary, err := buildDailySummary(s.repo, input.Date)
	if err != nil {
		return nil, dailySummaryOutput{}, err
	}
	return nil, summary, nil
}

func (s *Server) handleWeeklySummary(ctx context.Context, req *mcp.CallToolRequest, input weeklySummaryInput) (*mcp.CallToolResult, weeklySummaryOutput, error) {
	end, err := time.Parse("2006-01-02", resolveDate(s.repo, input.EndDate))
	if err != nil {
		return nil, weeklySummaryOutput{}, fmt.Errorf("invalid end date: %s", input.EndDate)
	}

	days, err := storage.WeeklyTrend(s.repo, end)
	if err != nil {
		return nil, weeklySummaryOutput{}, fmt.Errorf("failed to build weekly summary: %w", err)
	}

	out := weeklySummaryOutput{Days: days}
	for _, day := range days {
		out.TotalCaloriesConsumed += day.CaloriesConsumed
		out.TotalCaloriesBurned += day.CaloriesBurned
		out.TotalCarbonSaved += day.CarbonSaved
	}
	return nil, out, nil
}
