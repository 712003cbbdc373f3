// Package mcp exposes the tracker to GUI and assistant front ends over the
// Model Context Protocol's stdio transport.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/caltrack/caltrack/internal/database"
	"github.com/caltrack/caltrack/internal/services"
	"github.com/caltrack/caltrack/internal/usecase"
)

// Server wraps the MCP server with calorie-tracker functionality
type Server struct {
	server *mcp.Server
	dbCtx  *database.Context
}

// NewServer creates a new MCP server instance
func NewServer(dbPath string) (*Server, error) {
	dbCtx, err := database.CreateDatabase(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create database: %w", err)
	}

	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    "caltrack",
		Version: "0.1.0",
	}, nil)

	s := &Server{
		server: mcpServer,
		dbCtx:  dbCtx,
	}

	s.registerTools()

	return s, nil
}

// Run starts the MCP server with stdio transport
func (s *Server) Run(ctx context.Context) error {
	defer database.CloseDatabase(s.dbCtx)
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "log_meal",
		Description: "Log a consumed meal by food name, with optional portion and date",
	}, s.handleLogMeal)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_food",
		Description: "Look up nutrition facts for a food in the local catalog",
	}, s.handleGetFood)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_foods",
		Description: "Fuzzy-search the external food catalog by name",
	}, s.handleSearchFoods)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "daily_summary",
		Description: "Summarise logged calories and macros over a date range",
	}, s.handleDailySummary)
}

// Input/Output types for each tool

type LogMealInput struct {
	Name    string   `json:"name" jsonschema:"required,description=Food name as stored in the catalog"`
	Portion *float64 `json:"portion,omitempty" jsonschema:"description=Consumed portion in grams (food's reference portion if omitted)"`
	Date    *string  `json:"date,omitempty" jsonschema:"description=Calendar day YYYY-MM-DD (today if omitted)"`
}

type LogMealOutput struct {
	ID       string  `json:"id"`
	Date     string  `json:"date"`
	Portion  float64 `json:"portion"`
	Calories float64 `json:"calories"`
}

type GetFoodInput struct {
	Name string `json:"name" jsonschema:"required,description=Food name to look up"`
}

type GetFoodOutput struct {
	Name     string  `json:"name"`
	Portion  float64 `json:"portion"`
	Proteins float64 `json:"proteins"`
	Fats     float64 `json:"fats"`
	Carbs    float64 `json:"carbs"`
	Sugar    float64 `json:"sugar"`
	Sodium   float64 `json:"sodium"`
	Water    float64 `json:"water"`
	Calories float64 `json:"calories"`
}

type SearchFoodsInput struct {
	Query      string `json:"query" jsonschema:"required,description=Food name to search for"`
	MaxResults *int   `json:"maxResults,omitempty" jsonschema:"description=Maximum number of results (default 15)"`
}

type SearchFoodsOutput struct {
	Results []SearchResult `json:"results"`
}

type SearchResult struct {
	Description string             `json:"description"`
	Portions    map[string]float64 `json:"portions,omitempty"`
	Proteins    float64            `json:"proteins"`
	Fats        float64            `json:"fats"`
	Carbs       float64            `json:"carbs"`
	Calories    float64            `json:"calories"`
}

type DailySummaryInput struct {
	StartDate *string `json:"startDate,omitempty" jsonschema:"description=Range start YYYY-MM-DD (first logged day if omitted)"`
	EndDate   *string `json:"endDate,omitempty" jsonschema:"description=Range end YYYY-MM-DD (last logged day if omitted)"`
}

type DailySummaryOutput struct {
	DailyCalories map[string]float64 `json:"dailyCalories"`
	MacroTotals   map[string]float64 `json:"macroTotals"`
	EntryCount    int                `json:"entryCount"`
}

// Tool handlers

func (s *Server) handleLogMeal(ctx context.Context, req *mcp.CallToolRequest, input LogMealInput) (*mcp.CallToolResult, LogMealOutput, error) {
	uc := usecase.NewLog(s.dbCtx)

	mealInput := usecase.MealInput{Name: input.Name}
	if input.Portion != nil {
		mealInput.Portion = *input.Portion
	}
	if input.Date != nil {
		mealInput.Date = *input.Date
	}

	entry, err := uc.Add(ctx, mealInput)
	if err != nil {
		return nil, LogMealOutput{}, fmt.Errorf("failed to log meal: %w", err)
	}

	return nil, LogMealOutput{
		ID:       entry.ID,
		Date:     entry.Date,
		Portion:  entry.Portion,
		Calories: entry.Food.Calories(),
	}, nil
}

func (s *Server) handleGetFood(ctx context.Context, req *mcp.CallToolRequest, input GetFoodInput) (*mcp.CallToolResult, GetFoodOutput, error) {
	catalog := services.NewFoodCatalog(s.dbCtx)

	food, err := catalog.GetByName(ctx, input.Name)
	if err != nil {
		return nil, GetFoodOutput{}, fmt.Errorf("failed to look up food: %w", err)
	}
	if food.IsZero() {
		return nil, GetFoodOutput{}, fmt.Errorf("food not found: %s", input.Name)
	}

	return nil, GetFoodOutput{
		Name:     food.Name,
		Portion:  food.Portion,
		Proteins: food.Proteins,
		Fats:     food.Fats,
		Carbs:    food.Carbs,
		Sugar:    food.Sugar,
		Sodium:   food.Sodium,
		Water:    food.Water,
		Calories: food.Calories(),
	}, nil
}

func (s *Server) handleSearchFoods(ctx context.Context, req *mcp.CallToolRequest, input SearchFoodsInput) (*mcp.CallToolResult, SearchFoodsOutput, error) {
	external := services.NewExternalCatalog(s.dbCtx)

	maxResults := services.DefaultMaxResults
	if input.MaxResults != nil {
		maxResults = *input.MaxResults
	}

	var results []SearchResult
	for food, err := range external.FindSimilar(ctx, input.Query, maxResults) {
		if err != nil {
			return nil, SearchFoodsOutput{}, fmt.Errorf("failed to search foods: %w", err)
		}
		results = append(results, SearchResult{
			Description: food.Description,
			Portions:    food.PortionsMap(),
			Proteins:    food.Proteins,
			Fats:        food.Fats,
			Carbs:       food.Carbs,
			Calories:    food.Calories(),
		})
	}

	return nil, SearchFoodsOutput{Results: results}, nil
}

func (s *Server) handleDailySummary(ctx context.Context, req *mcp.CallToolRequest, input DailySummaryInput) (*mcp.CallToolResult, DailySummaryOutput, error) {
	uc := usecase.NewLog(s.dbCtx)

	first, last, err := uc.FirstAndLastDates(ctx)
	if err != nil {
		return nil, DailySummaryOutput{}, fmt.Errorf("failed to read log bounds: %w", err)
	}

	start := first.Format(services.DateLayout)
	end := last.Format(services.DateLayout)
	if input.StartDate != nil {
		start = *input.StartDate
	}
	if input.EndDate != nil {
		end = *input.EndDate
	}
	if _, err := time.Parse(services.DateLayout, start); err != nil {
		return nil, DailySummaryOutput{}, fmt.Errorf("invalid start date: %w", err)
	}
	if _, err := time.Parse(services.DateLayout, end); err != nil {
		return nil, DailySummaryOutput{}, fmt.Errorf("invalid end date: %w", err)
	}

	entries, err := uc.EntriesBetween(ctx, start, end)
	if err != nil {
		return nil, DailySummaryOutput{}, fmt.Errorf("failed to read entries: %w", err)
	}

	return nil, DailySummaryOutput{
		DailyCalories: usecase.DailyCalories(entries),
		MacroTotals:   usecase.MacroTotals(entries),
		EntryCount:    len(entries),
	}, nil
}
