package contract_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/atrium-admin-api/internal/dto"
	"github.com/noah-isme/atrium-admin-api/internal/handler"
)

type stubDashboardService struct {
	stats dto.DashboardStats
}

func (s stubDashboardService) GetStats(context.Context) (dto.DashboardStats, error) {
	return s.stats, nil
}

func TestDashboardStatsContract(t *testing.T) {
	schemaPath, err := filepath.Abs(filepath.Join("..", "contracts", "dashboard_stats.schema.json"))
	require.NoError(t, err)

	compiler := jsonschema.NewCompiler()
	schema, err := compiler.Compile("file://" + schemaPath)
	require.NoError(t, err)

	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	status := "New"
	stats := dto.DashboardStats{
		Overview:  dto.Overview{TotalUsers: 4, TotalEnquiries: 9, TotalProjects: 3, TotalBlogs: 6, TotalVideos: 1, TotalEvents: 2, TotalPartners: 5},
		ThisMonth: dto.ThisMonthCounts{Users: 1, Contacts: 3, Projects: 1, Blogs: 2},
		Last7Days: dto.Last7DaysCounts{Contacts: 2, Projects: 1, Blogs: 1},
		Trends: dto.Trends{
			Contacts: dto.Trend{Current: 3, Previous: 6, Change: -50},
			Projects: dto.Trend{Current: 1, Previous: 0, Change: 100},
			Blogs:    dto.Trend{Current: 0, Previous: 0, Change: 0},
		},
		StatusBreakdown: dto.StatusBreakdown{
			Contacts: map[string]int64{"New": 7, "Unknown": 2},
			Projects: map[string]int64{"active": 3},
			Blogs:    map[string]int64{"published": 6},
		},
		Recent: dto.RecentLists{
			Contacts: []dto.RecentContact{{Name: "Alice", Email: "alice@example.com", Subject: "Quote", Status: &status, CreatedAt: now}},
			Projects: []dto.RecentProject{{ProjectName: "Relaunch", ClientName: "Acme", Status: "active", ProjectManager: "Dana", CreatedAt: now}},
			Blogs:    []dto.RecentBlog{{Title: "Hello", Category: "news", Status: "published", CreatedAt: now}},
			Events:   []dto.RecentEvent{{Title: "Meetup", Category: "community", Status: "scheduled", CreatedAt: now}},
		},
		ActivityTimeline: dto.ActivityTimeline{
			Contacts: []dto.TimelinePoint{{Day: "2026-08-27", Count: 1}, {Day: "2026-08-28", Count: 2}},
			Projects: []dto.TimelinePoint{},
			Blogs:    []dto.TimelinePoint{{Day: "2026-08-29", Count: 1}},
		},
	}

	app := fiber.New()
	handler.NewDashboardHandler(stubDashboardService{stats: stats}, zerolog.Nop()).Register(app.Group("/api/dashboard"))

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/stats", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var payload interface{}
	require.NoError(t, json.Unmarshal(body, &payload))
	require.NoError(t, schema.Validate(payload))
}
