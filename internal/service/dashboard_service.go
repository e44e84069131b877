package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	"github.com/noah-isme/atrium-admin-api/internal/dto"
	"github.com/noah-isme/atrium-admin-api/internal/models"
	"github.com/noah-isme/atrium-admin-api/internal/repository"
	"github.com/noah-isme/atrium-admin-api/internal/utils"
)

const (
	recentLimit = 10

	// unknownStatus is the sentinel bucket for records without a status label.
	unknownStatus = "Unknown"

	statsErrorMessage = "Unable to fetch dashboard statistics"
)

// DashboardService aggregates statistics for the admin dashboard.
type DashboardService interface {
	GetStats(ctx context.Context) (dto.DashboardStats, error)
}

type dashboardService struct {
	repo     repository.DashboardRepository
	cache    *redis.Client
	cacheTTL time.Duration
	logger   zerolog.Logger
	now      func() time.Time
}

// NewDashboardService constructs the dashboard aggregator. A nil cache client
// disables caching.
func NewDashboardService(repo repository.DashboardRepository, cache *redis.Client, ttl time.Duration, logger zerolog.Logger) DashboardService {
	return &dashboardService{
		repo:     repo,
		cache:    cache,
		cacheTTL: ttl,
		logger:   logger.With().Str("component", "dashboard_service").Logger(),
		now:      time.Now,
	}
}

// statsWindows holds the calendar-aligned lower bounds derived from a single
// wall-clock instant. All values are UTC; thisMonth doubles as the exclusive
// upper bound of the previous-month range.
type statsWindows struct {
	today      time.Time
	last7Days  time.Time
	last30Days time.Time
	thisMonth  time.Time
	lastMonth  time.Time
}

func resolveWindows(now time.Time) statsWindows {
	utc := now.UTC()
	today := time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
	thisMonth := time.Date(utc.Year(), utc.Month(), 1, 0, 0, 0, 0, time.UTC)

	return statsWindows{
		today:      today,
		last7Days:  today.AddDate(0, 0, -7),
		last30Days: today.AddDate(0, 0, -30),
		thisMonth:  thisMonth,
		lastMonth:  thisMonth.AddDate(0, -1, 0),
	}
}

// statsData collects the raw results of the query catalogue. Each field is
// written by exactly one goroutine of the fan-out, so no locking is needed.
type statsData struct {
	totalUsers    int64
	totalContacts int64
	totalProjects int64
	totalBlogs    int64
	totalVideos   int64
	totalEvents   int64
	totalPartners int64

	monthUsers    int64
	monthContacts int64
	monthProjects int64
	monthBlogs    int64

	weekContacts int64
	weekProjects int64
	weekBlogs    int64

	prevMonthContacts int64
	prevMonthProjects int64
	prevMonthBlogs    int64

	contactStatuses []repository.StatusCount
	projectStatuses []repository.StatusCount
	blogStatuses    []repository.StatusCount

	recentContacts []models.Contact
	recentProjects []models.Project
	recentBlogs    []models.BlogPost
	recentEvents   []models.Event

	contactTimeline []repository.DayBucket
	projectTimeline []repository.DayBucket
	blogTimeline    []repository.DayBucket
}

func (s *dashboardService) GetStats(ctx context.Context) (dto.DashboardStats, error) {
	const cacheKey = "dashboard:stats"
	tracer := otel.Tracer("github.com/noah-isme/atrium-admin-api/internal/service/dashboard")
	ctx, span := tracer.Start(ctx, "dashboard.aggregate")
	defer span.End()

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, cacheKey).Result()
		if err == nil {
			var stats dto.DashboardStats
			if unmarshalErr := json.Unmarshal([]byte(cached), &stats); unmarshalErr == nil {
				span.SetAttributes(attribute.Bool("dashboard.cache_hit", true))
				s.logger.Debug().Msg("dashboard cache hit")
				return stats, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn().Err(err).Msg("failed to read dashboard cache")
			span.RecordError(err)
		}
	}

	windows := resolveWindows(s.now())

	data, err := s.collect(ctx, windows)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "dashboard_collect_failed")
		s.logger.Error().Stack().Err(err).Msg("dashboard aggregation failed")
		return dto.DashboardStats{}, utils.NewAppError(fiber.StatusInternalServerError, statsErrorMessage, err)
	}

	stats := compose(data)
	span.SetAttributes(
		attribute.Bool("dashboard.cache_hit", false),
		attribute.Int64("dashboard.total_contacts", data.totalContacts),
	)

	if s.cache != nil {
		if payload, err := json.Marshal(stats); err == nil {
			if err := s.cache.Set(ctx, cacheKey, payload, s.cacheTTL).Err(); err != nil {
				s.logger.Warn().Err(err).Msg("failed to store dashboard cache")
				span.RecordError(err)
			}
		}
	}

	return stats, nil
}

// collect issues the whole query catalogue in a single concurrent wave and
// fails fast with the first error.
func (s *dashboardService) collect(ctx context.Context, w statsWindows) (*statsData, error) {
	data := &statsData{}
	g, ctx := errgroup.WithContext(ctx)

	count := func(dst *int64, col repository.Collection, rng repository.TimeRange) {
		g.Go(func() error {
			n, err := s.repo.Count(ctx, col, rng)
			if err != nil {
				return err
			}
			*dst = n
			return nil
		})
	}
	statuses := func(dst *[]repository.StatusCount, col repository.Collection) {
		g.Go(func() error {
			rows, err := s.repo.CountByStatus(ctx, col)
			if err != nil {
				return err
			}
			*dst = rows
			return nil
		})
	}
	buckets := func(dst *[]repository.DayBucket, col repository.Collection) {
		g.Go(func() error {
			rows, err := s.repo.DayBuckets(ctx, col, w.last30Days)
			if err != nil {
				return err
			}
			*dst = rows
			return nil
		})
	}

	allTime := repository.TimeRange{}
	sinceMonth := repository.TimeRange{Since: &w.thisMonth}
	sinceWeek := repository.TimeRange{Since: &w.last7Days}
	previousMonth := repository.TimeRange{Since: &w.lastMonth, Until: &w.thisMonth}

	count(&data.totalUsers, repository.CollectionUsers, allTime)
	count(&data.totalContacts, repository.CollectionContacts, allTime)
	count(&data.totalProjects, repository.CollectionProjects, allTime)
	count(&data.totalBlogs, repository.CollectionBlogPosts, allTime)
	count(&data.totalVideos, repository.CollectionVideos, allTime)
	count(&data.totalEvents, repository.CollectionEvents, allTime)
	count(&data.totalPartners, repository.CollectionPartners, allTime)

	count(&data.monthUsers, repository.CollectionUsers, sinceMonth)
	count(&data.monthContacts, repository.CollectionContacts, sinceMonth)
	count(&data.monthProjects, repository.CollectionProjects, sinceMonth)
	count(&data.monthBlogs, repository.CollectionBlogPosts, sinceMonth)

	count(&data.weekContacts, repository.CollectionContacts, sinceWeek)
	count(&data.weekProjects, repository.CollectionProjects, sinceWeek)
	count(&data.weekBlogs, repository.CollectionBlogPosts, sinceWeek)

	count(&data.prevMonthContacts, repository.CollectionContacts, previousMonth)
	count(&data.prevMonthProjects, repository.CollectionProjects, previousMonth)
	count(&data.prevMonthBlogs, repository.CollectionBlogPosts, previousMonth)

	statuses(&data.contactStatuses, repository.CollectionContacts)
	statuses(&data.projectStatuses, repository.CollectionProjects)
	statuses(&data.blogStatuses, repository.CollectionBlogPosts)

	g.Go(func() error {
		rows, err := s.repo.RecentContacts(ctx, recentLimit)
		if err != nil {
			return err
		}
		data.recentContacts = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.repo.RecentProjects(ctx, recentLimit)
		if err != nil {
			return err
		}
		data.recentProjects = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.repo.RecentBlogPosts(ctx, recentLimit)
		if err != nil {
			return err
		}
		data.recentBlogs = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.repo.RecentEvents(ctx, recentLimit)
		if err != nil {
			return err
		}
		data.recentEvents = rows
		return nil
	})

	buckets(&data.contactTimeline, repository.CollectionContacts)
	buckets(&data.projectTimeline, repository.CollectionProjects)
	buckets(&data.blogTimeline, repository.CollectionBlogPosts)

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return data, nil
}

// trend compares a window count against the prior equal-length window. A zero
// previous count maps to 0 when nothing changed and to 100 when activity
// appeared from nothing.
func trend(current, previous int64) dto.Trend {
	var change float64
	switch {
	case previous == 0 && current == 0:
		change = 0
	case previous == 0:
		change = 100
	default:
		change = float64(current-previous) / float64(previous) * 100
	}

	return dto.Trend{Current: current, Previous: previous, Change: change}
}

// foldStatuses normalises group-by-status rows into a label to count map.
// NULL and empty labels collapse into the Unknown bucket; duplicates add.
func foldStatuses(rows []repository.StatusCount) map[string]int64 {
	folded := make(map[string]int64, len(rows))
	for _, row := range rows {
		label := unknownStatus
		if row.Status != nil && *row.Status != "" {
			label = *row.Status
		}
		folded[label] += row.Count
	}
	return folded
}

func compose(data *statsData) dto.DashboardStats {
	recentContacts := make([]dto.RecentContact, 0, len(data.recentContacts))
	for _, contact := range data.recentContacts {
		recentContacts = append(recentContacts, dto.RecentContact{
			Name:      contact.Name,
			Email:     contact.Email,
			Subject:   contact.Subject,
			Status:    contact.Status,
			CreatedAt: contact.CreatedAt,
		})
	}

	recentProjects := make([]dto.RecentProject, 0, len(data.recentProjects))
	for _, project := range data.recentProjects {
		manager := ""
		if project.ProjectManager != nil {
			manager = project.ProjectManager.Name
		}
		recentProjects = append(recentProjects, dto.RecentProject{
			ProjectName:    project.ProjectName,
			ClientName:     project.ClientName,
			Status:         project.Status,
			ProjectManager: manager,
			CreatedAt:      project.CreatedAt,
		})
	}

	recentBlogs := make([]dto.RecentBlog, 0, len(data.recentBlogs))
	for _, post := range data.recentBlogs {
		recentBlogs = append(recentBlogs, dto.RecentBlog{
			Title:     post.Title,
			Category:  post.Category,
			Status:    post.Status,
			CreatedAt: post.CreatedAt,
		})
	}

	recentEvents := make([]dto.RecentEvent, 0, len(data.recentEvents))
	for _, event := range data.recentEvents {
		recentEvents = append(recentEvents, dto.RecentEvent{
			Title:     event.Title,
			Category:  event.Category,
			Status:    event.Status,
			CreatedAt: event.CreatedAt,
		})
	}

	return dto.DashboardStats{
		Overview: dto.Overview{
			TotalUsers:     data.totalUsers,
			TotalEnquiries: data.totalContacts,
			TotalProjects:  data.totalProjects,
			TotalBlogs:     data.totalBlogs,
			TotalVideos:    data.totalVideos,
			TotalEvents:    data.totalEvents,
			TotalPartners:  data.totalPartners,
		},
		ThisMonth: dto.ThisMonthCounts{
			Users:    data.monthUsers,
			Contacts: data.monthContacts,
			Projects: data.monthProjects,
			Blogs:    data.monthBlogs,
		},
		Last7Days: dto.Last7DaysCounts{
			Contacts: data.weekContacts,
			Projects: data.weekProjects,
			Blogs:    data.weekBlogs,
		},
		Trends: dto.Trends{
			Contacts: trend(data.monthContacts, data.prevMonthContacts),
			Projects: trend(data.monthProjects, data.prevMonthProjects),
			Blogs:    trend(data.monthBlogs, data.prevMonthBlogs),
		},
		StatusBreakdown: dto.StatusBreakdown{
			Contacts: foldStatuses(data.contactStatuses),
			Projects: foldStatuses(data.projectStatuses),
			Blogs:    foldStatuses(data.blogStatuses),
		},
		Recent: dto.RecentLists{
			Contacts: recentContacts,
			Projects: recentProjects,
			Blogs:    recentBlogs,
			Events:   recentEvents,
		},
		ActivityTimeline: dto.ActivityTimeline{
			Contacts: timeline(data.contactTimeline),
			Projects: timeline(data.projectTimeline),
			Blogs:    timeline(data.blogTimeline),
		},
	}
}

func timeline(rows []repository.DayBucket) []dto.TimelinePoint {
	points := make([]dto.TimelinePoint, 0, len(rows))
	for _, row := range rows {
		points = append(points, dto.TimelinePoint{Day: row.Day, Count: row.Count})
	}
	return points
}
