package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/noah-isme/atrium-admin-api/internal/models"
)

// Collection tags the entity families the dashboard reads.
type Collection string

// Collections known to the dashboard repository.
const (
	CollectionUsers     Collection = "users"
	CollectionContacts  Collection = "contacts"
	CollectionProjects  Collection = "projects"
	CollectionBlogPosts Collection = "blog_posts"
	CollectionVideos    Collection = "videos"
	CollectionEvents    Collection = "events"
	CollectionPartners  Collection = "partners"
)

// TimeRange bounds a count on created_at. Since is inclusive, Until exclusive;
// nil bounds are unbounded.
type TimeRange struct {
	Since *time.Time
	Until *time.Time
}

// StatusCount is one row of a group-by-status aggregation. Status is nil for
// records whose status column is NULL.
type StatusCount struct {
	Status *string `gorm:"column:status"`
	Count  int64   `gorm:"column:count"`
}

// DayBucket is one row of a day-bucketed aggregation, keyed YYYY-MM-DD.
type DayBucket struct {
	Day   string `gorm:"column:day"`
	Count int64  `gorm:"column:count"`
}

// DashboardRepository supplies the read queries behind the stats endpoint.
type DashboardRepository interface {
	Count(ctx context.Context, col Collection, rng TimeRange) (int64, error)
	CountByStatus(ctx context.Context, col Collection) ([]StatusCount, error)
	RecentContacts(ctx context.Context, limit int) ([]models.Contact, error)
	RecentProjects(ctx context.Context, limit int) ([]models.Project, error)
	RecentBlogPosts(ctx context.Context, limit int) ([]models.BlogPost, error)
	RecentEvents(ctx context.Context, limit int) ([]models.Event, error)
	DayBuckets(ctx context.Context, col Collection, since time.Time) ([]DayBucket, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository constructs the dashboard repository.
func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) scope(ctx context.Context, col Collection) (*gorm.DB, error) {
	q := r.db.WithContext(ctx)
	switch col {
	case CollectionUsers:
		return q.Model(&models.User{}), nil
	case CollectionContacts:
		return q.Model(&models.Contact{}), nil
	case CollectionProjects:
		return q.Model(&models.Project{}), nil
	case CollectionBlogPosts:
		return q.Model(&models.BlogPost{}), nil
	case CollectionVideos:
		return q.Model(&models.Video{}), nil
	case CollectionEvents:
		return q.Model(&models.Event{}), nil
	case CollectionPartners:
		return q.Model(&models.Partner{}), nil
	default:
		return nil, fmt.Errorf("unknown collection %q", col)
	}
}

func (r *dashboardRepository) Count(ctx context.Context, col Collection, rng TimeRange) (int64, error) {
	q, err := r.scope(ctx, col)
	if err != nil {
		return 0, err
	}

	if rng.Since != nil {
		q = q.Where("created_at >= ?", *rng.Since)
	}
	if rng.Until != nil {
		q = q.Where("created_at < ?", *rng.Until)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count %s: %w", col, err)
	}
	return count, nil
}

func (r *dashboardRepository) CountByStatus(ctx context.Context, col Collection) ([]StatusCount, error) {
	q, err := r.scope(ctx, col)
	if err != nil {
		return nil, err
	}

	var rows []StatusCount
	err = q.Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("group %s by status: %w", col, err)
	}
	return rows, nil
}

func (r *dashboardRepository) RecentContacts(ctx context.Context, limit int) ([]models.Contact, error) {
	var contacts []models.Contact
	err := r.db.WithContext(ctx).
		Select("id", "name", "email", "subject", "status", "created_at").
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&contacts).Error
	return contacts, err
}

func (r *dashboardRepository) RecentProjects(ctx context.Context, limit int) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.WithContext(ctx).
		Select("id", "project_name", "client_name", "status", "project_manager_id", "created_at").
		Preload("ProjectManager", func(q *gorm.DB) *gorm.DB {
			return q.Select("id", "name")
		}).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&projects).Error
	return projects, err
}

func (r *dashboardRepository) RecentBlogPosts(ctx context.Context, limit int) ([]models.BlogPost, error) {
	var posts []models.BlogPost
	err := r.db.WithContext(ctx).
		Select("id", "title", "category", "status", "created_at").
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&posts).Error
	return posts, err
}

func (r *dashboardRepository) RecentEvents(ctx context.Context, limit int) ([]models.Event, error) {
	var events []models.Event
	err := r.db.WithContext(ctx).
		Select("id", "title", "category", "status", "created_at").
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&events).Error
	return events, err
}

func (r *dashboardRepository) DayBuckets(ctx context.Context, col Collection, since time.Time) ([]DayBucket, error) {
	q, err := r.scope(ctx, col)
	if err != nil {
		return nil, err
	}

	var buckets []DayBucket
	err = q.Select(r.dayExpression()+" AS day, COUNT(*) AS count").
		Where("created_at >= ?", since).
		Group("day").
		Order("day ASC").
		Scan(&buckets).Error
	if err != nil {
		return nil, fmt.Errorf("day buckets for %s: %w", col, err)
	}
	return buckets, nil
}

// dayExpression formats created_at as a YYYY-MM-DD string. Timestamps are
// stored in UTC, so the bucket key is the UTC calendar day on both dialects.
func (r *dashboardRepository) dayExpression() string {
	if r.db.Dialector.Name() == "sqlite" {
		return "strftime('%Y-%m-%d', created_at)"
	}
	return "to_char(created_at, 'YYYY-MM-DD')"
}
