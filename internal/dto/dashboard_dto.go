package dto

import "time"

// Field names in this file are a frozen external contract consumed by the
// admin frontend; they stay camelCase regardless of Go conventions elsewhere.

// DashboardStats is the `data` document of the stats endpoint.
type DashboardStats struct {
	Overview         Overview         `json:"overview"`
	ThisMonth        ThisMonthCounts  `json:"thisMonth"`
	Last7Days        Last7DaysCounts  `json:"last7Days"`
	Trends           Trends           `json:"trends"`
	StatusBreakdown  StatusBreakdown  `json:"statusBreakdown"`
	Recent           RecentLists      `json:"recent"`
	ActivityTimeline ActivityTimeline `json:"activityTimeline"`
}

// Overview carries the unfiltered collection totals.
type Overview struct {
	TotalUsers     int64 `json:"totalUsers"`
	TotalEnquiries int64 `json:"totalEnquiries"`
	TotalProjects  int64 `json:"totalProjects"`
	TotalBlogs     int64 `json:"totalBlogs"`
	TotalVideos    int64 `json:"totalVideos"`
	TotalEvents    int64 `json:"totalEvents"`
	TotalPartners  int64 `json:"totalPartners"`
}

// ThisMonthCounts carries counts since the first instant of the current month.
type ThisMonthCounts struct {
	Users    int64 `json:"users"`
	Contacts int64 `json:"contacts"`
	Projects int64 `json:"projects"`
	Blogs    int64 `json:"blogs"`
}

// Last7DaysCounts carries counts over the trailing seven days.
type Last7DaysCounts struct {
	Contacts int64 `json:"contacts"`
	Projects int64 `json:"projects"`
	Blogs    int64 `json:"blogs"`
}

// Trend compares a current window count against the prior equal-length window.
type Trend struct {
	Current  int64   `json:"current"`
	Previous int64   `json:"previous"`
	Change   float64 `json:"change"`
}

// Trends groups the month-over-month trend triples.
type Trends struct {
	Contacts Trend `json:"contacts"`
	Projects Trend `json:"projects"`
	Blogs    Trend `json:"blogs"`
}

// StatusBreakdown maps status labels to counts per collection. Absent labels
// fold into the "Unknown" key.
type StatusBreakdown struct {
	Contacts map[string]int64 `json:"contacts"`
	Projects map[string]int64 `json:"projects"`
	Blogs    map[string]int64 `json:"blogs"`
}

// RecentContact is the projection of a contact for the recent list.
type RecentContact struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Status    *string   `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// RecentProject is the projection of a project for the recent list, with the
// manager reference resolved to a displayable name.
type RecentProject struct {
	ProjectName    string    `json:"projectName"`
	ClientName     string    `json:"clientName"`
	Status         string    `json:"status"`
	ProjectManager string    `json:"projectManager"`
	CreatedAt      time.Time `json:"createdAt"`
}

// RecentBlog is the projection of a blog post for the recent list.
type RecentBlog struct {
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// RecentEvent is the projection of an event for the recent list.
type RecentEvent struct {
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// RecentLists groups the latest-10 projections per collection.
type RecentLists struct {
	Contacts []RecentContact `json:"contacts"`
	Projects []RecentProject `json:"projects"`
	Blogs    []RecentBlog    `json:"blogs"`
	Events   []RecentEvent   `json:"events"`
}

// TimelinePoint is a day bucket; the `_id` key mirrors the frontend contract.
type TimelinePoint struct {
	Day   string `json:"_id"`
	Count int64  `json:"count"`
}

// ActivityTimeline groups the last-30-days day buckets per collection.
type ActivityTimeline struct {
	Contacts []TimelinePoint `json:"contacts"`
	Projects []TimelinePoint `json:"projects"`
	Blogs    []TimelinePoint `json:"blogs"`
}
