package models

import (
	"time"

	"gorm.io/datatypes"
)

// Project represents client work tracked by the agency.
type Project struct {
	ID               uint              `gorm:"primaryKey" json:"id"`
	ProjectName      string            `gorm:"size:255;not null" json:"project_name"`
	ClientName       string            `gorm:"size:255" json:"client_name"`
	Status           string            `gorm:"size:32;index" json:"status"`
	ProjectManagerID *uint             `gorm:"index" json:"project_manager_id"`
	ProjectManager   *User             `gorm:"foreignKey:ProjectManagerID" json:"project_manager,omitempty"`
	Metadata         datatypes.JSONMap `gorm:"type:json" json:"metadata"`
	CreatedAt        time.Time         `gorm:"index" json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// Partner is a logo-wall entry; the dashboard only counts them.
type Partner struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	LogoURL   string    `gorm:"size:512" json:"logo_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
