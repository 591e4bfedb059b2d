// Package model contain gorm model for recording data to database
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

var (
	// RoleJobseeker is the role for accounts that browse and apply to jobs
	RoleJobseeker = "jobseeker"
	// RoleEmployer is the role for accounts that post and manage jobs
	RoleEmployer = "employer"
)

// EditableProfileInfo is the jobseeker-side profile block that can be edited
type EditableProfileInfo struct {
	Name     string         `gorm:"type:text" json:"name"`
	Phone    string         `gorm:"type:text" json:"phone"`
	Location string         `gorm:"type:text" json:"location"`
	Skills   pq.StringArray `gorm:"type:text[]" json:"skills"`
	Resume   string         `gorm:"type:text" json:"resume"`
}

// EditableCompanyInfo is the employer-side company block that can be edited
type EditableCompanyInfo struct {
	Name        string `gorm:"type:text" json:"name"`
	Website     string `gorm:"type:text" json:"website"`
	Description string `gorm:"type:text" json:"description"`
	Logo        string `gorm:"type:text" json:"logo"`
	Location    string `gorm:"type:text" json:"location"`
}

// ExperienceEntry is one past position on a jobseeker profile
type ExperienceEntry struct {
	ID          uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"-"`
	Title       string     `gorm:"type:text" json:"title"`
	Company     string     `gorm:"type:text" json:"company"`
	Location    string     `gorm:"type:text" json:"location"`
	From        *time.Time `gorm:"type:timestamp" json:"from,omitempty"`
	To          *time.Time `gorm:"type:timestamp" json:"to,omitempty"`
	Current     bool       `gorm:"type:boolean;default:false" json:"current"`
	Description string     `gorm:"type:text" json:"description"`
}

// EducationEntry is one school record on a jobseeker profile
type EducationEntry struct {
	ID           uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"-"`
	School       string     `gorm:"type:text" json:"school"`
	Degree       string     `gorm:"type:text" json:"degree"`
	FieldOfStudy string     `gorm:"type:text" json:"field_of_study"`
	From         *time.Time `gorm:"type:timestamp" json:"from,omitempty"`
	To           *time.Time `gorm:"type:timestamp" json:"to,omitempty"`
}

// User is gorm model for store account data in DB
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Email     string    `gorm:"type:text;uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:text" json:"-"`
	Role      string    `gorm:"type:text;not null" json:"role"`
	CreatedAt time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP;->" json:"created_at"`

	EditableProfileInfo `gorm:"embedded;embeddedPrefix:profile_" json:"profile"`
	EditableCompanyInfo `gorm:"embedded;embeddedPrefix:company_" json:"company"`

	Experience []ExperienceEntry `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"experience"`
	Education  []EducationEntry  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"education"`
}

// EmployerSummary is the trimmed owning-employer view attached to job responses
type EmployerSummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Logo string    `json:"logo"`
}

// ToEmployerSummary trims a User down to the fields job listings expose
func (u *User) ToEmployerSummary() EmployerSummary {
	return EmployerSummary{
		ID:   u.ID,
		Name: u.EditableCompanyInfo.Name,
		Logo: u.EditableCompanyInfo.Logo,
	}
}

// AuthResponse struct holds the response data for user login or registration
type AuthResponse struct {
	User        User   `json:"user"`
	AccessToken string `json:"access_token"`
}
