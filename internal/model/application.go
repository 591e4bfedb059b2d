package model

import (
	"time"

	"github.com/google/uuid"
)

var (
	// ApplicationStatusPending indicates that the application is waiting for review
	ApplicationStatusPending = "pending"
	// ApplicationStatusReviewed indicates that the employer has seen the application
	ApplicationStatusReviewed = "reviewed"
	// ApplicationStatusAccepted indicates that the application has been accepted
	ApplicationStatusAccepted = "accepted"
	// ApplicationStatusRejected indicates that the application has been rejected
	ApplicationStatusRejected = "rejected"
)

// Application represents a job application record.
// The composite unique index on (job_id, applicant_id) is what enforces the
// one-application-per-job rule, so two concurrent applies can never both land.
type Application struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	AppliedAt time.Time `gorm:"type:timestamp" json:"applied_at"`
	Status    string    `gorm:"type:text;default:pending" json:"status"`

	JobID uint `gorm:"not null;uniqueIndex:idx_job_applicant" json:"job_id"`
	Job   Job  `gorm:"foreignKey:JobID;references:ID" json:"-"`

	ApplicantID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_job_applicant" json:"applicant_id"`
	Applicant   User      `gorm:"foreignKey:ApplicantID;references:ID" json:"-"`
}

// ApplicationSummary is the projection returned by the user applications listing
type ApplicationSummary struct {
	ID        uint       `json:"id"`
	Job       JobSummary `json:"job"`
	Status    string     `json:"status"`
	AppliedAt time.Time  `json:"applied_at"`
}
