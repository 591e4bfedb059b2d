package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

var (
	// JobStatusActive indicates the posting accepts applications
	JobStatusActive = "active"
	// JobStatusClosed indicates the posting no longer accepts applications
	JobStatusClosed = "closed"
	// JobStatusDraft indicates the posting is not published yet
	JobStatusDraft = "draft"
)

// JobTypes is the closed set of allowed job type values
var JobTypes = []string{"Full-time", "Part-time", "Contract", "Internship"}

// SalaryRange holds the offered salary band of a job
type SalaryRange struct {
	Min      int    `gorm:"type:integer" json:"min"`
	Max      int    `gorm:"type:integer" json:"max"`
	Currency string `gorm:"type:text;default:INR" json:"currency"`
}

// ExperienceRange holds the required years of experience of a job
type ExperienceRange struct {
	Min int `gorm:"type:integer" json:"min"`
	Max int `gorm:"type:integer" json:"max"`
}

// EditableJobInfo is part of job that can be edited
type EditableJobInfo struct {
	Title        string          `gorm:"type:text" json:"title"`
	Description  string          `gorm:"type:text" json:"description"`
	Location     string          `gorm:"type:text" json:"location"`
	Type         string          `gorm:"type:text" json:"type"`
	Requirements pq.StringArray  `gorm:"type:text[]" json:"requirements"`
	Skills       pq.StringArray  `gorm:"type:text[]" json:"skills"`
	Salary       SalaryRange     `gorm:"embedded;embeddedPrefix:salary_" json:"salary"`
	Experience   ExperienceRange `gorm:"embedded;embeddedPrefix:exp_" json:"experience"`
	ExpiresAt    *time.Time      `gorm:"type:timestamp" json:"expires_at,omitempty"`
}

// Job is gorm model for store job posting data in DB
type Job struct {
	ID         uint      `gorm:"primaryKey;autoIncrement;->" json:"id"`
	EmployerID uuid.UUID `gorm:"type:uuid;not null;index;<-:create" json:"employer_id"`
	Employer   User      `gorm:"foreignKey:EmployerID;references:ID" json:"-"`
	EditableJobInfo
	Status       string        `gorm:"type:text;default:active" json:"status"`
	CreatedAt    time.Time     `gorm:"type:timestamp;default:CURRENT_TIMESTAMP;->" json:"created_at"`
	Applications []Application `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"applications"`
}

// JobResponse is the response struct for a job with its employer summary
// and whether the requesting user already applied
type JobResponse struct {
	ID         uint      `json:"id"`
	EmployerID uuid.UUID `json:"employer_id"`
	EditableJobInfo
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	Applications []Application   `json:"applications"`
	Employer     EmployerSummary `json:"employer"`
	UserApplied  bool            `json:"user_applied"`
}

// ToJobResponse converts Job to JobResponse
func (j *Job) ToJobResponse(user User) (JobResponse, error) {

	var resp JobResponse

	b, err := json.Marshal(j)
	if err != nil {
		return resp, err
	}

	err = json.Unmarshal(b, &resp)
	if err != nil {
		return resp, err
	}

	resp.Employer = j.Employer.ToEmployerSummary()

	applied := false
	if user.Role == RoleJobseeker {
		for _, application := range j.Applications {
			if application.ApplicantID.String() == user.ID.String() {
				applied = true
				break
			}
		}
	}
	resp.UserApplied = applied

	return resp, nil
}

// JobSummary is the trimmed job view embedded in application summaries
type JobSummary struct {
	ID       uint            `json:"id"`
	Title    string          `json:"title"`
	Employer EmployerSummary `json:"employer"`
	Location string          `json:"location"`
	Type     string          `json:"type"`
	Salary   SalaryRange     `json:"salary"`
}

// ToJobSummary trims a Job down to the fields application listings expose
func (j *Job) ToJobSummary() JobSummary {
	return JobSummary{
		ID:       j.ID,
		Title:    j.Title,
		Employer: j.Employer.ToEmployerSummary(),
		Location: j.Location,
		Type:     j.Type,
		Salary:   j.Salary,
	}
}
