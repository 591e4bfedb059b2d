// Package job provides HTTP handlers for job posting related operations.
package job

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Varun532-pixel/naukri-clone/internal/database"
	"github.com/Varun532-pixel/naukri-clone/internal/model"
	"github.com/Varun532-pixel/naukri-clone/internal/utilities"
)

// JobController handles job posting related endpoints
type JobController struct {
	DB *database.DBinstanceStruct
}

// NewJobController creates a new instance of JobController
func NewJobController(db *database.DBinstanceStruct) *JobController {
	return &JobController{
		DB: db,
	}
}

// GetJobs fetches all non-expired jobs that match query from the database
// and returns them as a JSON response. The endpoint is public; when a valid
// token was attached the response marks jobs the caller already applied to.
// @Summary Get job postings based on query
// @Description Every query are not required; all given filters are combined with AND
// @Tags Job
// @Produce json
// @Param search query string false "Free-text match against title and description (substring, case insensitive) or skills (token, case insensitive)"
// @Param location query string false "Location field with substring matching and case insensitive"
// @Param type query string false "Job type, must exactly match one of Full-time, Part-time, Contract, Internship"
// @Param experience query integer false "Years of experience; matches jobs whose range contains the value"
// @Success 200 {array} model.JobResponse "Return matching job posting(s), newest first"
// @Failure 400 {object} utilities.ErrorResponse "Invalid experience value"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs [get]
func (jc *JobController) GetJobs(c *gin.Context) {

	// Public endpoint: a zero user just means no applied-flag resolution
	user, _ := utilities.ExtractUser(c)

	rawSearch := c.Query("search")
	rawLocation := c.Query("location")
	rawType := c.Query("type")
	rawExperience := c.Query("experience")

	var rawJobs []model.Job

	result := jc.DB.Preload("Employer").
		Preload("Applications").
		Where("expires_at > ? OR expires_at IS NULL", time.Now())

	if rawSearch != "" {
		result = result.Where(
			"(title ILIKE ? OR description ILIKE ? OR ? ILIKE ANY(skills))",
			"%"+rawSearch+"%", "%"+rawSearch+"%", rawSearch,
		)
	}

	if rawLocation != "" {
		result = result.Where("location ILIKE ?", "%"+rawLocation+"%")
	}

	if rawType != "" {
		result = result.Where("type = ?", rawType)
	}

	if rawExperience != "" {
		years, err := strconv.Atoi(rawExperience)
		if err != nil {
			c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
				Error: fmt.Sprintf("Invalid experience query: %s", err.Error()),
			})
			return
		}
		result = result.Where("exp_min <= ? AND exp_max >= ?", years, years)
	}

	result = result.Order(clause.OrderByColumn{
		Column: clause.Column{Name: "created_at"},
		Desc:   true,
	}).Find(&rawJobs)

	if err := result.Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to fetch jobs: ", err.Error()),
		})
		return
	}

	jobs := []model.JobResponse{}
	for _, rawJob := range rawJobs {
		resp, err := rawJob.ToJobResponse(user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
				Error: fmt.Sprint("Failed to process job: ", err.Error()),
			})
			return
		}
		jobs = append(jobs, resp)
	}

	c.JSON(http.StatusOK, jobs)
}

// GetJobByID fetches a job by its ID from the database
// and returns it as a JSON response.
// @Summary Get job posting by ID
// @Description Retrieve a specific job posting using its unique ID
// @Tags Job
// @Produce json
// @Param id path integer true "ID of desired job"
// @Success 200 {object} model.JobResponse "Return the job with the specified ID"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs/{id} [get]
func (jc *JobController) GetJobByID(c *gin.Context) {
	id := c.Param("id")

	user, _ := utilities.ExtractUser(c)

	job := model.Job{}
	if err := jc.DB.
		Preload("Employer").
		Preload("Applications").
		Where("id = ?", id).
		First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve job: %s", err.Error()),
		})
		return
	}

	resp, err := job.ToJobResponse(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to process job: ", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreateJobHandler handles the creation of a new job posting by an employer.
// Role gating happens in middleware; the handler owns field validation and
// forces ownership to the acting account.
// @Summary Create job posting based on given json structure
// @Description Only employer accounts have access to this endpoint
// @Tags Job
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param Job body model.EditableJobInfo true "Input job information"
// @Success 201 {object} model.Job "Successfully create job"
// @Failure 400 {object} utilities.ErrorResponse "Invalid authorization header, or invalid job struct"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not logged in as employer"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs [post]
func (jc *JobController) CreateJobHandler(c *gin.Context) {

	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	// construct job from request
	job := model.Job{}
	decoder := json.NewDecoder(c.Request.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&job.EditableJobInfo); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	if !utilities.Contains(model.JobTypes, job.Type) {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Job type '%s' not allowed", job.Type),
		})
		return
	}

	if job.Salary.Currency == "" {
		job.Salary.Currency = "INR"
	}

	// save job
	job.EmployerID = user.ID
	if err := jc.DB.Create(&job).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to create job: ", err),
		})
		return
	}

	c.JSON(http.StatusCreated, job)
}

// ApplyHandler appends an application from the acting account to a job.
// The (job, applicant) unique index makes the append atomic: a race between
// two identical applies surfaces as a unique violation, not a double insert.
// @Summary Apply to the job with the given ID
// @Description Any authenticated account can apply once per job
// @Tags Job
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path integer true "ID of the job to apply to"
// @Success 200 {object} utilities.MessageResponse "Application submitted"
// @Failure 400 {object} utilities.ErrorResponse "Invalid authorization header"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Failure 409 {object} utilities.ErrorResponse "Already applied to this job"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs/{id}/apply [post]
func (jc *JobController) ApplyHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	id := c.Param("id")

	job := model.Job{}
	if err := jc.DB.Where("id = ?", id).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve job: %s", err.Error()),
		})
		return
	}

	// Friendly pre-check; the unique index below remains the authority
	existing := model.Application{}
	if err := jc.DB.
		Where("applicant_id = ? AND job_id = ?", user.ID, job.ID).
		First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, utilities.ErrorResponse{
			Error: "You have already applied to this job",
		})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: "Failed to check existing application",
		})
		return
	}

	application := model.Application{
		JobID:       job.ID,
		ApplicantID: user.ID,
		Status:      model.ApplicationStatusPending,
		AppliedAt:   time.Now(),
	}

	if err := jc.DB.Create(&application).Error; err != nil {
		var pqErr *pgconn.PgError
		if errors.As(err, &pqErr) {
			// 23505: the concurrent duplicate the pre-check cannot catch
			if pqErr.Code == "23505" {
				c.JSON(http.StatusConflict, utilities.ErrorResponse{
					Error: "You have already applied to this job",
				})
				return
			}
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to create application: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, utilities.MessageResponse{Message: "Application submitted successfully"})
}

// EditJob allows an employer to update a job posting they own.
// Merge semantics match the profile handlers: zero-valued fields in the
// body are left untouched, so a field cannot be cleared back to its zero
// value through this endpoint.
// @Summary Edit job posting based on given json structure
// @Description Only the employer that owns the job has access to this endpoint
// @Tags Job
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path integer true "ID of desired job"
// @Param Job body model.EditableJobInfo true "Input job information"
// @Success 200 {object} model.Job "Successfully update job"
// @Failure 400 {object} utilities.ErrorResponse "Invalid authorization header, or invalid job struct"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Do not have permission to edit"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs/{id} [patch]
func (jc *JobController) EditJob(c *gin.Context) {

	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	id := c.Param("id")

	job := model.Job{}
	if err := jc.DB.Where("id = ?", id).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve job: %s", err.Error()),
		})
		return
	}

	// The job must belong to the requesting employer
	if job.EmployerID.String() != user.ID.String() {
		c.JSON(http.StatusForbidden, utilities.ErrorResponse{
			Error: "You are not allowed to edit this job",
		})
		return
	}

	// Bind incoming JSON to a temporary struct to avoid overwriting ownership fields
	updated := model.Job{}
	decoder := json.NewDecoder(c.Request.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&updated.EditableJobInfo); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to parse request body: %s", err.Error()),
		})
		return
	}

	if updated.Type != "" && !utilities.Contains(model.JobTypes, updated.Type) {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Job type '%s' not allowed", updated.Type),
		})
		return
	}

	if err := jc.DB.Model(&job).Updates(updated).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to update job: %s", err.Error()),
		})
		return
	}

	// Reload the job to return the latest data
	if err := jc.DB.Where("id = ?", job.ID).First(&job).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve updated job: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, job)
}

// DeleteJob allows an employer to delete a job posting they own.
// Ownership is enforced here, not in any client.
// @Summary Delete given job ID
// @Description Only the employer that owns the job has access to this endpoint
// @Tags Job
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path integer true "ID of desired job"
// @Success 200 {object} utilities.MessageResponse "Successfully delete job"
// @Failure 400 {object} utilities.ErrorResponse "Invalid authorization header"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Do not have permission to delete this job"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs/{id} [delete]
func (jc *JobController) DeleteJob(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	id := c.Param("id")

	job := model.Job{}
	if err := jc.DB.Where("id = ?", id).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve job: %s", err.Error()),
		})
		return
	}

	if job.EmployerID.String() != user.ID.String() {
		c.JSON(http.StatusForbidden, utilities.ErrorResponse{
			Error: "You are not allowed to delete this job",
		})
		return
	}

	if err := jc.DB.Delete(&job).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to delete job: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, utilities.MessageResponse{Message: "Job deleted"})
}
