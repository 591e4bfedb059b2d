// Package user provides HTTP handlers for account related operations.
package user

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"

	"github.com/Varun532-pixel/naukri-clone/internal/database"
	"github.com/Varun532-pixel/naukri-clone/internal/model"
	"github.com/Varun532-pixel/naukri-clone/internal/utilities"
)

// UserController handles account related endpoints
type UserController struct {
	DB *database.DBinstanceStruct
}

// NewUserController creates a new instance of UserController
func NewUserController(db *database.DBinstanceStruct) *UserController {
	return &UserController{
		DB: db,
	}
}

// GetApplications lists every application the acting account has made,
// each projected onto a summary of the job it targets.
// @Summary List the acting account's job applications
// @Tags User
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {array} model.ApplicationSummary "All applications by the account"
// @Failure 400 {object} utilities.ErrorResponse "Invalid authorization header"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /users/applications [get]
func (uc *UserController) GetApplications(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var applications []model.Application
	if err := uc.DB.
		Preload("Job").
		Preload("Job.Employer").
		Where("applicant_id = ?", user.ID).
		Find(&applications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to fetch applications: %s", err.Error()),
		})
		return
	}

	summaries := []model.ApplicationSummary{}
	for _, application := range applications {
		summaries = append(summaries, model.ApplicationSummary{
			ID:        application.ID,
			Job:       application.Job.ToJobSummary(),
			Status:    application.Status,
			AppliedAt: application.AppliedAt,
		})
	}

	c.JSON(http.StatusOK, summaries)
}

// GetPostedJobs lists every job owned by the acting employer, newest first.
// @Summary List the acting employer's posted jobs
// @Description Only employer accounts have access to this endpoint
// @Tags User
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {array} model.Job "All jobs owned by the employer"
// @Failure 400 {object} utilities.ErrorResponse "Invalid authorization header"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not logged in as employer"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /users/posted-jobs [get]
func (uc *UserController) GetPostedJobs(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var jobs []model.Job
	if err := uc.DB.
		Preload("Applications").
		Where("employer_id = ?", user.ID).
		Order(clause.OrderByColumn{
			Column: clause.Column{Name: "created_at"},
			Desc:   true,
		}).
		Find(&jobs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to fetch posted jobs: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, jobs)
}

type editProfileInfo struct {
	model.EditableProfileInfo
	Experience []model.ExperienceEntry `json:"experience"`
	Education  []model.EducationEntry  `json:"education"`
}

// EditProfile handles editing a jobseeker's profile information, including
// retrieving the original record from the database, merging the non-empty
// fields, and replacing the experience/education history when provided.
// @Summary Edit jobseeker profile
// @Description Overwrite non-empty profile fields and save into database
// @Tags User
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param profile body editProfileInfo true "Profile info to be written"
// @Success 200 {object} model.User "Successfully overwrite"
// @Failure 400 {object} utilities.ErrorResponse "Invalid authorization header or request body"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not logged in as jobseeker"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /users/profile [patch]
func (uc *UserController) EditProfile(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var incoming editProfileInfo
	decoder := json.NewDecoder(c.Request.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&incoming); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	utilities.MergeNonEmpty(&user.EditableProfileInfo, &incoming.EditableProfileInfo)

	if err := uc.DB.Model(&user).Updates(map[string]interface{}{
		"profile_name":     user.EditableProfileInfo.Name,
		"profile_phone":    user.EditableProfileInfo.Phone,
		"profile_location": user.EditableProfileInfo.Location,
		"profile_skills":   user.EditableProfileInfo.Skills,
		"profile_resume":   user.EditableProfileInfo.Resume,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to update profile: %s", err.Error()),
		})
		return
	}

	if incoming.Experience != nil {
		if err := uc.replaceHistory(user, incoming.Experience, &model.ExperienceEntry{}); err != nil {
			c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
				Error: fmt.Sprintf("Failed to update experience history: %s", err.Error()),
			})
			return
		}
	}
	if incoming.Education != nil {
		if err := uc.replaceHistory(user, incoming.Education, &model.EducationEntry{}); err != nil {
			c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
				Error: fmt.Sprintf("Failed to update education history: %s", err.Error()),
			})
			return
		}
	}

	// Reload with histories to return the latest data
	if err := uc.DB.Preload("Experience").Preload("Education").
		Where("id = ?", user.ID).First(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve updated profile: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, user)
}

// replaceHistory wipes and rewrites one of the per-user history tables.
func (uc *UserController) replaceHistory(user model.User, entries interface{}, modelPtr interface{}) error {
	if err := uc.DB.Where("user_id = ?", user.ID).Delete(modelPtr).Error; err != nil {
		return err
	}

	switch typed := entries.(type) {
	case []model.ExperienceEntry:
		for i := range typed {
			typed[i].ID = 0
			typed[i].UserID = user.ID
		}
		if len(typed) == 0 {
			return nil
		}
		return uc.DB.Create(&typed).Error
	case []model.EducationEntry:
		for i := range typed {
			typed[i].ID = 0
			typed[i].UserID = user.ID
		}
		if len(typed) == 0 {
			return nil
		}
		return uc.DB.Create(&typed).Error
	}
	return nil
}

// EditCompanyProfile handles editing an employer's company information.
// @Summary Edit employer company profile
// @Description Overwrite non-empty company fields and save into database
// @Tags User
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param company body model.EditableCompanyInfo true "Company info to be written"
// @Success 200 {object} model.User "Successfully overwrite"
// @Failure 400 {object} utilities.ErrorResponse "Invalid authorization header or request body"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not logged in as employer"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /users/company [patch]
func (uc *UserController) EditCompanyProfile(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var incoming model.EditableCompanyInfo
	decoder := json.NewDecoder(c.Request.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&incoming); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	utilities.MergeNonEmpty(&user.EditableCompanyInfo, &incoming)

	if err := uc.DB.Model(&user).Updates(map[string]interface{}{
		"company_name":        user.EditableCompanyInfo.Name,
		"company_website":     user.EditableCompanyInfo.Website,
		"company_description": user.EditableCompanyInfo.Description,
		"company_logo":        user.EditableCompanyInfo.Logo,
		"company_location":    user.EditableCompanyInfo.Location,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to update company profile: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, user)
}
