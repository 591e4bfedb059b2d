package user

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"

	"github.com/Varun532-pixel/naukri-clone/internal/auth"
	"github.com/Varun532-pixel/naukri-clone/internal/controller/job"
	"github.com/Varun532-pixel/naukri-clone/internal/database"
	"github.com/Varun532-pixel/naukri-clone/internal/middleware"
	"github.com/Varun532-pixel/naukri-clone/internal/model"
	"github.com/Varun532-pixel/naukri-clone/internal/testutil"
	"github.com/Varun532-pixel/naukri-clone/internal/utilities"
)

var testDB *database.DBinstanceStruct

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	var err error
	var midTeardown func(context.Context, ...testcontainers.TerminateOption) error
	midTeardown, testDB, err = database.GetTestDB()
	if err != nil {
		os.Exit(1)
	}
	m.Run()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if midTeardown != nil {
		_ = midTeardown(ctx)
	}
}

func userRouter() *gin.Engine {
	r := gin.Default()
	uc := NewUserController(testDB)
	jc := job.NewJobController(testDB)
	r.GET("/users/applications", middleware.RequireAuth(testDB), uc.GetApplications)
	r.GET("/users/posted-jobs", middleware.RequireAuth(testDB), middleware.CheckRole(model.RoleEmployer), uc.GetPostedJobs)
	r.PATCH("/users/profile", middleware.RequireAuth(testDB), middleware.CheckRole(model.RoleJobseeker), uc.EditProfile)
	r.PATCH("/users/company", middleware.RequireAuth(testDB), middleware.CheckRole(model.RoleEmployer), uc.EditCompanyProfile)
	r.POST("/jobs", middleware.RequireAuth(testDB), middleware.CheckRole(model.RoleEmployer), jc.CreateJobHandler)
	r.POST("/jobs/:id/apply", middleware.RequireAuth(testDB), jc.ApplyHandler)
	return r
}

func TestGetPostedJobs_JobseekerForbidden(t *testing.T) {
	seekerToken, err := auth.GetAccessToken(t, testDB, database.TestJobseeker1.Email, database.TestSeedPassword)
	assert.NoError(t, err)

	r := userRouter()
	rec, _ := testutil.MakeJSONRequest(nil, seekerToken, r, "/users/posted-jobs", http.MethodGet)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGetPostedJobs_OwnedOnly(t *testing.T) {
	employerToken, err := auth.GetAccessToken(t, testDB, database.TestEmployer2.Email, database.TestSeedPassword)
	assert.NoError(t, err)

	r := userRouter()
	rec, resp := testutil.MakeJSONListRequest(nil, employerToken, r, "/users/posted-jobs", http.MethodGet)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, resp)
	for _, j := range resp {
		assert.Equal(t, database.TestEmployer2.ID.String(), j["employer_id"])
	}
}

func TestGetApplications_Empty(t *testing.T) {
	seekerToken, err := auth.GetAccessToken(t, testDB, database.TestJobseeker2.Email, database.TestSeedPassword)
	assert.NoError(t, err)

	// isolation: this seeker has not applied anywhere yet
	assert.NoError(t, testDB.
		Where("applicant_id = ?", database.TestJobseeker2.ID).
		Delete(&model.Application{}).Error)

	r := userRouter()
	rec, resp := testutil.MakeJSONListRequest(nil, seekerToken, r, "/users/applications", http.MethodGet)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, resp)
}

// Full walk through the board: register an employer, post a job, apply as a
// fresh jobseeker, then check both dashboards see the result.
func TestRegisterPostApplyScenario(t *testing.T) {
	authHandler := auth.NewLocalAuthHandler(testDB)

	recE, respE, err := utilities.SimulateAPICall(authHandler.RegisterHandler, "/register", http.MethodPost, map[string]string{
		"email":    "scenario.employer@example.com",
		"password": "ScenarioPass1",
		"role":     "employer",
	})
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, recE.Code)
	employerToken := respE["access_token"].(string)

	recS, respS, err := utilities.SimulateAPICall(authHandler.RegisterHandler, "/register", http.MethodPost, map[string]string{
		"email":    "scenario.seeker@example.com",
		"password": "ScenarioPass1",
		"role":     "jobseeker",
	})
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, recS.Code)
	seekerToken := respS["access_token"].(string)

	r := userRouter()

	jobBody := gin.H{
		"title":       "Platform Engineer",
		"description": "Own the deployment pipeline.",
		"location":    "Hyderabad",
		"type":        "Full-time",
		"salary":      gin.H{"min": 900000, "max": 1600000},
		"experience":  gin.H{"min": 2, "max": 6},
		"skills":      []string{"Go", "Kubernetes"},
	}
	recJob, respJob := testutil.MakeJSONRequest(jobBody, employerToken, r, "/jobs", http.MethodPost)
	assert.Equal(t, http.StatusCreated, recJob.Code)
	jobID := int(respJob["id"].(float64))

	recApply, _ := testutil.MakeJSONRequest(nil, seekerToken, r, fmt.Sprintf("/jobs/%d/apply", jobID), http.MethodPost)
	assert.Equal(t, http.StatusOK, recApply.Code)

	// jobseeker dashboard
	recApps, apps := testutil.MakeJSONListRequest(nil, seekerToken, r, "/users/applications", http.MethodGet)
	assert.Equal(t, http.StatusOK, recApps.Code)
	assert.Len(t, apps, 1)
	assert.Equal(t, model.ApplicationStatusPending, apps[0]["status"])

	appJob, ok := apps[0]["job"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "Platform Engineer", appJob["title"])
	assert.Equal(t, "Hyderabad", appJob["location"])

	// employer dashboard
	recPosted, posted := testutil.MakeJSONListRequest(nil, employerToken, r, "/users/posted-jobs", http.MethodGet)
	assert.Equal(t, http.StatusOK, recPosted.Code)
	assert.Len(t, posted, 1)
	assert.Equal(t, "Platform Engineer", posted[0]["title"])

	applications, ok := posted[0]["applications"].([]interface{})
	assert.True(t, ok)
	assert.Len(t, applications, 1)
}

func TestEditProfile(t *testing.T) {
	seekerToken, err := auth.GetAccessToken(t, testDB, database.TestJobseeker1.Email, database.TestSeedPassword)
	assert.NoError(t, err)

	r := userRouter()
	body := gin.H{
		"name":   "Asha K.",
		"resume": "https://cdn.example.com/resumes/asha.pdf",
		"experience": []gin.H{
			{
				"title":       "Junior Developer",
				"company":     "StartupCo",
				"location":    "Pune",
				"current":     true,
				"description": "Built internal tools in Go.",
			},
		},
	}

	rec, resp := testutil.MakeJSONRequest(body, seekerToken, r, "/users/profile", http.MethodPatch)
	assert.Equal(t, http.StatusOK, rec.Code)

	profile, ok := resp["profile"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "Asha K.", profile["name"])
	assert.Equal(t, "https://cdn.example.com/resumes/asha.pdf", profile["resume"])
	// untouched fields survive the merge
	assert.Equal(t, "Pune", profile["location"])

	experience, ok := resp["experience"].([]interface{})
	assert.True(t, ok)
	assert.Len(t, experience, 1)
}

func TestEditCompanyProfile(t *testing.T) {
	employerToken, err := auth.GetAccessToken(t, testDB, database.TestEmployer1.Email, database.TestSeedPassword)
	assert.NoError(t, err)

	r := userRouter()
	body := gin.H{"description": "Platform engineering at scale"}

	rec, resp := testutil.MakeJSONRequest(body, employerToken, r, "/users/company", http.MethodPatch)
	assert.Equal(t, http.StatusOK, rec.Code)

	company, ok := resp["company"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "Platform engineering at scale", company["description"])
	assert.Equal(t, "TechNova", company["name"])
}
