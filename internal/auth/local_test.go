package auth

import (
	"context"
	"errors"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"

	"github.com/Varun532-pixel/naukri-clone/internal/database"
	"github.com/Varun532-pixel/naukri-clone/internal/model"
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

func TestRegisterHandler_Jobseeker(t *testing.T) {
	handler := NewLocalAuthHandler(testDB)

	rec, resp, err := utilities.SimulateAPICall(handler.RegisterHandler, "/register", http.MethodPost, map[string]string{
		"email":    "  New.Seeker@Example.com ",
		"password": "SuperSecret1",
		"role":     "jobseeker",
	})
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotEmpty(t, resp["access_token"])

	user, ok := resp["user"].(map[string]interface{})
	assert.True(t, ok)
	// email is trimmed and lowercased before storage
	assert.Equal(t, "new.seeker@example.com", user["email"])
	assert.Equal(t, model.RoleJobseeker, user["role"])
	// password hash never leaves the server
	_, leaked := user["password"]
	assert.False(t, leaked)
}

func TestRegisterHandler_DuplicateEmail(t *testing.T) {
	handler := NewLocalAuthHandler(testDB)

	rec, resp, err := utilities.SimulateAPICall(handler.RegisterHandler, "/register", http.MethodPost, map[string]string{
		"email":    database.TestJobseeker1.Email,
		"password": "SuperSecret1",
		"role":     "jobseeker",
	})
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, resp["error"], "already exist")
}

func TestRegisterHandler_EmailUniqueIndex(t *testing.T) {
	// the DB index is what stops a concurrent duplicate registration,
	// not the handler's lookup
	duplicate := model.User{
		Email:    database.TestJobseeker1.Email,
		Password: "irrelevant-hash",
		Role:     model.RoleJobseeker,
	}
	err := testDB.Create(&duplicate).Error
	assert.Error(t, err)

	var pgErr *pgconn.PgError
	assert.True(t, errors.As(err, &pgErr))
	assert.Equal(t, "23505", pgErr.Code)
}

func TestRegisterHandler_ShortPassword(t *testing.T) {
	handler := NewLocalAuthHandler(testDB)

	rec, _, err := utilities.SimulateAPICall(handler.RegisterHandler, "/register", http.MethodPost, map[string]string{
		"email":    "short.pass@example.com",
		"password": "short",
		"role":     "employer",
	})
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterHandler_BadRole(t *testing.T) {
	handler := NewLocalAuthHandler(testDB)

	rec, _, err := utilities.SimulateAPICall(handler.RegisterHandler, "/register", http.MethodPost, map[string]string{
		"email":    "bad.role@example.com",
		"password": "SuperSecret1",
		"role":     "admin",
	})
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginHandler_Success(t *testing.T) {
	token, err := GetAccessToken(t, testDB, database.TestEmployer1.Email, database.TestSeedPassword)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	parsed, err := ValidatedToken(token)
	assert.NoError(t, err)
	assert.True(t, parsed.Valid)
}

func TestLoginHandler_WrongPassword(t *testing.T) {
	handler := NewLocalAuthHandler(testDB)

	rec, resp, err := utilities.SimulateAPICall(handler.LoginHandler, "/login", http.MethodPost, map[string]string{
		"email":    database.TestJobseeker1.Email,
		"password": "not-the-password",
	})
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, resp["error"], "incorrect")
}

func TestLoginHandler_UnknownEmail(t *testing.T) {
	handler := NewLocalAuthHandler(testDB)

	rec, resp, err := utilities.SimulateAPICall(handler.LoginHandler, "/login", http.MethodPost, map[string]string{
		"email":    "nobody@example.com",
		"password": "whatever123",
	})
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	// same message as wrong password, no account enumeration
	assert.Contains(t, resp["error"], "incorrect")
}
