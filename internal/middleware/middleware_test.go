package middleware

import (
	"context"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"

	"github.com/Varun532-pixel/naukri-clone/internal/auth"
	"github.com/Varun532-pixel/naukri-clone/internal/database"
	"github.com/Varun532-pixel/naukri-clone/internal/model"
	"github.com/Varun532-pixel/naukri-clone/internal/testutil"
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

func protectedRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	r := gin.Default()
	chain := append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	r.GET("/protected", chain...)
	return r
}

func TestRequireAuth_Success(t *testing.T) {
	token, err := auth.GetAccessToken(t, testDB, database.TestJobseeker1.Email, database.TestSeedPassword)
	assert.NoError(t, err)

	r := protectedRouter(RequireAuth(testDB))
	rec, _ := testutil.MakeJSONRequest(nil, token, r, "/protected", http.MethodGet)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	r := protectedRouter(RequireAuth(testDB))
	rec, _ := testutil.MakeJSONRequest(nil, "", r, "/protected", http.MethodGet)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRequireAuth_GarbageToken(t *testing.T) {
	r := protectedRouter(RequireAuth(testDB))
	rec, _ := testutil.MakeJSONRequest(nil, "not-a-jwt", r, "/protected", http.MethodGet)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	token, _, err := auth.GenerateTokenWithDuration(database.TestJobseeker1.ID, -1*time.Minute, auth.JwtIssuer)
	assert.NoError(t, err)

	r := protectedRouter(RequireAuth(testDB))
	rec, resp := testutil.MakeJSONRequest(nil, token, r, "/protected", http.MethodGet)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, resp["error"], "expired")
}

func TestRequireAuth_WrongIssuer(t *testing.T) {
	token, _, err := auth.GenerateTokenWithDuration(database.TestJobseeker1.ID, time.Hour, "SomeoneElse")
	assert.NoError(t, err)

	r := protectedRouter(RequireAuth(testDB))
	rec, _ := testutil.MakeJSONRequest(nil, token, r, "/protected", http.MethodGet)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuth_UnknownUser(t *testing.T) {
	token, _, err := auth.GenerateTokenWithDuration(uuid.New(), time.Hour, auth.JwtIssuer)
	assert.NoError(t, err)

	r := protectedRouter(RequireAuth(testDB))
	rec, resp := testutil.MakeJSONRequest(nil, token, r, "/protected", http.MethodGet)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, resp["error"], "not exist")
}

func TestCheckRole_Forbidden(t *testing.T) {
	token, err := auth.GetAccessToken(t, testDB, database.TestJobseeker1.Email, database.TestSeedPassword)
	assert.NoError(t, err)

	r := protectedRouter(RequireAuth(testDB), CheckRole(model.RoleEmployer))
	rec, _ := testutil.MakeJSONRequest(nil, token, r, "/protected", http.MethodGet)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCheckRole_Allowed(t *testing.T) {
	token, err := auth.GetAccessToken(t, testDB, database.TestEmployer1.Email, database.TestSeedPassword)
	assert.NoError(t, err)

	r := protectedRouter(RequireAuth(testDB), CheckRole(model.RoleEmployer))
	rec, _ := testutil.MakeJSONRequest(nil, token, r, "/protected", http.MethodGet)

	assert.Equal(t, http.StatusOK, rec.Code)
}
