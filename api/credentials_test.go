package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/gridbase/gridbase-backend/models"
	"github.com/gridbase/gridbase-backend/utils"
)

func credentialsTestRouter(capture *models.Credentials) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/test", credentialsMiddleware(), func(c *gin.Context) {
		*capture = utils.CredentialsFromCtx(c.Request.Context())
		c.Status(http.StatusOK)
	})
	return router
}

func TestCredentialsMiddleware(t *testing.T) {
	userId := uuid.New()
	groupId := uuid.New()

	t.Run("nominal", func(t *testing.T) {
		var creds models.Credentials
		router := credentialsTestRouter(&creds)

		req := httptest.NewRequest(http.MethodGet, "https://gridbase.io/test", nil)
		req.Header.Add("Authorization", "Bearer "+userId.String())
		req.Header.Add(clientSessionHeader, "session-1")
		req.Header.Add(actionGroupHeader, groupId.String())

		r := httptest.NewRecorder()
		router.ServeHTTP(r, req)

		assert.Equal(t, http.StatusOK, r.Code)
		assert.Equal(t, models.Credentials{
			UserId:      userId,
			SessionId:   "session-1",
			ActionGroup: groupId,
		}, creds)
	})

	t.Run("a session without a group header gets a fresh group per request", func(t *testing.T) {
		var creds models.Credentials
		router := credentialsTestRouter(&creds)

		req := httptest.NewRequest(http.MethodGet, "https://gridbase.io/test", nil)
		req.Header.Add("Authorization", "Bearer "+userId.String())
		req.Header.Add(clientSessionHeader, "session-1")

		r := httptest.NewRecorder()
		router.ServeHTTP(r, req)

		assert.Equal(t, http.StatusOK, r.Code)
		assert.True(t, creds.HasSession())
		assert.NotEqual(t, uuid.Nil, creds.ActionGroup)
	})

	t.Run("no session means no action group", func(t *testing.T) {
		var creds models.Credentials
		router := credentialsTestRouter(&creds)

		req := httptest.NewRequest(http.MethodGet, "https://gridbase.io/test", nil)
		req.Header.Add("Authorization", "Bearer "+userId.String())

		r := httptest.NewRecorder()
		router.ServeHTTP(r, req)

		assert.Equal(t, http.StatusOK, r.Code)
		assert.False(t, creds.HasSession())
		assert.Equal(t, uuid.Nil, creds.ActionGroup)
	})

	t.Run("missing bearer token", func(t *testing.T) {
		var creds models.Credentials
		router := credentialsTestRouter(&creds)

		req := httptest.NewRequest(http.MethodGet, "https://gridbase.io/test", nil)

		r := httptest.NewRecorder()
		router.ServeHTTP(r, req)

		assert.Equal(t, http.StatusUnauthorized, r.Code)
	})

	t.Run("bearer token is not a user id", func(t *testing.T) {
		var creds models.Credentials
		router := credentialsTestRouter(&creds)

		req := httptest.NewRequest(http.MethodGet, "https://gridbase.io/test", nil)
		req.Header.Add("Authorization", "Bearer not-a-uuid")

		r := httptest.NewRecorder()
		router.ServeHTTP(r, req)

		assert.Equal(t, http.StatusUnauthorized, r.Code)
	})

	t.Run("malformed action group header", func(t *testing.T) {
		var creds models.Credentials
		router := credentialsTestRouter(&creds)

		req := httptest.NewRequest(http.MethodGet, "https://gridbase.io/test", nil)
		req.Header.Add("Authorization", "Bearer "+userId.String())
		req.Header.Add(clientSessionHeader, "session-1")
		req.Header.Add(actionGroupHeader, "not-a-uuid")

		r := httptest.NewRecorder()
		router.ServeHTTP(r, req)

		assert.Equal(t, http.StatusBadRequest, r.Code)
	})
}
