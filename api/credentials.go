package api

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gridbase/gridbase-backend/models"
	"github.com/gridbase/gridbase-backend/utils"
)

const (
	clientSessionHeader = "X-Client-Session-Id"
	actionGroupHeader   = "X-Client-Undo-Redo-Action-Group-Id"
)

// credentialsMiddleware builds the request credentials from the bearer token
// and the undo/redo client headers, and stores them in the request context.
func credentialsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		creds, err := credentialsFromRequest(c)
		if presentError(ctx, c, err) {
			c.Abort()
			return
		}
		c.Request = c.Request.WithContext(utils.StoreCredentialsInContext(ctx, creds))
		c.Next()
	}
}

// The bearer token is the user id itself: authentication proper is delegated
// to the gateway in front of this service.
func credentialsFromRequest(c *gin.Context) (models.Credentials, error) {
	token, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
	if !found || token == "" {
		return models.Credentials{}, errors.Wrap(models.UnAuthorizedError, "missing bearer token")
	}
	userId, err := uuid.Parse(strings.TrimSpace(token))
	if err != nil {
		return models.Credentials{}, errors.Wrap(models.UnAuthorizedError,
			"bearer token is not a valid user id")
	}

	creds := models.Credentials{
		UserId:    userId,
		SessionId: c.GetHeader(clientSessionHeader),
	}

	if groupHeader := c.GetHeader(actionGroupHeader); groupHeader != "" {
		group, err := uuid.Parse(groupHeader)
		if err != nil {
			return models.Credentials{}, errors.Wrapf(models.BadParameterError,
				"%s is not a valid action group id", actionGroupHeader)
		}
		creds.ActionGroup = group
	} else if creds.HasSession() {
		// Without an explicit group header every request forms its own
		// group: one undo reverses one request's worth of actions.
		creds.ActionGroup = uuid.New()
	}

	return creds, nil
}
