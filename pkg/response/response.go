package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/Abh2004/Variphi-assignment/pkg/errors"
)

// Detail is the uniform error body: {"detail": "<message>"}.
type Detail struct {
	Detail string `json:"detail"`
}

// JSON sends a success response with the payload as the body.
func JSON(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Created responds with HTTP 201 Created.
func Created(c *gin.Context, data interface{}) {
	JSON(c, http.StatusCreated, data)
}

// NoContent sends a 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error sends an error response in the detail shape. Unauthenticated
// responses carry the WWW-Authenticate challenge, and internal failures are
// collapsed to a fixed message so error text never leaks to clients.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)

	message := appErr.Message
	if appErr.Status >= http.StatusInternalServerError {
		message = appErrors.ErrInternal.Message
	}
	if appErr.Status == http.StatusUnauthorized {
		c.Header("WWW-Authenticate", "Bearer")
	}

	c.JSON(appErr.Status, Detail{Detail: message})
}
