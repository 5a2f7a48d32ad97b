package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feral-file/nft-bridge/internal/logger"
)

// apiResponse is the envelope every endpoint returns
type apiResponse struct {
	Error   *string `json:"error"`
	Message string  `json:"message"`
	Code    int     `json:"code"`
	Body    any     `json:"body,omitempty"`
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, statusCode int, errorLabel string, message string) {
	c.JSON(statusCode, apiResponse{
		Error:   &errorLabel,
		Message: message,
		Code:    statusCode,
	})
}

// respondBadRequest sends a 400 Bad Request response
func respondBadRequest(c *gin.Context, message string) {
	respondWithError(c, http.StatusBadRequest, "Bad Request", message)
}

// respondNotFound sends a 404 Not Found response
func respondNotFound(c *gin.Context, message string) {
	respondWithError(c, http.StatusNotFound, "Not Found", message)
}

// respondInternalError sends a 500 Internal Server Error response and logs the error
func respondInternalError(c *gin.Context, err error, message string, fields ...zap.Field) {
	logger.Error(err, fields...)
	respondWithError(c, http.StatusInternalServerError, "Internal Server Error", message)
}
