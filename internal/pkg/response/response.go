package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// errorBody is the envelope for every error response.
type errorBody struct {
	OK      int    `json:"ok"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func abort(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, errorBody{OK: 0, Code: status, Message: message})
}

// OK sends a 200 response with data as the body. A nil data is sent as JSON null.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Message sends a 200 response of the form {"message": msg}.
func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

// BadRequest sends a 400 error response.
func BadRequest(c *gin.Context, message string) {
	abort(c, http.StatusBadRequest, message)
}

// NotFound sends a 404 error response.
func NotFound(c *gin.Context) {
	abort(c, http.StatusNotFound, "Not Found")
}

// NotFoundMsg sends a 404 error with a custom message.
func NotFoundMsg(c *gin.Context, message string) {
	abort(c, http.StatusNotFound, message)
}

// MethodNotAllowed sends a 405 error response.
func MethodNotAllowed(c *gin.Context) {
	abort(c, http.StatusMethodNotAllowed, "Method Not Allowed")
}

// UnprocessableEntity sends a 422 error response.
func UnprocessableEntity(c *gin.Context, message string) {
	abort(c, http.StatusUnprocessableEntity, message)
}

// InternalError sends a 500 error response.
func InternalError(c *gin.Context, err error) {
	abort(c, http.StatusInternalServerError, err.Error())
}

// ServiceUnavailable sends a 503 response with a custom body.
func ServiceUnavailable(c *gin.Context, data interface{}) {
	c.AbortWithStatusJSON(http.StatusServiceUnavailable, data)
}
