package httpx

import (
	"log"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every failed API call.
// swagger:model ErrorResponse
type ErrorResponse struct {
	Status  string `json:"status"  example:"error"`
	Message string `json:"message" example:"All fields are required"`
}

// MessageResponse is the body of API calls that only confirm an action.
// swagger:model MessageResponse
type MessageResponse struct {
	Status  string `json:"status"  example:"success"`
	Message string `json:"message" example:"Cart updated"`
}

// Fail writes the error envelope. cause is logged with the request id and
// never sent to the client.
func Fail(c *gin.Context, code int, msg string, cause error) {
	if cause != nil {
		rid, _ := c.Get("rid")
		log.Printf("[http] rid=%v %s %s: %s: %v", rid, c.Request.Method, c.Request.URL.Path, msg, cause)
	}
	c.AbortWithStatusJSON(code, ErrorResponse{Status: "error", Message: msg})
}

// OK writes a success envelope carrying msg.
func OK(c *gin.Context, code int, msg string) {
	c.JSON(code, MessageResponse{Status: "success", Message: msg})
}
