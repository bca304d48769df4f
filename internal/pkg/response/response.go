package response

import "github.com/gin-gonic/gin"

// Envelope is the JSON shape of every API response.
type Envelope struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
}

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, Envelope{
		Success: true,
		Data:    data,
	})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, Envelope{
		Error: &ErrorBody{Code: code, Message: message},
	})
}

func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, Envelope{
		Error: &ErrorBody{Code: code, Message: message, Details: details},
	})
}

// CustomError accepts either a message string, an error, or a details payload.
func CustomError(c *gin.Context, statusCode int, code string, detail any) {
	switch v := detail.(type) {
	case string:
		Error(c, statusCode, code, v)
	case error:
		if statusCode >= 500 {
			_ = c.Error(v)
			Error(c, statusCode, code, "Internal error")
			return
		}
		Error(c, statusCode, code, v.Error())
	default:
		ErrorWithDetails(c, statusCode, code, code, v)
	}
}
