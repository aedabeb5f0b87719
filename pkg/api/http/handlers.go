package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// QuestionResponse is the body returned to the exam platform
type QuestionResponse struct {
	Question string `json:"question"`
	Solution string `json:"solution"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail represents error details
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// handleGetQuestion returns a question and its solution. The platform calls
// this once per student the first time the question is opened.
func (s *Server) handleGetQuestion(c *gin.Context) {
	pair, err := s.questions.Get(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: ErrorDetail{
				Code:    "QUESTION_UNAVAILABLE",
				Message: "No valid question could be produced",
			},
		})
		return
	}

	c.JSON(http.StatusOK, QuestionResponse{
		Question: pair.Question,
		Solution: pair.Solution,
	})
}

// handleHealth handles health check requests
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"mode":   s.questions.Mode(),
	})
}
