package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	chatbotdomain "github.com/param211/corpmart/internal/chatbot/domain"
)

func (s *Server) CreateChatbotRequest(c *gin.Context) {
	var req chatbotdomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.chatbotSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": resp})
}
