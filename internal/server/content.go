package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) ListBlogs(c *gin.Context) {
	resp, err := s.contentSvc.Blogs(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListTestimonials(c *gin.Context) {
	resp, err := s.contentSvc.Testimonials(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
