package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	balancesheetdomain "github.com/param211/corpmart/internal/balancesheet/domain"
)

func (s *Server) GetBalancesheet(c *gin.Context) {
	resp, err := s.balancesheetSvc.Get(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

type attachBalancesheetRequest struct {
	FileName string `json:"file_name"`
}

func (s *Server) AttachBalancesheet(c *gin.Context) {
	var req attachBalancesheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.balancesheetSvc.Attach(c.Request.Context(), balancesheetdomain.AttachRequest{
		BusinessID: strings.TrimSpace(c.Param("id")),
		FileName:   strings.TrimSpace(req.FileName),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": resp})
}
