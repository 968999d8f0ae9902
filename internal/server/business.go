package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	businessdomain "github.com/param211/corpmart/internal/business/domain"
	"github.com/param211/corpmart/pkg/db/pagination"
)

func (s *Server) ListBusinesses(c *gin.Context) {
	var query struct {
		pagination.Pagination
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	filter, err := businessdomain.ParseListFilter(c.Request.URL.Query())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.businessSvc.List(c.Request.Context(), businessdomain.ListRequest{
		Filter: filter,
		Page:   query.Pagination,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetBusinessDetail(c *gin.Context) {
	id, err := parseOptionalSnowflakeID(c.Query("business_id"))
	if err != nil {
		AbortWithError(c, newValidationError("business_id", "invalid_business_id", "invalid business_id"))
		return
	}
	if id == nil {
		AbortWithError(c, newValidationError("business_id", "required", "business_id is required"))
		return
	}

	resp, err := s.businessSvc.Detail(c.Request.Context(), businessdomain.DetailRequest{
		BusinessID: id.String(),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetBusinessMaxValues(c *gin.Context) {
	resp, err := s.businessSvc.MaxValues(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) SubmitBusiness(c *gin.Context) {
	var req businessdomain.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.businessSvc.Submit(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": resp})
}

func (s *Server) ListOwnBusinesses(c *gin.Context) {
	resp, err := s.businessSvc.ListMine(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

type verifyBusinessRequest struct {
	VerifiedBy               string `json:"verified_by"`
	AdminDefinedSellingPrice *int64 `json:"admin_defined_selling_price"`
}

func (s *Server) VerifyBusiness(c *gin.Context) {
	var req verifyBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.businessSvc.Verify(c.Request.Context(), businessdomain.VerifyRequest{
		BusinessID:               strings.TrimSpace(c.Param("id")),
		VerifiedBy:               strings.TrimSpace(req.VerifiedBy),
		AdminDefinedSellingPrice: req.AdminDefinedSellingPrice,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
