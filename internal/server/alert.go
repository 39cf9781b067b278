package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) CheckExpiry(c *gin.Context) {
	report, err := s.alertSvc.Check(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
