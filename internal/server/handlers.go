package server

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/nulzo/modeldocs/internal/domain"
	"go.uber.org/zap"
)

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleDocument serves the most recently generated document verbatim.
func (s *Server) handleDocument(c *gin.Context) {
	content, err := os.ReadFile(s.service.OutputPath())
	if err != nil {
		if os.IsNotExist(err) {
			s.respondProblem(c, domain.NotFound("No document has been generated yet. POST /docs/refresh first."))
			return
		}
		s.respondProblem(c, domain.Internal("Failed to read generated document", err))
		return
	}

	c.Data(http.StatusOK, "text/markdown; charset=utf-8", content)
}

// handleCatalog returns the joined catalog rows as JSON without touching
// the output file.
func (s *Server) handleCatalog(c *gin.Context) {
	rows, err := s.service.Catalog(c.Request.Context())
	if err != nil {
		s.respondProblem(c, domain.BadGateway("Failed to fetch catalog from gateway", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"object": "list",
		"data":   rows,
	})
}

// handleRefresh runs the full generation pipeline on demand.
func (s *Server) handleRefresh(c *gin.Context) {
	count, err := s.service.Generate(c.Request.Context())
	if err != nil {
		s.respondProblem(c, domain.BadGateway("Documentation generation failed", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"models": count})
}

func (s *Server) respondProblem(c *gin.Context, p *domain.Problem) {
	if p.Log != nil {
		s.logger.Error(p.Title,
			zap.String("detail", p.Detail),
			zap.Error(p.Log),
		)
	}
	c.JSON(p.Status, p)
}
