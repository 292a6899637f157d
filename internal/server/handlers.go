package server

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/Kaarthikeya12/FAKE-CHECK/internal/model"
	"github.com/Kaarthikeya12/FAKE-CHECK/internal/pipeline"
	"github.com/gin-gonic/gin"
)

type textRequest struct {
	Text string `json:"text"`
}

type urlRequest struct {
	URL string `json:"url"`
}

type imageURLRequest struct {
	ImageURL string `json:"image_url"`
}

func (s *Server) verifyText(c *gin.Context) {
	var req textRequest
	if !bindJSON(c, &req, "text") {
		return
	}
	v, err := s.verifier.VerifyText(c.Request.Context(), req.Text)
	respond(c, v, err, "text")
}

func (s *Server) verifyClaims(c *gin.Context) {
	var req textRequest
	if !bindJSON(c, &req, "text") {
		return
	}
	v, err := s.verifier.VerifyClaims(c.Request.Context(), req.Text)
	respond(c, v, err, "text")
}

func (s *Server) verifyURL(c *gin.Context) {
	var req urlRequest
	if !bindJSON(c, &req, "url") {
		return
	}
	if strings.TrimSpace(req.URL) == "" {
		badRequest(c, "URL is required", "Provide the article URL to verify", "url")
		return
	}
	v, err := s.verifier.VerifyURL(c.Request.Context(), req.URL)
	respond(c, v, err, "url")
}

func (s *Server) health(c *gin.Context) {
	st := s.verifier.Status()
	c.JSON(http.StatusOK, gin.H{
		"status":               "healthy",
		"service":              ServiceName,
		"version":              s.version,
		"llm_provider":         st.LLMProvider,
		"llm_configured":       st.LLMConfigured,
		"search_configured":    st.SearchConfigured,
		"factcheck_configured": st.FactCheckConfigured,
	})
}

const testClaim = "The Earth is round"

func (s *Server) testText(c *gin.Context) {
	v, err := s.verifier.VerifyText(c.Request.Context(), testClaim)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"test_claim": testClaim, "result": v})
}

// bindJSON decodes the body, blaming field, the endpoint's one required input, on failure
func bindJSON(c *gin.Context, out any, field string) bool {
	if err := c.ShouldBindJSON(out); err != nil {
		badRequest(c, "Invalid request body", err.Error(), field)
		return false
	}
	return true
}

// respond writes a verdict, mapping input errors to 400 and anything else to 500
func respond(c *gin.Context, v model.Verdict, err error, field string) {
	switch {
	case err == nil:
		c.JSON(http.StatusOK, v)
	case errors.Is(err, pipeline.ErrEmptyText):
		badRequest(c, "Text is required", err.Error(), field)
	case errors.Is(err, pipeline.ErrInvalidURL):
		badRequest(c, "Invalid URL", err.Error(), field)
	case errors.Is(err, pipeline.ErrNotImage):
		badRequest(c, "Invalid file type", err.Error(), field)
	default:
		internalError(c, err)
	}
}

func badRequest(c *gin.Context, title, message, field string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   title,
		"message": message,
		"field":   field,
	})
}

func internalError(c *gin.Context, err error) {
	log.Printf("error: %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "Internal server error",
		"message": err.Error(),
	})
}
