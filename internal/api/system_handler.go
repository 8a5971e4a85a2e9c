package api

import (
	"context"
	"fmt"
	"net/http"

	"fittrack/backend/internal/repository/mongo"

	"github.com/gin-gonic/gin"
)

const (
	serviceName = "FitTrack API"
	// Diagnostic endpoint lists at most this many collections.
	maxProbedCollections = 10
)

// StatusReporter probes the storage connection for the diagnostic endpoint.
type StatusReporter interface {
	DatabaseName() string
	Check(ctx context.Context, max int) mongo.Status
}

// SystemHandler serves the root, schema overview and storage probe endpoints.
type SystemHandler struct {
	probe         StatusReporter
	uriConfigured bool
}

// NewSystemHandler creates a new SystemHandler. uriConfigured reports whether
// a storage connection string was supplied via configuration.
func NewSystemHandler(probe StatusReporter, uriConfigured bool) *SystemHandler {
	return &SystemHandler{probe: probe, uriConfigured: uriConfigured}
}

// Root handles GET /.
func (h *SystemHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"name": serviceName, "status": "ok"})
}

// SchemaOverview handles GET /schema. It returns the collection names known
// to the storage layer.
func (h *SystemHandler) SchemaOverview(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"collections": mongo.CollectionNames()})
}

// TestDatabase handles GET /test. It reports whether the storage connection
// is configured and reachable. Storage failures degrade into descriptive
// status strings; this endpoint never fails the request.
func (h *SystemHandler) TestDatabase(c *gin.Context) {
	response := gin.H{
		"backend":           "running",
		"database":          "not available",
		"database_url":      configuredString(h.uriConfigured),
		"database_name":     configuredString(h.probe.DatabaseName() != ""),
		"connection_status": "not connected",
		"collections":       []string{},
	}

	status := h.probe.Check(c.Request.Context(), maxProbedCollections)
	switch {
	case status.Connected && status.Error == "":
		response["database"] = "connected and working"
		response["connection_status"] = "connected"
		if status.Collections != nil {
			response["collections"] = status.Collections
		}
	case status.Connected:
		response["database"] = fmt.Sprintf("connected but error: %s", truncate(status.Error, 50))
		response["connection_status"] = "connected"
	default:
		response["database"] = fmt.Sprintf("error: %s", truncate(status.Error, 50))
	}

	c.JSON(http.StatusOK, response)
}

func configuredString(set bool) string {
	if set {
		return "set"
	}
	return "not set"
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
