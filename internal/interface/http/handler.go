package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/envwatch/internal/domain/monitor"
	apperrors "github.com/yanqian/envwatch/pkg/errors"
)

// Handler wires the HTTP transport to the monitor service.
type Handler struct {
	monitorSvc monitor.Service
	logger     *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(monitorSvc monitor.Service, logger *slog.Logger) *Handler {
	return &Handler{
		monitorSvc: monitorSvc,
		logger:     logger.With("component", "http.handler"),
	}
}

// recommendationRequest is the body of POST /recommendations.
type recommendationRequest struct {
	Snapshot monitor.Snapshot `json:"snapshot"`
	Role     string           `json:"role"`
}

// Snapshot advances the simulated feed and returns a fresh snapshot.
func (h *Handler) Snapshot(c *gin.Context) {
	c.JSON(http.StatusOK, h.monitorSvc.Current(c.Request.Context()))
}

// SnapshotStream pushes one snapshot per poll tick using Server-Sent Events.
func (h *Handler) SnapshotStream(c *gin.Context) {
	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "stream_unsupported", "streaming not supported", nil))
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	for snap := range h.monitorSvc.Stream(c.Request.Context()) {
		payload, err := json.Marshal(snap)
		if err != nil {
			h.logger.Error("marshal snapshot failed", "error", err)
			continue
		}
		c.Writer.Write([]byte("data: "))
		c.Writer.Write(payload)
		c.Writer.Write([]byte("\n\n"))
		flusher.Flush()
	}
}

// Sensors returns per-location readings for the map view.
func (h *Handler) Sensors(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sensors": h.monitorSvc.SensorMap(c.Request.Context())})
}

// CurrentAlerts evaluates alerts against a fresh snapshot.
func (h *Handler) CurrentAlerts(c *gin.Context) {
	ctx := c.Request.Context()
	snap := h.monitorSvc.Current(ctx)
	c.JSON(http.StatusOK, gin.H{"snapshot": snap, "alerts": h.monitorSvc.Alerts(ctx, snap)})
}

// EvaluateAlerts derives alerts from a caller supplied snapshot.
func (h *Handler) EvaluateAlerts(c *gin.Context) {
	var snap monitor.Snapshot
	if err := c.ShouldBindJSON(&snap); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, apperrors.CodeInvalidRequest, errMessage(err), err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"alerts": h.monitorSvc.Alerts(c.Request.Context(), snap)})
}

// CurrentRecommendations returns recommendations for ?role= against a fresh snapshot.
func (h *Handler) CurrentRecommendations(c *gin.Context) {
	ctx := c.Request.Context()
	role := c.Query("role")
	snap := h.monitorSvc.Current(ctx)
	c.JSON(http.StatusOK, gin.H{
		"role":            role,
		"recommendations": h.monitorSvc.Recommendations(ctx, snap, role),
	})
}

// EvaluateRecommendations derives recommendations from a caller supplied snapshot.
func (h *Handler) EvaluateRecommendations(c *gin.Context) {
	var req recommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, apperrors.CodeInvalidRequest, errMessage(err), err))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"role":            req.Role,
		"recommendations": h.monitorSvc.Recommendations(c.Request.Context(), req.Snapshot, req.Role),
	})
}

// Dashboard returns the composed view for ?role=.
func (h *Handler) Dashboard(c *gin.Context) {
	view, err := h.monitorSvc.Dashboard(c.Request.Context(), c.Query("role"))
	if err != nil {
		status := http.StatusInternalServerError
		code := "dashboard_failed"
		if apperrors.IsCode(err, apperrors.CodeInvalidRole) {
			status = http.StatusBadRequest
			code = apperrors.CodeInvalidRole
		}
		abortWithError(c, NewHTTPError(status, code, errMessage(err), err))
		return
	}
	c.JSON(http.StatusOK, view)
}

// Thresholds exposes the static threshold table grouped by domain.
func (h *Handler) Thresholds(c *gin.Context) {
	c.JSON(http.StatusOK, h.monitorSvc.Thresholds().ByDomain())
}

// Roles exposes the static role table.
func (h *Handler) Roles(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"roles": h.monitorSvc.Roles()})
}

// Locations exposes the static sensor sites.
func (h *Handler) Locations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"locations": h.monitorSvc.Locations()})
}

func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
