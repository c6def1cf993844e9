package gateway

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"medicheck/cli/internal/api"
	"medicheck/cli/internal/session"
)

func (s *Server) register(r *gin.RouterGroup) {
	r.GET("/session", s.getSession)
	r.POST("/login", s.postLogin)
	r.POST("/logout", s.postLogout)

	authed := r.Group("", s.requireSession)
	authed.GET("/dashboard", s.getDashboard)
	authed.GET("/products/summary", s.getProductSummaries)
	authed.GET("/alerts", s.getAlerts)
	authed.GET("/alerts/count", s.getAlertCount)
	authed.GET("/admin/stats", s.getAdminStats)
}

type sessionResponse struct {
	State string `json:"state"`
	User  any    `json:"user,omitempty"`
}

// getSession mirrors the app's render gate: a browser polls this and
// holds off until the state is no longer "restoring".
func (s *Server) getSession(c *gin.Context) {
	snap := s.sessions.Current()
	resp := sessionResponse{State: snap.State.String()}
	if snap.User != nil {
		resp.User = snap.User
	}
	c.JSON(http.StatusOK, resp)
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (s *Server) postLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := s.sessions.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.JSON(upstreamStatus(err, http.StatusUnauthorized), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (s *Server) postLogout(c *gin.Context) {
	s.sessions.Logout()
	c.Status(http.StatusNoContent)
}

// requireSession rejects data routes while logged out or restoring.
// It does not log the user out on upstream 401s; only restoration
// demotes the session.
func (s *Server) requireSession(c *gin.Context) {
	snap := s.sessions.Current()
	switch snap.State {
	case session.StateLoggedIn:
		c.Next()
	case session.StateRestoring:
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "session_restoring"})
	default:
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not_logged_in"})
	}
}

func (s *Server) getDashboard(c *gin.Context) {
	data, err := s.svc.Dashboard.Overview(c.Request.Context())
	if err != nil {
		s.relayError(c, err)
		return
	}
	c.JSON(http.StatusOK, data)
}

func (s *Server) getProductSummaries(c *gin.Context) {
	summaries, err := s.svc.Dashboard.ProductSummaries(c.Request.Context())
	if err != nil {
		s.relayError(c, err)
		return
	}
	c.JSON(http.StatusOK, summaries)
}

func (s *Server) getAlerts(c *gin.Context) {
	unreadOnly := c.Query("unread_only") == "true"
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit <= 0 {
		limit = 50
	}

	alerts, err := s.svc.Alerts.List(c.Request.Context(), unreadOnly, limit)
	if err != nil {
		s.relayError(c, err)
		return
	}
	c.JSON(http.StatusOK, alerts)
}

func (s *Server) getAlertCount(c *gin.Context) {
	count, err := s.svc.Alerts.UnreadCount(c.Request.Context())
	if err != nil {
		s.relayError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"unread_count": count})
}

func (s *Server) getAdminStats(c *gin.Context) {
	stats, err := s.svc.Admin.Stats(c.Request.Context())
	if err != nil {
		s.relayError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// relayError passes the upstream failure through with its original
// status where one exists.
func (s *Server) relayError(c *gin.Context, err error) {
	c.JSON(upstreamStatus(err, http.StatusBadGateway), gin.H{"error": err.Error()})
}

func upstreamStatus(err error, fallback int) int {
	if apiErr, ok := api.AsError(err); ok && apiErr.Status != 0 {
		return apiErr.Status
	}
	return fallback
}
