// Package server exposes the bridge over HTTP for the web front end.
package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/brightbridge/server/internal/bridge/dispatch"
	"github.com/brightbridge/server/internal/bridge/model"
	"github.com/brightbridge/server/internal/core"
	errx "github.com/brightbridge/server/internal/core/error"
)

const (
	emptyMessageApology = "Please enter a message to continue our conversation."
	longMessageApology  = "Your message is quite long. Please try breaking it into smaller parts so I can better help you."
)

// Server wires the dispatcher into gin handlers.
type Server struct {
	dispatcher    *dispatch.Dispatcher
	cfg           model.ServerConfig
	env           core.Environment
	credentialSet bool
}

// New creates the HTTP server wrapper.
func New(d *dispatch.Dispatcher, cfg model.ServerConfig, env core.Environment, credentialSet bool) *Server {
	return &Server{dispatcher: d, cfg: cfg, env: env, credentialSet: credentialSet}
}

// Router builds the gin engine with all routes attached.
func (s *Server) Router() *gin.Engine {
	if s.env.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), cors())

	r.GET("/health", s.health)

	api := r.Group("/api")
	api.POST("/chat", s.chat)
	api.GET("/test", s.test)

	return r
}

func (s *Server) chat(c *gin.Context) {
	var req model.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   errx.InvalidInputMessage,
			"reply":   emptyMessageApology,
		})
		return
	}

	if len(req.Message) == 0 || len(trimmed(req.Message)) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "message is required",
			"reply":   emptyMessageApology,
		})
		return
	}
	if len(req.Message) > s.cfg.MaxMessageChars {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "message too long",
			"reply":   longMessageApology,
		})
		return
	}

	req.Message = trimmed(req.Message)
	req.UserName = truncateRunes(trimmed(req.UserName), s.cfg.MaxNameChars)
	if len(req.History) > s.cfg.MaxHistoryTurns {
		req.History = req.History[len(req.History)-s.cfg.MaxHistoryTurns:]
	}

	c.JSON(http.StatusOK, s.dispatcher.HandleRequest(c.Request.Context(), req))
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":                "ok",
		"timestamp":             time.Now().UTC().Format(time.RFC3339),
		"environment":           s.env.String(),
		"mode":                  s.dispatcher.Mode().String(),
		"credential_configured": s.credentialSet,
	})
}

func (s *Server) test(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":     "BrightBridge API is running",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"environment": s.env.String(),
	})
}

// cors allows the separately hosted front end to call the API. Credentials
// are never used, so a permissive policy is fine here.
func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
