package httpserver

import (
	"github.com/gin-gonic/gin"

	"todo-chat/pkg/response"
)

const (
	HealthVersion = "1.0.0"
	ServiceName   = "todo-chat"
)

type healthResp struct {
	Status      string         `json:"status"`
	Service     string         `json:"service"`
	Version     string         `json:"version"`
	Environment string         `json:"environment,omitempty"`
	Components  componentsResp `json:"components"`
}

// componentsResp says which optional parts of the chat service are wired.
type componentsResp struct {
	// DefaultCredential is false when every request must bring its own
	// access token.
	DefaultCredential bool `json:"default_credential"`
	Telegram          bool `json:"telegram"`
	RateLimitPerMin   int  `json:"rate_limit_per_min"`
}

func (srv HTTPServer) newHealthResp(status string) healthResp {
	return healthResp{
		Status:      status,
		Service:     ServiceName,
		Version:     HealthVersion,
		Environment: srv.environment,
		Components: componentsResp{
			DefaultCredential: srv.hasDefaultCredential,
			Telegram:          srv.telegramHandler != nil,
			RateLimitPerMin:   srv.rateLimitPerMin,
		},
	}
}

// healthCheck reports the service and which chat components are configured.
// @Summary     Health Check
// @Description Service identity plus whether a default credential and the Telegram bot are configured
// @Tags        Health
// @Produce     json
// @Success     200 {object} response.Resp{data=healthResp}
// @Router      /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.newHealthResp("healthy"))
}

// readyCheck
// @Summary     Readiness Check
// @Description Ready once routes are mapped; a missing default credential is reported, not fatal
// @Tags        Health
// @Produce     json
// @Success     200 {object} response.Resp{data=healthResp}
// @Router      /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, srv.newHealthResp("ready"))
}

// liveCheck
// @Summary Liveness Check
// @Tags    Health
// @Produce json
// @Success 200 {object} response.Resp
// @Router  /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{"status": "alive", "service": ServiceName})
}
