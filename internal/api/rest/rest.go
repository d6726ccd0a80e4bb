package rest

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler) {
	// Probes
	router.GET("/health", handler.HealthCheck)
	router.GET("/ready", handler.ReadinessCheck)

	// Inbound CRM webhook (no authentication)
	router.POST("/webhook/contact", handler.ContactWebhook)

	// Assignment read access
	router.GET("/assignments", handler.ListAssignments)
	router.GET("/assignments/:phone", handler.GetAssignment)
	router.GET("/assignments/:phone/changes", handler.GetAssignmentChanges)
}
