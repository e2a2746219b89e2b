package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/JWDT/bug-tracker/response"
	"github.com/JWDT/bug-tracker/services"
	"github.com/gin-gonic/gin"
)

type AuditHandler struct {
	service *services.AuditService
}

func NewAuditHandler(service *services.AuditService) *AuditHandler {
	return &AuditHandler{service: service}
}

func (h *AuditHandler) GetAuditLogs(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	logs, err := h.service.ListAuditLogs(limit)
	if err != nil {
		log.Printf("getAuditLogs: %v", err)
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "internal error"})
		return
	}

	c.JSON(http.StatusOK, logs)
}
