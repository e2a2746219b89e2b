package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/JWDT/bug-tracker/response"
	"github.com/JWDT/bug-tracker/services"
	"github.com/JWDT/bug-tracker/storage"
	"github.com/gin-gonic/gin"
)

const attachmentURLExpiry = 15 * time.Minute

type AttachmentHandler struct {
	tickets *services.TicketService
}

func NewAttachmentHandler(tickets *services.TicketService) *AttachmentHandler {
	return &AttachmentHandler{tickets: tickets}
}

// UploadAttachment stores a multipart file against an existing ticket.
func (h *AttachmentHandler) UploadAttachment(c *gin.Context) {
	ticketID, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	if _, err := h.tickets.FindTicket(ticketID); err != nil {
		if errors.Is(err, services.ErrTicketNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "ticket not found"})
			return
		}
		log.Printf("uploadAttachment: %v", err)
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "internal error"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "missing file"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "unreadable file"})
		return
	}
	defer file.Close()

	objectKey, err := storage.UploadTicketAttachment(
		c.Request.Context(),
		ticketID,
		fileHeader.Filename,
		file,
		fileHeader.Size,
		fileHeader.Header.Get("Content-Type"),
	)
	if err != nil {
		log.Printf("uploadAttachment: %v", err)
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "internal error"})
		return
	}

	c.JSON(http.StatusCreated, response.AttachmentResponse{ObjectKey: objectKey})
}

// GetAttachmentURL returns a presigned download link for an object key.
func (h *AttachmentHandler) GetAttachmentURL(c *gin.Context) {
	objectKey := c.Query("key")
	if objectKey == "" {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "missing key"})
		return
	}

	url, err := storage.PresignedAttachmentURL(c.Request.Context(), objectKey, attachmentURLExpiry)
	if err != nil {
		log.Printf("getAttachmentURL: %v", err)
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "internal error"})
		return
	}

	c.JSON(http.StatusOK, response.AttachmentResponse{ObjectKey: objectKey, URL: url})
}
