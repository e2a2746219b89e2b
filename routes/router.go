package routes

import (
	"github.com/JWDT/bug-tracker/events"
	"github.com/JWDT/bug-tracker/handlers"
	"github.com/JWDT/bug-tracker/middleware"
	"github.com/JWDT/bug-tracker/repositories"
	"github.com/JWDT/bug-tracker/services"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, gormDB *gorm.DB) *handlers.Handlers {
	repos := repositories.New(gormDB)
	svc := services.New(repos)
	hub := events.NewHub()
	h := handlers.New(svc, hub)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.POST("/register", h.Auth.Register)
	r.POST("/login", h.Auth.Login)
	r.POST("/logout", h.Auth.Logout)
	r.GET("/ws/events", h.WS.Events)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.GET("/me", h.Auth.Me)

		tickets := auth.Group("/tickets")
		{
			tickets.POST("", h.Ticket.CreateTicket)
			tickets.GET("/:id", h.Ticket.FindTicket)
			tickets.PUT("/:id/status", h.Ticket.ChangeTicketStatus)
			tickets.PUT("/:id/priority", h.Ticket.ChangeTicketPriority)
			tickets.PUT("/:id/type", h.Ticket.ChangeTicketType)
			tickets.PUT("/:id/assign", h.Ticket.AssignTicket)
			tickets.POST("/:id/comments", h.Comment.CreateComment)
			tickets.GET("/:id/comments", h.Comment.FindCommentsByTicket)
			tickets.POST("/:id/attachments", h.Attachment.UploadAttachment)
		}

		auth.GET("/assigned-tickets", h.Ticket.FindAssignedTickets)
		auth.GET("/comments/:id", h.Comment.FindComment)
		auth.GET("/attachments", h.Attachment.GetAttachmentURL)

		projects := auth.Group("/projects")
		{
			projects.GET("", h.Project.ListProjects)
			projects.GET("/:id", h.Project.GetProject)
			projects.POST("", middleware.AdminOnly(), h.Project.CreateProject)
			projects.PUT("/assign", middleware.AdminOnly(), h.Project.AssignProject)
			projects.PUT("/unassign", middleware.AdminOnly(), h.Project.UnassignProject)
		}

		admin := auth.Group("/")
		admin.Use(middleware.AdminOnly())
		{
			admin.PUT("/users/:id/role", h.User.ChangeRole)
			admin.GET("/audit/logs", h.Audit.GetAuditLogs)
		}
	}

	return h
}
