package main

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"mentorlink/internal/database"
	"mentorlink/internal/handlers"
	"mentorlink/internal/middleware"
	"mentorlink/internal/models"
	"mentorlink/pkg/auth"
)

func APIEndpoints(
	r *gin.Engine,
	db *database.Database,
	jwtMgr *auth.JWTManager,
	rdb *redis.Client,
	authH *handlers.AuthHandler,
	convH *handlers.ConversationHandler,
	mentH *handlers.MentorshipHandler,
	wsH *handlers.WebSocketHandler,
) {
	// Auth endpoints
	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/register", authH.Register)
		authGroup.POST("/login", authH.Login)
		authGroup.POST("/logout", middleware.AuthMiddleware(jwtMgr, rdb), authH.Logout)
	}

	// Mentorship endpoints
	api := r.Group("/api/mentorship", middleware.AuthMiddleware(jwtMgr, rdb))
	{
		api.GET("/messages/:roomId", convH.GetRoomMessages)
		api.POST("/messages", convH.SendMessage)
		api.PUT("/messages/read", convH.MarkRead)

		api.GET("/mentors",
			middleware.RequireRole(db, models.RoleAdmin),
			mentH.GetMentors)
		api.GET("/students",
			middleware.RequireRole(db, models.RoleAdmin, models.RoleMentor),
			mentH.GetStudents)
		api.GET("/mentor/:id/students",
			middleware.RequireRole(db, models.RoleAdmin, models.RoleMentor),
			mentH.GetMentorStudents)
		api.GET("/student/:id/mentor",
			middleware.RequireRole(db, models.RoleAdmin, models.RoleMentor, models.RoleStudent),
			mentH.GetStudentMentor)
		api.POST("/assign",
			middleware.RequireRole(db, models.RoleAdmin),
			mentH.AssignMentor)
		api.DELETE("/unassign",
			middleware.RequireRole(db, models.RoleAdmin),
			mentH.UnassignMentor)
	}

	// Realtime gateway
	r.GET("/ws", middleware.WSAuthMiddleware(jwtMgr, rdb), wsH.HandleWebSocket)
}
