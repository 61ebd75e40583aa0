package routes

import (
	"net/http"

	"teamboard/config"
	"teamboard/constants"
	"teamboard/controllers"
	"teamboard/middleware"
	"teamboard/realtime"
	"teamboard/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB, events realtime.Broadcaster, files storage.Storage, cfg config.Config) *gin.Engine {
	r := gin.Default()

	corsCfg := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))

	authController := controllers.AuthController{DB: db}
	userController := controllers.UserController{DB: db, Events: events}
	projectController := controllers.ProjectController{DB: db, Events: events}
	taskController := controllers.TaskController{DB: db, Events: events, Storage: files}
	columnController := controllers.ColumnController{DB: db, Events: events}
	notificationController := controllers.NotificationController{DB: db, Events: events}
	assetController := controllers.AssetController{DB: db, Events: events, Storage: files}
	demandController := controllers.DemandController{DB: db, Events: events}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/register", authController.Register)
	r.POST("/login", authController.Login)

	auth := r.Group("/", middleware.AuthMiddleware())

	// The realtime channel authenticates with the same bearer token,
	// passed as a query parameter by browser clients.
	if hub, ok := events.(*realtime.Hub); ok {
		auth.GET("/ws", hub.Handler())
	}

	auth.GET("/tasks", taskController.GetTasks)
	auth.POST("/tasks", taskController.CreateTask)
	auth.GET("/tasks/:id", taskController.GetTask)
	auth.PUT("/tasks/:id", taskController.UpdateTask)
	auth.DELETE("/tasks/:id", taskController.DeleteTask)
	auth.POST("/tasks/:id/attachments", taskController.AddAttachment)
	auth.DELETE("/tasks/:id/attachments/:attID", taskController.DeleteAttachment)

	elevated := middleware.RoleMiddleware(constants.RoleAdmin, constants.RoleManager)
	adminOnly := middleware.RoleMiddleware(constants.RoleAdmin)

	auth.GET("/projects", projectController.GetProjects)
	auth.POST("/projects", elevated, projectController.CreateProject)
	auth.PUT("/projects/:id", elevated, projectController.UpdateProject)
	auth.DELETE("/projects/:id", elevated, projectController.DeleteProject)

	auth.GET("/users", adminOnly, userController.GetUsers)
	auth.POST("/users", adminOnly, userController.CreateUser)
	auth.PUT("/users/:id", userController.UpdateUser)
	auth.DELETE("/users/:id", adminOnly, userController.DeleteUser)

	auth.GET("/board-columns", columnController.GetColumns)
	auth.POST("/board-columns", elevated, columnController.CreateColumn)
	auth.PUT("/board-columns/:id", elevated, columnController.UpdateColumn)
	auth.DELETE("/board-columns/:id", elevated, columnController.DeleteColumn)

	auth.GET("/notifications", notificationController.GetNotifications)
	auth.POST("/notifications", notificationController.CreateNotification)
	auth.PUT("/notifications/:id/read", notificationController.MarkRead)
	auth.PUT("/notifications/read-all", notificationController.MarkAllRead)

	auth.GET("/assets", assetController.GetAssets)
	auth.POST("/assets", assetController.UploadAsset)
	auth.DELETE("/assets/:id", assetController.DeleteAsset)

	auth.GET("/it-demands", demandController.GetDemands)
	auth.POST("/it-demands", demandController.CreateDemand)
	auth.PUT("/it-demands/:id", demandController.UpdateDemand)
	auth.DELETE("/it-demands/:id", elevated, demandController.DeleteDemand)

	return r
}
