package api

import (
	stdhttp "net/http"

	intconfig "voxia/internal/config"
	h "voxia/internal/http/handlers"
	"voxia/internal/http/middleware"
	"voxia/internal/services"
	"voxia/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Deps carries the wired resources the routes need. Everything is built once
// in main and injected here; handlers never reach for globals.
type Deps struct {
	Env       intconfig.Env
	System    h.SystemHandler
	Dashboard h.DashboardHandler
	Pdf       h.PdfHandler
	Email     h.EmailHandler
	Auth      h.AuthHandler
	Chatbot   h.ChatbotHandler
}

// NewDeps wires handlers from the store implementations.
func NewDeps(
	env intconfig.Env,
	store *intconfig.Store,
	requests services.TravelRequestStore,
	users services.UserStore,
	employees services.EmployeeStore,
	blobs services.BlobStore,
	meta services.PdfMetadataStore,
	bots services.ChatbotStore,
	sender services.MailSender,
) Deps {
	emailSvc := services.EmailService{Blobs: blobs, Sender: sender, From: env.FromEmail}
	return Deps{
		Env:       env,
		System:    h.SystemHandler{Store: store},
		Dashboard: h.NewDashboardHandler(requests, employees),
		Pdf:       h.NewPdfHandler(blobs, meta, ""),
		Email:     h.NewEmailHandler(blobs, sender, env.FromEmail),
		Auth:      h.NewAuthHandler(users, emailSvc, []byte(env.JWTSecret), env.TokenTTL, env.ResetBase),
		Chatbot:   h.NewChatbotHandler(bots),
	}
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(d.Env.CORSOrigin))

	if err := r.SetTrustedProxies(nil); err != nil {
		utils.Logger().Warn("failed to set trusted proxies", zap.Error(err))
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"success": false,
			"message": "route not found",
			"path":    c.Request.URL.Path,
			"method":  c.Request.Method,
		})
	})

	requireAuth := middleware.RequireAuth([]byte(d.Env.JWTSecret))

	api := r.Group("/api")
	{
		api.GET("/health", d.System.Health)
		api.GET("/db-check", d.System.DBCheck)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/register", d.Auth.Register)
		auth.POST("/login", d.Auth.Login)
		auth.POST("/fetch-token", d.Auth.FetchToken)
		auth.POST("/forgot-password", d.Auth.ForgotPassword)
		auth.POST("/reset-password", d.Auth.ResetPassword)
		auth.GET("/profile", requireAuth, d.Auth.Profile)
		auth.PUT("/profile", requireAuth, d.Auth.UpdateProfile)

		// Admin dashboard. The :id segment doubles as an owner email on the
		// per-user routes.
		dashboard := api.Group("/dashboard")
		dashboard.GET("/employee-count", d.Dashboard.EmployeeCount)
		dashboard.GET("/employees", d.Dashboard.Employees)
		dashboard.GET("/travel-request-count", d.Dashboard.TravelRequestCount)
		dashboard.GET("/travel-request-count/:id", d.Dashboard.TravelRequestCountForUser)
		dashboard.GET("/pending-travel-request-count", d.Dashboard.PendingTravelRequestCount)
		dashboard.GET("/accepted-travel-request-count/:id", d.Dashboard.AcceptedTravelRequestCountForUser)
		dashboard.GET("/travel-requests", d.Dashboard.AllTravelRequests)
		dashboard.GET("/accepted-travel-requests", d.Dashboard.AcceptedTravelRequests)
		dashboard.GET("/travel-requests/:id", d.Dashboard.TravelRequestsForUser)
		dashboard.GET("/travel-requests/:id/latest-status", d.Dashboard.LatestStatusForUser)
		dashboard.PUT("/travel-requests/:id/status", d.Dashboard.UpdateTravelRequestStatus)

		// Chatbot configs + request-form PDFs
		chatbot := api.Group("/chatbot")
		chatbot.POST("/chatbots", requireAuth, d.Chatbot.Create)
		chatbot.GET("/chatbots", d.Chatbot.List)
		chatbot.GET("/chatbots/:id", d.Chatbot.Get)
		chatbot.PUT("/chatbots/:id", d.Chatbot.Update)
		chatbot.DELETE("/chatbots/:id", d.Chatbot.Delete)
		chatbot.POST("/chatbots/generate-pdf", requireAuth, d.Pdf.Generate)
		chatbot.POST("/chatbots/generate-custom", requireAuth, d.Pdf.GenerateCustom)
		chatbot.GET("/chatbots/generate-pdf/download/:fileId", d.Pdf.Download)
		chatbot.DELETE("/chatbots/generate-pdf/:fileId", d.Pdf.Delete)

		// Email
		email := api.Group("/email")
		email.POST("/sendEmailWithPdf", d.Email.SendWithPdf)
	}

	return r
}
