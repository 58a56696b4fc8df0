package api

import (
	v1 "github.com/agencyhub/agencyhub/internal/api/v1"
	"github.com/agencyhub/agencyhub/internal/rest/middleware"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Health  *v1.HealthHandler
	Agency  *v1.AgencyHandler
	User    *v1.UserHandler
	Client  *v1.ClientHandler
	Lead    *v1.LeadHandler
	Product *v1.ProductHandler
	Quote   *v1.QuoteHandler
	Project *v1.ProjectHandler
	Task    *v1.TaskHandler
	Asset   *v1.AssetHandler
	Chat    *v1.ChatHandler
	Webhook *v1.WebhookHandler
}

func NewRouter(handlers Handlers) *gin.Engine {
	router := gin.New()

	router.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware,
		middleware.CORSMiddleware,
		middleware.ErrorHandler(),
	)

	router.GET("/health", handlers.Health.Health)

	// Webhook deliveries resolve their tenant from the URL path because
	// external form platforms cannot send custom headers.
	webhooks := router.Group("/webhooks", middleware.WebhookTenantMiddleware)
	{
		webhooks.POST("/:agency_id/leads/:platform", handlers.Webhook.IngestLead)
	}

	// Agency signup happens before a tenant exists, so it skips the
	// tenant middleware.
	router.POST("/v1/agencies", handlers.Agency.CreateAgency)

	// v1 routes
	v1Group := router.Group("/v1", middleware.TenantMiddleware)
	registerV1Routes(v1Group, handlers)

	return router
}

func registerV1Routes(router *gin.RouterGroup, handlers Handlers) {
	// Agency routes
	agencies := router.Group("/agencies")
	{
		agencies.GET("/me", handlers.Agency.GetCurrentAgency)
		agencies.GET("/:id", handlers.Agency.GetAgency)
		agencies.PUT("/:id", handlers.Agency.UpdateAgency)
	}

	// User routes
	users := router.Group("/users")
	{
		users.POST("", handlers.User.CreateUser)
		users.GET("", handlers.User.GetUsers)
		users.GET("/:id", handlers.User.GetUser)
		users.PUT("/:id", handlers.User.UpdateUser)
		users.DELETE("/:id", handlers.User.DeleteUser)
	}

	// Client routes
	clients := router.Group("/clients")
	{
		clients.POST("", handlers.Client.CreateClient)
		clients.GET("", handlers.Client.GetClients)
		clients.GET("/:id", handlers.Client.GetClient)
		clients.PUT("/:id", handlers.Client.UpdateClient)
		clients.DELETE("/:id", handlers.Client.DeleteClient)
	}

	// Lead routes
	leads := router.Group("/leads")
	{
		leads.POST("", handlers.Lead.CreateLead)
		leads.GET("", handlers.Lead.GetLeads)
		leads.GET("/stats", handlers.Lead.GetLeadStats)
		leads.GET("/:id", handlers.Lead.GetLead)
		leads.PUT("/:id", handlers.Lead.UpdateLead)
		leads.DELETE("/:id", handlers.Lead.DeleteLead)
		leads.POST("/:id/convert", handlers.Lead.ConvertLead)
	}

	// Product routes
	products := router.Group("/products")
	{
		products.POST("", handlers.Product.CreateProduct)
		products.GET("", handlers.Product.GetProducts)
		products.GET("/:id", handlers.Product.GetProduct)
		products.PUT("/:id", handlers.Product.UpdateProduct)
		products.DELETE("/:id", handlers.Product.DeleteProduct)
	}

	// Quote routes
	quotes := router.Group("/quotes")
	{
		quotes.POST("", handlers.Quote.CreateQuote)
		quotes.GET("", handlers.Quote.GetQuotes)
		quotes.GET("/:id", handlers.Quote.GetQuote)
		quotes.PUT("/:id", handlers.Quote.UpdateQuote)
		quotes.DELETE("/:id", handlers.Quote.DeleteQuote)
		quotes.POST("/:id/send", handlers.Quote.SendQuote)
		quotes.POST("/:id/view", handlers.Quote.MarkQuoteViewed)
		quotes.POST("/:id/approve", handlers.Quote.ApproveQuote)
		quotes.POST("/:id/reject", handlers.Quote.RejectQuote)
		quotes.GET("/:id/pdf", handlers.Quote.GetQuotePDF)
	}

	// Project routes
	projects := router.Group("/projects")
	{
		projects.POST("", handlers.Project.CreateProject)
		projects.GET("", handlers.Project.GetProjects)
		projects.GET("/:id", handlers.Project.GetProject)
		projects.PUT("/:id", handlers.Project.UpdateProject)
		projects.DELETE("/:id", handlers.Project.DeleteProject)
	}

	// Task routes
	tasks := router.Group("/tasks")
	{
		tasks.POST("", handlers.Task.CreateTask)
		tasks.GET("", handlers.Task.GetTasks)
		tasks.GET("/:id", handlers.Task.GetTask)
		tasks.PUT("/:id", handlers.Task.UpdateTask)
		tasks.PUT("/:id/status", handlers.Task.UpdateTaskStatus)
		tasks.DELETE("/:id", handlers.Task.DeleteTask)
	}

	// Asset routes
	assets := router.Group("/assets")
	{
		assets.POST("", handlers.Asset.CreateAsset)
		assets.GET("", handlers.Asset.GetAssets)
		assets.GET("/:id", handlers.Asset.GetAsset)
		assets.PUT("/:id", handlers.Asset.UpdateAsset)
		assets.DELETE("/:id", handlers.Asset.DeleteAsset)
	}

	// Chat routes
	conversations := router.Group("/conversations")
	{
		conversations.POST("", handlers.Chat.CreateConversation)
		conversations.GET("", handlers.Chat.GetConversations)
		conversations.GET("/:id", handlers.Chat.GetConversation)
		conversations.PUT("/:id", handlers.Chat.UpdateConversation)
		conversations.DELETE("/:id", handlers.Chat.DeleteConversation)
		conversations.POST("/:id/messages", handlers.Chat.SendMessage)
		conversations.GET("/:id/messages", handlers.Chat.GetMessages)
	}
}
