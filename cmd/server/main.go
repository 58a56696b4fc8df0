package main

import (
	"context"
	"time"

	"github.com/agencyhub/agencyhub/internal/api"
	v1 "github.com/agencyhub/agencyhub/internal/api/v1"
	"github.com/agencyhub/agencyhub/internal/cache"
	"github.com/agencyhub/agencyhub/internal/config"
	"github.com/agencyhub/agencyhub/internal/email"
	"github.com/agencyhub/agencyhub/internal/logger"
	"github.com/agencyhub/agencyhub/internal/pdf"
	"github.com/agencyhub/agencyhub/internal/postgres"
	"github.com/agencyhub/agencyhub/internal/repository"
	"github.com/agencyhub/agencyhub/internal/service"
	"github.com/agencyhub/agencyhub/internal/typst"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

// @title AgencyHub API
// @version 1.0
// @description Agency CRM API Service
// @BasePath /v1
// @schemes http https

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	var opts []fx.Option

	// Core dependencies
	opts = append(opts,
		fx.Provide(
			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// Cache
			cache.NewInMemoryCache,

			// Postgres
			postgres.NewDB,
			postgres.NewClient,
			provideDBClient,

			// Email
			provideEmailSender,

			// PDF rendering
			typst.NewCompiler,
			pdf.NewGenerator,

			// Repositories
			repository.NewAgencyRepository,
			repository.NewUserRepository,
			repository.NewClientRepository,
			repository.NewLeadRepository,
			repository.NewProductRepository,
			repository.NewQuoteRepository,
			repository.NewProjectRepository,
			repository.NewTaskRepository,
			repository.NewAssetRepository,
			repository.NewConversationRepository,
			repository.NewMessageRepository,
		),
	)

	// Service layer
	opts = append(opts,
		fx.Provide(
			service.NewServiceParams,

			service.NewAgencyService,
			service.NewUserService,
			service.NewClientService,
			service.NewLeadService,
			service.NewProductService,
			service.NewQuoteService,
			service.NewProjectService,
			service.NewTaskService,
			service.NewAssetService,
			service.NewChatService,
		),
	)

	// API
	opts = append(opts,
		fx.Provide(
			provideHandlers,
			provideRouter,
		),
		fx.Invoke(startServer),
	)

	app := fx.New(opts...)
	app.Run()
}

func provideDBClient(client *postgres.Client) postgres.IClient {
	return client
}

func provideEmailSender(cfg *config.Configuration, log *logger.Logger) email.Sender {
	client := email.NewEmailClient(email.Config{
		Enabled:     cfg.Email.Enabled,
		APIKey:      cfg.Email.APIKey,
		FromAddress: cfg.Email.FromAddress,
		ReplyTo:     cfg.Email.ReplyTo,
	})
	return email.NewEmail(client, log.Desugar())
}

func provideHandlers(
	logger *logger.Logger,
	agencyService service.AgencyService,
	userService service.UserService,
	clientService service.ClientService,
	leadService service.LeadService,
	productService service.ProductService,
	quoteService service.QuoteService,
	projectService service.ProjectService,
	taskService service.TaskService,
	assetService service.AssetService,
	chatService service.ChatService,
) api.Handlers {
	return api.Handlers{
		Health:  v1.NewHealthHandler(logger),
		Agency:  v1.NewAgencyHandler(agencyService, logger),
		User:    v1.NewUserHandler(userService, logger),
		Client:  v1.NewClientHandler(clientService, logger),
		Lead:    v1.NewLeadHandler(leadService, logger),
		Product: v1.NewProductHandler(productService, logger),
		Quote:   v1.NewQuoteHandler(quoteService, logger),
		Project: v1.NewProjectHandler(projectService, logger),
		Task:    v1.NewTaskHandler(taskService, logger),
		Asset:   v1.NewAssetHandler(assetService, logger),
		Chat:    v1.NewChatHandler(chatService, logger),
		Webhook: v1.NewWebhookHandler(leadService, logger),
	}
}

func provideRouter(handlers api.Handlers) *gin.Engine {
	return api.NewRouter(handlers)
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	r *gin.Engine,
	log *logger.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infof("Starting API server on %s", cfg.Server.Address)
			go func() {
				if err := r.Run(cfg.Server.Address); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down server...")
			return nil
		},
	})
}
