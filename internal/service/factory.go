package service

import (
	"github.com/agencyhub/agencyhub/internal/cache"
	"github.com/agencyhub/agencyhub/internal/config"
	"github.com/agencyhub/agencyhub/internal/domain/agency"
	"github.com/agencyhub/agencyhub/internal/domain/asset"
	"github.com/agencyhub/agencyhub/internal/domain/chat"
	"github.com/agencyhub/agencyhub/internal/domain/client"
	"github.com/agencyhub/agencyhub/internal/domain/lead"
	"github.com/agencyhub/agencyhub/internal/domain/product"
	"github.com/agencyhub/agencyhub/internal/domain/project"
	"github.com/agencyhub/agencyhub/internal/domain/quote"
	"github.com/agencyhub/agencyhub/internal/domain/task"
	"github.com/agencyhub/agencyhub/internal/domain/user"
	"github.com/agencyhub/agencyhub/internal/email"
	"github.com/agencyhub/agencyhub/internal/logger"
	"github.com/agencyhub/agencyhub/internal/pdf"
	"github.com/agencyhub/agencyhub/internal/postgres"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger       *logger.Logger
	Config       *config.Configuration
	DB           postgres.IClient
	PDFGenerator pdf.Generator
	Email        email.Sender
	Cache        cache.Cache

	// Repositories
	AgencyRepo       agency.Repository
	UserRepo         user.Repository
	ClientRepo       client.Repository
	LeadRepo         lead.Repository
	ProductRepo      product.Repository
	QuoteRepo        quote.Repository
	ProjectRepo      project.Repository
	TaskRepo         task.Repository
	AssetRepo        asset.Repository
	ConversationRepo chat.Repository
	MessageRepo      chat.MessageRepository
}

// NewServiceParams assembles the common service dependencies for fx
func NewServiceParams(
	logger *logger.Logger,
	config *config.Configuration,
	db postgres.IClient,
	pdfGenerator pdf.Generator,
	emailSender email.Sender,
	cache cache.Cache,
	agencyRepo agency.Repository,
	userRepo user.Repository,
	clientRepo client.Repository,
	leadRepo lead.Repository,
	productRepo product.Repository,
	quoteRepo quote.Repository,
	projectRepo project.Repository,
	taskRepo task.Repository,
	assetRepo asset.Repository,
	conversationRepo chat.Repository,
	messageRepo chat.MessageRepository,
) ServiceParams {
	return ServiceParams{
		Logger:           logger,
		Config:           config,
		DB:               db,
		PDFGenerator:     pdfGenerator,
		Email:            emailSender,
		Cache:            cache,
		AgencyRepo:       agencyRepo,
		UserRepo:         userRepo,
		ClientRepo:       clientRepo,
		LeadRepo:         leadRepo,
		ProductRepo:      productRepo,
		QuoteRepo:        quoteRepo,
		ProjectRepo:      projectRepo,
		TaskRepo:         taskRepo,
		AssetRepo:        assetRepo,
		ConversationRepo: conversationRepo,
		MessageRepo:      messageRepo,
	}
}
