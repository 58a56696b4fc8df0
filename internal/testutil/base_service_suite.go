package testutil

import (
	"context"
	"time"

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
	"github.com/agencyhub/agencyhub/internal/logger"
	"github.com/agencyhub/agencyhub/internal/postgres"
	"github.com/agencyhub/agencyhub/internal/types"
	"github.com/stretchr/testify/suite"
)

// Stores holds all the repository interfaces for testing
type Stores struct {
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

// BaseServiceTestSuite provides common functionality for all service test suites
type BaseServiceTestSuite struct {
	suite.Suite
	ctx          context.Context
	stores       Stores
	db           postgres.IClient
	logger       *logger.Logger
	config       *config.Configuration
	now          time.Time
	pdfGenerator *MockPDFGenerator
	emailSender  *MockEmailSender
	cache        cache.Cache
}

// SetupSuite is called once before running the tests in the suite
func (s *BaseServiceTestSuite) SetupSuite() {
	cfg := &config.Configuration{
		Logging: config.LoggingConfig{
			Level: types.LogLevelInfo,
		},
		Cache: config.CacheConfig{
			Enabled: true,
		},
	}
	var err error
	s.config = cfg
	s.logger, err = logger.NewLogger(cfg)
	if err != nil {
		s.T().Fatalf("failed to create logger: %v", err)
	}
}

// SetupTest is called before each test
func (s *BaseServiceTestSuite) SetupTest() {
	s.setupContext()
	s.setupStores()
	s.now = time.Now().UTC()
}

// TearDownTest is called after each test
func (s *BaseServiceTestSuite) TearDownTest() {
	s.clearStores()
}

func (s *BaseServiceTestSuite) setupContext() {
	s.ctx = SetupContext()
}

func (s *BaseServiceTestSuite) setupStores() {
	s.stores = Stores{
		AgencyRepo:       NewInMemoryAgencyStore(),
		UserRepo:         NewInMemoryUserStore(),
		ClientRepo:       NewInMemoryClientStore(),
		LeadRepo:         NewInMemoryLeadStore(),
		ProductRepo:      NewInMemoryProductStore(),
		QuoteRepo:        NewInMemoryQuoteStore(),
		ProjectRepo:      NewInMemoryProjectStore(),
		TaskRepo:         NewInMemoryTaskStore(),
		AssetRepo:        NewInMemoryAssetStore(),
		ConversationRepo: NewInMemoryConversationStore(),
		MessageRepo:      NewInMemoryMessageStore(),
	}

	s.db = NewMockPostgresClient(s.logger)
	s.pdfGenerator = NewMockPDFGenerator()
	s.emailSender = NewMockEmailSender()
	s.cache = cache.NewInMemoryCache(s.config)
}

func (s *BaseServiceTestSuite) clearStores() {
	s.stores.AgencyRepo.(*InMemoryAgencyStore).Clear()
	s.stores.UserRepo.(*InMemoryUserStore).Clear()
	s.stores.ClientRepo.(*InMemoryClientStore).Clear()
	s.stores.LeadRepo.(*InMemoryLeadStore).Clear()
	s.stores.ProductRepo.(*InMemoryProductStore).Clear()
	s.stores.QuoteRepo.(*InMemoryQuoteStore).Clear()
	s.stores.ProjectRepo.(*InMemoryProjectStore).Clear()
	s.stores.TaskRepo.(*InMemoryTaskStore).Clear()
	s.stores.AssetRepo.(*InMemoryAssetStore).Clear()
	s.stores.ConversationRepo.(*InMemoryConversationStore).Clear()
	s.stores.MessageRepo.(*InMemoryMessageStore).Clear()
	s.cache.Flush(s.ctx)
}

// ClearStores clears all the in-memory stores mid-test
func (s *BaseServiceTestSuite) ClearStores() {
	s.clearStores()
}

// GetContext returns the test context
func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

// GetConfig returns the test configuration
func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.config
}

// GetStores returns all test repositories
func (s *BaseServiceTestSuite) GetStores() Stores {
	return s.stores
}

// GetDB returns the test database client
func (s *BaseServiceTestSuite) GetDB() postgres.IClient {
	return s.db
}

// GetLogger returns the test logger
func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

// GetNow returns the current test time in UTC
func (s *BaseServiceTestSuite) GetNow() time.Time {
	return s.now
}

// GetPDFGenerator returns the mock PDF generator
func (s *BaseServiceTestSuite) GetPDFGenerator() *MockPDFGenerator {
	return s.pdfGenerator
}

// GetEmailSender returns the mock email sender
func (s *BaseServiceTestSuite) GetEmailSender() *MockEmailSender {
	return s.emailSender
}

// GetCache returns the test cache
func (s *BaseServiceTestSuite) GetCache() cache.Cache {
	return s.cache
}
