package repository

import (
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
	postgresRepo "github.com/agencyhub/agencyhub/internal/repository/postgres"
)

func NewAgencyRepository(db *postgres.Client, logger *logger.Logger) agency.Repository {
	return postgresRepo.NewAgencyRepository(db, logger)
}

func NewUserRepository(db *postgres.Client, logger *logger.Logger) user.Repository {
	return postgresRepo.NewUserRepository(db, logger)
}

func NewClientRepository(db *postgres.Client, logger *logger.Logger) client.Repository {
	return postgresRepo.NewClientRepository(db, logger)
}

func NewLeadRepository(db *postgres.Client, logger *logger.Logger) lead.Repository {
	return postgresRepo.NewLeadRepository(db, logger)
}

func NewProductRepository(db *postgres.Client, logger *logger.Logger) product.Repository {
	return postgresRepo.NewProductRepository(db, logger)
}

func NewQuoteRepository(db *postgres.Client, logger *logger.Logger) quote.Repository {
	return postgresRepo.NewQuoteRepository(db, logger)
}

func NewProjectRepository(db *postgres.Client, logger *logger.Logger) project.Repository {
	return postgresRepo.NewProjectRepository(db, logger)
}

func NewTaskRepository(db *postgres.Client, logger *logger.Logger) task.Repository {
	return postgresRepo.NewTaskRepository(db, logger)
}

func NewAssetRepository(db *postgres.Client, logger *logger.Logger) asset.Repository {
	return postgresRepo.NewAssetRepository(db, logger)
}

func NewConversationRepository(db *postgres.Client, logger *logger.Logger) chat.Repository {
	return postgresRepo.NewConversationRepository(db, logger)
}

func NewMessageRepository(db *postgres.Client, logger *logger.Logger) chat.MessageRepository {
	return postgresRepo.NewMessageRepository(db, logger)
}
