package v1

import (
	"net/http"

	"github.com/agencyhub/agencyhub/internal/api/dto"
	ierr "github.com/agencyhub/agencyhub/internal/errors"
	"github.com/agencyhub/agencyhub/internal/logger"
	"github.com/agencyhub/agencyhub/internal/service"
	"github.com/agencyhub/agencyhub/internal/types"
	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	service service.ChatService
	log     *logger.Logger
}

func NewChatHandler(service service.ChatService, log *logger.Logger) *ChatHandler {
	return &ChatHandler{
		service: service,
		log:     log,
	}
}

// @Summary Create a conversation
// @Description Create a conversation between agency users
// @Tags Chat
// @Accept json
// @Produce json
// @Param conversation body dto.CreateConversationRequest true "Conversation"
// @Success 201 {object} dto.ConversationResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /conversations [post]
func (h *ChatHandler) CreateConversation(c *gin.Context) {
	var req dto.CreateConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateConversation(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Get a conversation
// @Description Get a conversation
// @Tags Chat
// @Accept json
// @Produce json
// @Param id path string true "Conversation ID"
// @Success 200 {object} dto.ConversationResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /conversations/{id} [get]
func (h *ChatHandler) GetConversation(c *gin.Context) {
	id := c.Param("id")

	resp, err := h.service.GetConversation(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Get conversations
// @Description Get conversations
// @Tags Chat
// @Accept json
// @Produce json
// @Param filter query types.ConversationFilter false "Filter"
// @Success 200 {object} dto.ListConversationsResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /conversations [get]
func (h *ChatHandler) GetConversations(c *gin.Context) {
	var filter types.ConversationFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	if filter.QueryFilter == nil {
		filter.QueryFilter = types.NewDefaultQueryFilter()
	}

	resp, err := h.service.ListConversations(c.Request.Context(), &filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Update a conversation
// @Description Update a conversation title or participants
// @Tags Chat
// @Accept json
// @Produce json
// @Param id path string true "Conversation ID"
// @Param conversation body dto.UpdateConversationRequest true "Conversation"
// @Success 200 {object} dto.ConversationResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /conversations/{id} [put]
func (h *ChatHandler) UpdateConversation(c *gin.Context) {
	id := c.Param("id")

	var req dto.UpdateConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateConversation(c.Request.Context(), id, req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Delete a conversation
// @Description Delete a conversation
// @Tags Chat
// @Accept json
// @Produce json
// @Param id path string true "Conversation ID"
// @Success 204
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /conversations/{id} [delete]
func (h *ChatHandler) DeleteConversation(c *gin.Context) {
	id := c.Param("id")

	err := h.service.DeleteConversation(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Send a message
// @Description Post a message to a conversation the caller participates in
// @Tags Chat
// @Accept json
// @Produce json
// @Param id path string true "Conversation ID"
// @Param message body dto.CreateMessageRequest true "Message"
// @Success 201 {object} dto.MessageResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 403 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /conversations/{id}/messages [post]
func (h *ChatHandler) SendMessage(c *gin.Context) {
	id := c.Param("id")

	var req dto.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.SendMessage(c.Request.Context(), id, req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Get messages
// @Description Get the messages of a conversation in chronological order
// @Tags Chat
// @Accept json
// @Produce json
// @Param id path string true "Conversation ID"
// @Param filter query types.MessageFilter false "Filter"
// @Success 200 {object} dto.ListMessagesResponse
// @Failure 403 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /conversations/{id}/messages [get]
func (h *ChatHandler) GetMessages(c *gin.Context) {
	id := c.Param("id")

	var filter types.MessageFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	if filter.QueryFilter == nil {
		filter.QueryFilter = types.NewDefaultQueryFilter()
	}

	resp, err := h.service.ListMessages(c.Request.Context(), id, &filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
