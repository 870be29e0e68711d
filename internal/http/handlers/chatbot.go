package handlers

import (
	"net/http"

	"voxia/internal/services"

	"github.com/gin-gonic/gin"
)

// ChatbotHandler manages chatbot configuration documents.
type ChatbotHandler struct {
	Bots services.ChatbotService
}

func NewChatbotHandler(store services.ChatbotStore) ChatbotHandler {
	return ChatbotHandler{Bots: services.ChatbotService{Bots: store}}
}

// POST /api/chatbot/chatbots
func (h ChatbotHandler) Create(c *gin.Context) {
	var in services.ChatbotInput
	if !BindJSONOrError(c, &in) {
		return
	}

	cb, err := h.Bots.Create(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondSuccess(c, http.StatusCreated, "Chatbot created successfully", gin.H{"chatbot": cb})
}

// GET /api/chatbot/chatbots
func (h ChatbotHandler) List(c *gin.Context) {
	bots, err := h.Bots.List(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, "Chatbots retrieved successfully", gin.H{"chatbots": bots})
}

// GET /api/chatbot/chatbots/:id
func (h ChatbotHandler) Get(c *gin.Context) {
	cb, err := h.Bots.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, "Chatbot retrieved successfully", gin.H{"chatbot": cb})
}

// PUT /api/chatbot/chatbots/:id
func (h ChatbotHandler) Update(c *gin.Context) {
	var in services.ChatbotInput
	if !BindJSONOrError(c, &in) {
		return
	}

	cb, err := h.Bots.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, "Chatbot updated successfully", gin.H{"chatbot": cb})
}

// DELETE /api/chatbot/chatbots/:id
func (h ChatbotHandler) Delete(c *gin.Context) {
	if err := h.Bots.Delete(c.Request.Context(), c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, "Chatbot deleted successfully", nil)
}
