// File: services/intelligence/interface.go
package ai

import (
	"context"

	"clinicore/models"
)

// AssistantService powers the in-app medical assistant. Conversations
// are kept per doctor in a short-lived context store so follow-up
// questions stay coherent without persisting chat history.
type AssistantService interface {
	// Chat appends the doctor's message to the conversation, generates
	// a reply and returns it.
	Chat(ctx context.Context, doctorID, text string) (*models.ChatMessage, error)
	// Greeting seeds a fresh conversation with the assistant's opening
	// message and returns it.
	Greeting(ctx context.Context, doctorID, doctorName string) (*models.ChatMessage, error)
	// Reset discards the doctor's conversation context.
	Reset(ctx context.Context, doctorID string) error
}

// DefaultAssistantService is the production implementation backed by
// Gemini and a Redis context store.
type DefaultAssistantService struct {
	ctxStore *RedisContextStore
	gemini   *GeminiClient
}

// NewDefaultAssistantService constructs a new DefaultAssistantService.
func NewDefaultAssistantService(apiKey string, ctxStore *RedisContextStore) *DefaultAssistantService {
	return &DefaultAssistantService{
		ctxStore: ctxStore,
		gemini:   NewGeminiClient(apiKey),
	}
}
