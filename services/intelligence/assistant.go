// File: services/intelligence/assistant.go
package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"clinicore/models"
)

const (
	senderUser = "user"
	senderAI   = "ai"

	// Conversation turns kept in the rolling prompt. Older turns fall
	// off so the prompt stays bounded.
	maxHistoryTurns = 20
)

// assistantPreamble frames every prompt. The assistant supports a
// clinician, so answers are concise, clinically oriented and clearly
// formatted, and it never pretends to replace the doctor's judgment.
const assistantPreamble = `You are a medical assistant for a practicing doctor at a clinic.
Answer questions about medications, dosages, interactions, conditions and general medical reference concisely and accurately.
Format responses for quick reading: short paragraphs, bullet points for lists, bold for drug names and key figures.
If a question is outside medical scope or requires patient-specific judgment, say so plainly.
Do not include disclaimers about being an AI.`

func (s *DefaultAssistantService) Chat(ctx context.Context, doctorID, text string) (*models.ChatMessage, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("empty message")
	}

	chatCtx, err := s.ctxStore.Get(ctx, doctorID)
	if err != nil {
		return nil, fmt.Errorf("load context: %w", err)
	}

	chatCtx.Messages = append(chatCtx.Messages, models.ChatMessage{
		Sender:    senderUser,
		Text:      text,
		Timestamp: time.Now(),
	})
	if len(chatCtx.Messages) > maxHistoryTurns {
		chatCtx.Messages = chatCtx.Messages[len(chatCtx.Messages)-maxHistoryTurns:]
	}

	reply, err := s.gemini.GenerateContent(ctx, buildPrompt(chatCtx))
	if err != nil {
		return nil, err
	}

	aiMsg := models.ChatMessage{
		Sender:    senderAI,
		Text:      reply,
		Timestamp: time.Now(),
	}
	chatCtx.Messages = append(chatCtx.Messages, aiMsg)
	if err := s.ctxStore.Set(ctx, doctorID, chatCtx); err != nil {
		return nil, fmt.Errorf("save context: %w", err)
	}
	return &aiMsg, nil
}

func (s *DefaultAssistantService) Greeting(ctx context.Context, doctorID, doctorName string) (*models.ChatMessage, error) {
	greeting := "Hello! I'm your medical assistant. Ask me about medications, interactions, conditions or anything else from the medical reference."
	if doctorName != "" {
		greeting = fmt.Sprintf("Hello Dr. %s! I'm your medical assistant. Ask me about medications, interactions, conditions or anything else from the medical reference.", doctorName)
	}

	msg := models.ChatMessage{
		Sender:    senderAI,
		Text:      greeting,
		Timestamp: time.Now(),
	}
	chatCtx := &models.ChatContext{Messages: []models.ChatMessage{msg}}
	if err := s.ctxStore.Set(ctx, doctorID, chatCtx); err != nil {
		return nil, fmt.Errorf("save context: %w", err)
	}
	return &msg, nil
}

func (s *DefaultAssistantService) Reset(ctx context.Context, doctorID string) error {
	return s.ctxStore.Clear(ctx, doctorID)
}

// buildPrompt folds the preamble and conversation history into a single
// prompt, latest message last.
func buildPrompt(chatCtx *models.ChatContext) string {
	var sb strings.Builder
	sb.WriteString(assistantPreamble)
	sb.WriteString("\n\nConversation so far:\n")
	for _, m := range chatCtx.Messages {
		role := "Doctor"
		if m.Sender == senderAI {
			role = "Assistant"
		}
		sb.WriteString(role)
		sb.WriteString(": ")
		sb.WriteString(m.Text)
		sb.WriteString("\n")
	}
	sb.WriteString("Assistant:")
	return sb.String()
}
