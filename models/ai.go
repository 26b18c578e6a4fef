// File: models/ai.go
package models

import "time"

// ChatMessage is a single turn in an assistant conversation.
type ChatMessage struct {
	Sender    string    `json:"sender"` // "user" or "ai"
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatContext is the rolling conversation history kept per doctor.
type ChatContext struct {
	Messages []ChatMessage `json:"messages"`
}
