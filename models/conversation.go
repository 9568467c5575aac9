package models

import "time"

// ConversationHistory represents a stored conversation message
type ConversationHistory struct {
	ID        int       `json:"id"`
	SessionID string    `json:"session_id"`
	Role      string    `json:"role"` // user, assistant, system
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatRequest represents an incoming chat message
type ChatRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	Message   string `json:"message" binding:"required"`
}

// ChatResponse represents an AI chat response
type ChatResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
