package services

import (
	"context"
	"fmt"
	"log"
	"sync"

	"healthcare-appointment-ai/agent"
	"healthcare-appointment-ai/config"
	"healthcare-appointment-ai/database"
	"healthcare-appointment-ai/models"
	"healthcare-appointment-ai/provider"
	"healthcare-appointment-ai/tools"
)

const systemPrompt = `You are a healthcare appointment assistant. Follow these strict rules:
- Verify patient name contains only letters/spaces.
- Validate phone number format: +91 followed by 10 digits.
- Reference IDs should match APT-XXXX format.
- Don't assume appointment details, always confirm first.
- Use only the provided tools: book_appointment and check_appointment.
- When a tool reports an error, tell the user what went wrong instead of guessing.`

var (
	orchestrator *agent.Orchestrator

	// Conversations live in memory only; history rows in Postgres are an
	// audit log, not a source of truth across restarts. Each session owns
	// its own Conversation with at most one in-flight turn.
	sessionsMu sync.Mutex
	sessions   = map[string]*agent.Conversation{}
)

// InitAIService wires the model provider and the tool adapters
func InitAIService(c *config.Config) error {
	Init(c)

	mdl, err := provider.New(c)
	if err != nil {
		return fmt.Errorf("failed to create model provider: %w", err)
	}

	client := tools.NewClient(c.AppointmentAPIURL)
	registry := agent.NewRegistry(
		tools.NewBookAppointment(client),
		tools.NewCheckAppointment(client),
	)

	orchestrator = agent.NewOrchestrator(mdl, registry)
	return nil
}

// ProcessMessage runs one user turn through the orchestration loop
func ProcessMessage(ctx context.Context, sessionID, message string) (*models.ChatResponse, error) {
	if orchestrator == nil {
		return nil, fmt.Errorf("AI service not initialized")
	}

	conv := conversationFor(sessionID)

	saveHistory(sessionID, "user", message)

	answer, err := orchestrator.HandleTurn(ctx, conv, message)
	if err != nil {
		return nil, fmt.Errorf("AI provider error: %w", err)
	}

	saveHistory(sessionID, "assistant", answer)

	return &models.ChatResponse{Success: true, Message: answer}, nil
}

func conversationFor(sessionID string) *agent.Conversation {
	sessionsMu.Lock()
	defer sessionsMu.Unlock()

	conv, ok := sessions[sessionID]
	if !ok {
		conv = agent.NewConversation(systemPrompt)
		sessions[sessionID] = conv
	}
	return conv
}

func saveHistory(sessionID, role, message string) {
	db := database.GetDB()
	if db == nil {
		return
	}
	_, err := db.Exec(`
		INSERT INTO conversation_history (session_id, role, message)
		VALUES ($1, $2, $3)
	`, sessionID, role, message)
	if err != nil {
		log.Printf("Failed to save %s message: %v", role, err)
	}
}
