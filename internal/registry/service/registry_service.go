package service

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mattewlondono22/smartagents-desktop/internal/registry/database"
	"github.com/mattewlondono22/smartagents-desktop/internal/registry/logging"
	"github.com/mattewlondono22/smartagents-desktop/pkg/models"
)

// registryServiceImpl implements the RegistryService interface using our Database
type registryServiceImpl struct {
	db         database.Database
	onboarding []models.OnboardingStep
}

// NewRegistryService creates a new registry service backed by db
func NewRegistryService(db database.Database) (RegistryService, error) {
	steps, err := LoadOnboardingSteps()
	if err != nil {
		return nil, err
	}
	return &registryServiceImpl{
		db:         db,
		onboarding: steps,
	}, nil
}

func (s *registryServiceImpl) ListAgents(ctx context.Context) ([]*models.Agent, error) {
	return s.db.ListAgents(ctx)
}

func (s *registryServiceImpl) GetAgent(ctx context.Context, id string) (*models.Agent, error) {
	return s.db.GetAgent(ctx, id)
}

func (s *registryServiceImpl) CreateAgent(ctx context.Context, agent *models.Agent) (*models.Agent, error) {
	if agent == nil {
		return nil, fmt.Errorf("agent is required")
	}

	created := agent.Normalized()
	if created.ID == "" {
		created.ID = uuid.NewString()
	}

	if err := s.db.CreateAgent(ctx, &created); err != nil {
		return nil, err
	}
	logging.Log(ctx, logging.ServiceLog, zapcore.InfoLevel, "Agent created", zap.String("agent_id", created.ID))
	return &created, nil
}

func (s *registryServiceImpl) DeleteAgent(ctx context.Context, id string) error {
	if err := s.db.DeleteAgent(ctx, id); err != nil {
		return err
	}
	logging.Log(ctx, logging.ServiceLog, zapcore.InfoLevel, "Agent deleted", zap.String("agent_id", id))
	return nil
}

func (s *registryServiceImpl) ListTools(ctx context.Context) ([]*models.Tool, error) {
	return s.db.ListTools(ctx)
}

func (s *registryServiceImpl) RegisterTool(ctx context.Context, tool *models.Tool) (*models.Tool, error) {
	if tool == nil {
		return nil, fmt.Errorf("tool is required")
	}
	registered := *tool
	if err := s.db.CreateTool(ctx, &registered); err != nil {
		return nil, err
	}
	logging.Log(ctx, logging.ServiceLog, zapcore.InfoLevel, "Tool registered", zap.String("tool_id", registered.ID))
	return &registered, nil
}

// EmbedFile checks the file before the agent; nothing is read or embedded.
func (s *registryServiceImpl) EmbedFile(ctx context.Context, filePath, agentID string) (*models.FileEmbedResponse, error) {
	if _, err := os.Stat(filePath); err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, ErrFileNotFound)
	}
	if _, err := s.db.GetAgent(ctx, agentID); err != nil {
		return nil, err
	}
	return &models.FileEmbedResponse{
		FilePath:      filePath,
		AgentID:       agentID,
		Status:        StatusFileQueued,
		EmbeddingSize: 0,
	}, nil
}

func (s *registryServiceImpl) OnboardingSteps(ctx context.Context) ([]models.OnboardingStep, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	steps := make([]models.OnboardingStep, len(s.onboarding))
	copy(steps, s.onboarding)
	return steps, nil
}
