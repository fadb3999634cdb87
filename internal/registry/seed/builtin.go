// Package seed loads agent definitions from JSON seed files into the registry.
package seed

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mattewlondono22/smartagents-desktop/internal/registry/database"
	"github.com/mattewlondono22/smartagents-desktop/internal/registry/logging"
	"github.com/mattewlondono22/smartagents-desktop/internal/registry/service"
	"github.com/mattewlondono22/smartagents-desktop/pkg/models"
)

//go:embed seed.json
var builtinSeedData []byte

// ImportResult counts the outcome of an import.
type ImportResult struct {
	Imported int
	Skipped  int
	Failed   int
}

// ImportBuiltinSeedData registers the builtin agents. Agents that already exist are skipped.
func ImportBuiltinSeedData(ctx context.Context, registry service.RegistryService) (*ImportResult, error) {
	agents, err := LoadAgents(builtinSeedData)
	if err != nil {
		return nil, err
	}
	return ImportAgents(ctx, registry, agents), nil
}

// LoadAgents parses a seed file: a JSON array of agents.
func LoadAgents(data []byte) ([]*models.Agent, error) {
	var agents []*models.Agent
	if err := json.Unmarshal(data, &agents); err != nil {
		return nil, fmt.Errorf("failed to parse seed data: %w", err)
	}
	for i, agent := range agents {
		if agent == nil {
			return nil, fmt.Errorf("seed entry %d is null", i)
		}
	}
	return agents, nil
}

// MarshalAgents renders agents in the seed file format.
func MarshalAgents(agents []*models.Agent) ([]byte, error) {
	out := make([]models.Agent, 0, len(agents))
	for _, agent := range agents {
		out = append(out, agent.Normalized())
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode seed data: %w", err)
	}
	return append(data, '\n'), nil
}

// ImportAgents creates each agent through the registry service, logging failures instead of stopping.
func ImportAgents(ctx context.Context, registry service.RegistryService, agents []*models.Agent) *ImportResult {
	result := &ImportResult{}
	for _, agent := range agents {
		_, err := registry.CreateAgent(ctx, agent)
		switch {
		case err == nil:
			result.Imported++
			logging.Log(ctx, logging.SystemLog, zapcore.InfoLevel, "Imported agent", zap.String("agent_id", agent.ID))
		case errors.Is(err, database.ErrAlreadyExists):
			result.Skipped++
			logging.Log(ctx, logging.SystemLog, zapcore.DebugLevel, "Agent already present", zap.String("agent_id", agent.ID))
		default:
			result.Failed++
			logging.Log(ctx, logging.SystemLog, zapcore.ErrorLevel, "Failed to import agent", zap.String("agent_id", agent.ID), zap.Error(err))
		}
	}
	return result
}
