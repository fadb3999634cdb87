// Package database holds the process-lifetime registry of agents and tools.
package database

import (
	"context"
	"errors"

	"github.com/mattewlondono22/smartagents-desktop/pkg/models"
)

// Common database errors
var (
	ErrNotFound      = errors.New("record not found")
	ErrAlreadyExists = errors.New("record already exists")
)

// Database is the interface for registry storage operations.
type Database interface {
	ListAgents(ctx context.Context) ([]*models.Agent, error)
	GetAgent(ctx context.Context, id string) (*models.Agent, error)
	// CreateAgent inserts the agent; ErrAlreadyExists if the id is taken.
	CreateAgent(ctx context.Context, agent *models.Agent) error
	// DeleteAgent removes the agent; ErrNotFound if the id is absent.
	DeleteAgent(ctx context.Context, id string) error

	ListTools(ctx context.Context) ([]*models.Tool, error)
	// CreateTool inserts the tool; ErrAlreadyExists if the id is taken.
	CreateTool(ctx context.Context, tool *models.Tool) error
}
