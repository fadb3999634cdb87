package database

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattewlondono22/smartagents-desktop/pkg/models"
)

func TestMemory_CreateThenListIncludesAgent(t *testing.T) {
	ctx := context.Background()
	db := NewMemory()

	agent := &models.Agent{ID: "a1", Name: "Agent One", Description: "first", Capabilities: []string{"x", "y"}}
	require.NoError(t, db.CreateAgent(ctx, agent))

	agents, err := db.ListAgents(ctx)
	require.NoError(t, err)
	require.Len(t, agents, 1)
	assert.Equal(t, *agent, *agents[0])
}

func TestMemory_ListPreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	db := NewMemory()

	for _, id := range []string{"zeta", "alpha", "mid"} {
		require.NoError(t, db.CreateAgent(ctx, &models.Agent{ID: id, Name: id}))
	}
	require.NoError(t, db.DeleteAgent(ctx, "alpha"))
	require.NoError(t, db.CreateAgent(ctx, &models.Agent{ID: "alpha", Name: "again"}))

	agents, err := db.ListAgents(ctx)
	require.NoError(t, err)
	ids := make([]string, len(agents))
	for i, a := range agents {
		ids[i] = a.ID
	}
	assert.Equal(t, []string{"zeta", "mid", "alpha"}, ids)
}

func TestMemory_DuplicateAgentKeepsExistingRecord(t *testing.T) {
	ctx := context.Background()
	db := NewMemory()

	require.NoError(t, db.CreateAgent(ctx, &models.Agent{ID: "dup", Name: "original"}))
	err := db.CreateAgent(ctx, &models.Agent{ID: "dup", Name: "replacement"})
	require.ErrorIs(t, err, ErrAlreadyExists)

	got, err := db.GetAgent(ctx, "dup")
	require.NoError(t, err)
	assert.Equal(t, "original", got.Name)
}

func TestMemory_DeleteAgent(t *testing.T) {
	ctx := context.Background()
	db := NewMemory()
	require.NoError(t, db.CreateAgent(ctx, &models.Agent{ID: "gone", Name: "Gone"}))
	require.NoError(t, db.CreateAgent(ctx, &models.Agent{ID: "kept", Name: "Kept"}))

	require.NoError(t, db.DeleteAgent(ctx, "gone"))
	_, err := db.GetAgent(ctx, "gone")
	assert.ErrorIs(t, err, ErrNotFound)

	err = db.DeleteAgent(ctx, "gone")
	assert.ErrorIs(t, err, ErrNotFound)

	agents, err := db.ListAgents(ctx)
	require.NoError(t, err)
	require.Len(t, agents, 1)
	assert.Equal(t, "kept", agents[0].ID)
}

func TestMemory_ReturnedAgentsAreCopies(t *testing.T) {
	ctx := context.Background()
	db := NewMemory()
	require.NoError(t, db.CreateAgent(ctx, &models.Agent{ID: "a", Name: "A", Capabilities: []string{"one"}}))

	got, err := db.GetAgent(ctx, "a")
	require.NoError(t, err)
	got.Capabilities[0] = "mutated"
	got.Name = "mutated"

	again, err := db.GetAgent(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "A", again.Name)
	assert.Equal(t, []string{"one"}, again.Capabilities)
}

func TestMemory_Tools(t *testing.T) {
	ctx := context.Background()
	db := NewMemory()

	tools, err := db.ListTools(ctx)
	require.NoError(t, err)
	assert.Empty(t, tools)

	require.NoError(t, db.CreateTool(ctx, &models.Tool{ID: "search", Name: "Search", Description: "web"}))
	err = db.CreateTool(ctx, &models.Tool{ID: "search", Name: "Other", Enabled: true})
	require.ErrorIs(t, err, ErrAlreadyExists)

	tools, err = db.ListTools(ctx)
	require.NoError(t, err)
	require.Len(t, tools, 1)
	assert.Equal(t, "Search", tools[0].Name)
	assert.False(t, tools[0].Enabled)
}

func TestMemory_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	db := NewMemory()
	_, err := db.ListAgents(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, db.CreateAgent(ctx, &models.Agent{ID: "x"}), context.Canceled)
}

func TestMemory_ConcurrentCreates(t *testing.T) {
	ctx := context.Background()
	db := NewMemory()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = db.CreateAgent(ctx, &models.Agent{ID: fmt.Sprintf("agent-%d", i%10), Name: "n"})
		}(i)
	}
	wg.Wait()

	agents, err := db.ListAgents(ctx)
	require.NoError(t, err)
	assert.Len(t, agents, 10)
}
