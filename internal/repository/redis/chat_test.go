package redis

import (
	"context"
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shewell/maternity-api/internal/model"
	"github.com/shewell/maternity-api/internal/repository"
)

func newTestRepo(t *testing.T) repository.ChatHistoryRepository {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewChatHistoryRepository(client)
}

func TestAppendAndList(t *testing.T) {
	repo := newTestRepo(t)
	accountID := uuid.New()
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, accountID, model.ChatTurn{User: "first question", AI: "first answer"}))
	require.NoError(t, repo.Append(ctx, accountID, model.ChatTurn{User: "second question", AI: "second answer"}))

	turns, err := repo.List(ctx, accountID)
	require.NoError(t, err)
	require.Len(t, turns, 2)
	assert.Equal(t, "first question", turns[0].User)
	assert.Equal(t, "second answer", turns[1].AI)
}

func TestListEmptyHistory(t *testing.T) {
	repo := newTestRepo(t)

	turns, err := repo.List(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, turns)
}

func TestAppendTrimsToCap(t *testing.T) {
	repo := newTestRepo(t)
	accountID := uuid.New()
	ctx := context.Background()

	for i := 0; i < model.MaxChatHistory+7; i++ {
		err := repo.Append(ctx, accountID, model.ChatTurn{
			User: fmt.Sprintf("question %d", i),
			AI:   "answer",
		})
		require.NoError(t, err)
	}

	turns, err := repo.List(ctx, accountID)
	require.NoError(t, err)
	require.Len(t, turns, model.MaxChatHistory)
	assert.Equal(t, "question 7", turns[0].User)
	assert.Equal(t, fmt.Sprintf("question %d", model.MaxChatHistory+6), turns[len(turns)-1].User)
}

func TestHistoriesAreIsolated(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	first := uuid.New()
	second := uuid.New()

	require.NoError(t, repo.Append(ctx, first, model.ChatTurn{User: "mine", AI: "ok"}))

	turns, err := repo.List(ctx, second)
	require.NoError(t, err)
	assert.Empty(t, turns)
}

func TestClear(t *testing.T) {
	repo := newTestRepo(t)
	accountID := uuid.New()
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, accountID, model.ChatTurn{User: "q", AI: "a"}))
	require.NoError(t, repo.Clear(ctx, accountID))

	turns, err := repo.List(ctx, accountID)
	require.NoError(t, err)
	assert.Empty(t, turns)

	// clearing an already-empty history is fine
	require.NoError(t, repo.Clear(ctx, accountID))
}
