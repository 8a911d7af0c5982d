package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/shewell/maternity-api/internal/model"
)

type ChatHistoryRepository struct {
	mu        sync.RWMutex
	byAccount map[uuid.UUID][]model.ChatTurn
}

func NewChatHistoryRepository() *ChatHistoryRepository {
	return &ChatHistoryRepository{
		byAccount: make(map[uuid.UUID][]model.ChatTurn),
	}
}

func (r *ChatHistoryRepository) Append(ctx context.Context, accountID uuid.UUID, turn model.ChatTurn) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	turns := append(r.byAccount[accountID], turn)
	if len(turns) > model.MaxChatHistory {
		turns = turns[len(turns)-model.MaxChatHistory:]
	}
	r.byAccount[accountID] = turns
	return nil
}

func (r *ChatHistoryRepository) List(ctx context.Context, accountID uuid.UUID) ([]model.ChatTurn, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]model.ChatTurn(nil), r.byAccount[accountID]...), nil
}

func (r *ChatHistoryRepository) Clear(ctx context.Context, accountID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byAccount, accountID)
	return nil
}
