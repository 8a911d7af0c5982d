// Package redis implements the chat-history repository on a Redis list per
// account, trimmed to the history cap on every append.
package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/shewell/maternity-api/internal/model"
	"github.com/shewell/maternity-api/internal/repository"
)

type ChatHistoryRepository struct {
	client *redis.Client
}

func NewChatHistoryRepository(client *redis.Client) repository.ChatHistoryRepository {
	return &ChatHistoryRepository{client: client}
}

func historyKey(accountID uuid.UUID) string {
	return fmt.Sprintf("chat:history:%s", accountID)
}

func (r *ChatHistoryRepository) Append(ctx context.Context, accountID uuid.UUID, turn model.ChatTurn) error {
	payload, err := json.Marshal(turn)
	if err != nil {
		return fmt.Errorf("failed to encode chat turn: %w", err)
	}

	key := historyKey(accountID)
	pipe := r.client.TxPipeline()
	pipe.RPush(ctx, key, payload)
	// keep only the newest MaxChatHistory turns
	pipe.LTrim(ctx, key, int64(-model.MaxChatHistory), -1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append chat turn: %w", err)
	}
	return nil
}

func (r *ChatHistoryRepository) List(ctx context.Context, accountID uuid.UUID) ([]model.ChatTurn, error) {
	entries, err := r.client.LRange(ctx, historyKey(accountID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read chat history: %w", err)
	}

	turns := make([]model.ChatTurn, 0, len(entries))
	for _, entry := range entries {
		var turn model.ChatTurn
		if err := json.Unmarshal([]byte(entry), &turn); err != nil {
			return nil, fmt.Errorf("failed to decode chat turn: %w", err)
		}
		turns = append(turns, turn)
	}
	return turns, nil
}

func (r *ChatHistoryRepository) Clear(ctx context.Context, accountID uuid.UUID) error {
	if err := r.client.Del(ctx, historyKey(accountID)).Err(); err != nil && err != redis.Nil {
		return fmt.Errorf("failed to clear chat history: %w", err)
	}
	return nil
}
