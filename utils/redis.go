package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client

func InitRedis(url string) error {
	opt, err := redis.ParseURL(strings.TrimSpace(url))
	if err != nil {
		return fmt.Errorf("failed to parse redis url: %w", err)
	}
	RedisClient = redis.NewClient(opt)

	if _, err := RedisClient.Ping(context.Background()).Result(); err != nil {
		return fmt.Errorf("redis connection failed: %w", err)
	}
	logger.Info("Redis connection established")
	return nil
}

// ConversationState is the reserved slot for an in-flight dialog selection.
// The current dispatcher carries the selection in the dialog-submission
// payload itself and never reads this back; a process restart between steps
// loses the selection and the command simply has to be re-invoked.
type ConversationState struct {
	Mensa string `json:"mensa"`
	Date  string `json:"date"`
}

func ConversationKey(teamID, conversationID string) string {
	return fmt.Sprintf("conversation:%s:%s", teamID, conversationID)
}

func SetConversationState(ctx context.Context, teamID, conversationID string, state ConversationState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return RedisClient.Set(ctx, ConversationKey(teamID, conversationID), data, 12*time.Hour).Err()
}

func GetConversationState(ctx context.Context, teamID, conversationID string) (*ConversationState, error) {
	val, err := RedisClient.Get(ctx, ConversationKey(teamID, conversationID)).Result()
	if err != nil {
		return nil, err
	}

	var state ConversationState
	if err := json.Unmarshal([]byte(val), &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func DeleteConversationState(ctx context.Context, teamID, conversationID string) error {
	return RedisClient.Del(ctx, ConversationKey(teamID, conversationID)).Err()
}
