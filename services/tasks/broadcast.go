package tasks

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"urbanauto/config"
)

const TypeBroadcastSend = "broadcast:send"

// BroadcastPayload is the task payload for a queued push broadcast.
type BroadcastPayload struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// NewBroadcastTask builds the asynq task for a broadcast.
func NewBroadcastTask(title, body string) (*asynq.Task, error) {
	payload, err := json.Marshal(BroadcastPayload{Title: title, Body: body})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal broadcast payload: %w", err)
	}
	return asynq.NewTask(TypeBroadcastSend, payload), nil
}

// NewQueueClient returns an asynq client bound to the queue database.
func NewQueueClient() *asynq.Client {
	return asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
}
