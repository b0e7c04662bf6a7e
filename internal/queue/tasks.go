package queue

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	// TaskOrderNotify tells the worker to notify the shopkeeper about a
	// new order.
	TaskOrderNotify = "order:notify"
	// TaskOrderTimeoutCancel cancels an order still unpaid after the
	// payment window.
	TaskOrderTimeoutCancel = "order:timeout_cancel"
)

// OrderNotifyPayload identifies the order to announce.
type OrderNotifyPayload struct {
	OrderID uint `json:"order_id"`
}

// OrderTimeoutCancelPayload identifies the order to cancel on timeout.
type OrderTimeoutCancelPayload struct {
	OrderID uint `json:"order_id"`
}

// NewOrderNotifyTask builds a notification task.
func NewOrderNotifyTask(payload OrderNotifyPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderNotify, body), nil
}

// NewOrderTimeoutCancelTask builds a timeout cancellation task.
func NewOrderTimeoutCancelTask(payload OrderTimeoutCancelPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderTimeoutCancel, body), nil
}
