package handlers

import "context"

// CartStore is the per-user dish→quantity mapping held outside the
// relational store.
type CartStore interface {
	Add(ctx context.Context, userID, dishID uint, quantity int) error
	Get(ctx context.Context, userID uint) (map[string]int, error)
	Clear(ctx context.Context, userID uint) error
}

// Notifier publishes user notifications for asynchronous delivery.
type Notifier interface {
	Notify(ctx context.Context, userID uint, message string) error
}
