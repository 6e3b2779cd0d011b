package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/Xizillimax/homework-bot/internal/source/practicum"
)

// Source fetches raw homework statuses newer than the given cursor.
type Source interface {
	Fetch(ctx context.Context, fromDate int64) (practicum.Payload, error)
}

// Notifier delivers a message to the chat channel. Implementations swallow
// delivery failures; Notify has no error to return.
type Notifier interface {
	Notify(ctx context.Context, text string)
}
