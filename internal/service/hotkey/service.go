package hotkey

import (
	"context"
	"time"
)

// EventType описывает типы событий, публикуемых слушателем хоткеев.
type EventType int

const (
	EventPolish         EventType = iota + 1 // Ctrl+Shift+P
	EventNextSuggestion                      // Ctrl+Shift+]
	EventQuit                                // Ctrl+Shift+Q
)

// Event глобальное нажатие хоткея.
type Event struct {
	Type EventType
	At   time.Time
}

// Service минимальный интерфейс слушателя глобальных хоткеев.
type Service interface {
	Run(ctx context.Context) error
	Events() <-chan Event
}

// New создает сервис с координатором и платформенным источником событий.
func New() Service {
	return &coordinator{
		out:    make(chan Event, 16),
		keysIn: make(chan Event, 16),
	}
}
