package hotkey

import (
	"context"
)

type coordinator struct {
	// входящие от платформенного слушателя
	keysIn chan Event
	// исходящие для потребителей
	out chan Event
	// подменяется в тестах; nil — платформенная реализация
	listener winListener
}

func (c *coordinator) Events() <-chan Event { return c.out }

func (c *coordinator) Run(ctx context.Context) error {
	wl := c.listener
	if wl == nil {
		var err error
		wl, err = newWinListener()
		if err != nil {
			return err
		}
	}

	// запускаем платформенный слушатель в отдельной горутине
	go wl.run(ctx, c.keysIn)

	defer close(c.out)
	for {
		select {
		case <-ctx.Done():
			return context.Cause(ctx)
		case ev := <-c.keysIn:
			c.safeSend(ev)
		}
	}
}

func (c *coordinator) safeSend(ev Event) {
	select {
	case c.out <- ev:
	default:
		// в случае переполнения — дроп, чтобы не блокировать
	}
}

// Платформенная реализация под Windows в файле windows_listener_windows.go
type winListener interface {
	run(ctx context.Context, keysOut chan<- Event)
}
