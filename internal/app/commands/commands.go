package commands

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrHandlerNotFound = errors.New("commands: handler not found")
	ErrInvalidCommand  = errors.New("commands: invalid command for handler")
)

// Command is a state-changing request routed by its key.
type Command interface {
	Key() string
}

// Handler executes one command type.
type Handler[C Command] interface {
	Handle(ctx context.Context, cmd C) error
}

// Bus routes commands to registered handlers.
type Bus interface {
	Dispatch(ctx context.Context, cmd Command) error
}

type rawHandler func(ctx context.Context, cmd Command) error

// InMemoryBus dispatches commands to handlers registered in-process.
type InMemoryBus struct {
	handlers map[string]rawHandler
}

func NewInMemoryBus() *InMemoryBus {
	return &InMemoryBus{handlers: make(map[string]rawHandler)}
}

func (b *InMemoryBus) Dispatch(ctx context.Context, cmd Command) error {
	h, ok := b.handlers[cmd.Key()]
	if !ok {
		return fmt.Errorf("%w: %s", ErrHandlerNotFound, cmd.Key())
	}
	return h(ctx, cmd)
}

// Register binds a typed handler to a key on the bus.
func Register[C Command](bus *InMemoryBus, key string, handler Handler[C]) {
	if bus == nil {
		panic("commands: nil bus")
	}
	if key == "" {
		panic("commands: empty key registration")
	}
	bus.handlers[key] = func(ctx context.Context, raw Command) error {
		cmd, ok := any(raw).(C)
		if !ok {
			return fmt.Errorf("%w: %s", ErrInvalidCommand, key)
		}
		return handler.Handle(ctx, cmd)
	}
}
