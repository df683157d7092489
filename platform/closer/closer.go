package closer

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/sm107-uiuc/sparemate-hub/platform/logger"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

type namedFunc struct {
	name string
	fn   func(context.Context) error
}

// Closer runs registered shutdown functions in reverse registration order.
type Closer struct {
	mu     sync.Mutex
	once   sync.Once
	funcs  []namedFunc
	logger Logger
}

var globalCloser = New()

func New() *Closer {
	return &Closer{logger: logger.NoopLogger{}}
}

func SetLogger(l Logger)                                   { globalCloser.SetLogger(l) }
func AddNamed(name string, fn func(context.Context) error) { globalCloser.AddNamed(name, fn) }
func CloseAll(ctx context.Context) error                   { return globalCloser.CloseAll(ctx) }

func (c *Closer) SetLogger(l Logger) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logger = l
}

func (c *Closer) AddNamed(name string, fn func(context.Context) error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.funcs = append(c.funcs, namedFunc{name: name, fn: fn})
}

func (c *Closer) CloseAll(ctx context.Context) error {
	var result error

	c.once.Do(func() {
		c.mu.Lock()
		funcs := c.funcs
		c.funcs = nil
		log := c.logger
		c.mu.Unlock()

		var errs []error
		for i := len(funcs) - 1; i >= 0; i-- {
			f := funcs[i]
			if ctx.Err() != nil {
				errs = append(errs, ctx.Err())
				break
			}

			log.Info(ctx, "closing", zap.String("name", f.name))
			if err := f.fn(ctx); err != nil {
				log.Error(ctx, "close failed", zap.String("name", f.name), zap.Error(err))
				errs = append(errs, err)
			}
		}
		result = errors.Join(errs...)
	})

	return result
}
