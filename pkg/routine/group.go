package routine

import (
	"context"
	"sync"

	"github.com/pkg/errors"
)

// ErrGroup runs goroutines sharing one context, the first error or panic cancels the rest
type ErrGroup struct {
	wg     sync.WaitGroup
	ctx    context.Context
	cancel context.CancelFunc
	sem    chan struct{}
	once   sync.Once
	err    error
}

// NewGroup starts a recoverable goroutine ErrGroup with a context.
func NewGroup(ctx context.Context, opts ...Option) *ErrGroup {
	o := option{}
	for _, f := range opts {
		f(&o)
	}
	g := &ErrGroup{}
	g.ctx, g.cancel = context.WithCancel(ctx)
	if o.limit > 0 {
		g.sem = make(chan struct{}, o.limit)
	}
	return g
}

// Go blocks while the group already runs limit goroutines
func (g *ErrGroup) Go(f func(context.Context) error) {
	if g.sem != nil {
		g.sem <- struct{}{}
	}
	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		if g.sem != nil {
			defer func() { <-g.sem }()
		}
		if err := g.call(f); err != nil {
			g.once.Do(func() {
				g.err = err
				g.cancel()
			})
		}
	}()
}

func (g *ErrGroup) call(f func(context.Context) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("panic: %v", r)
		}
	}()
	return f(g.ctx)
}

// Wait returns the first error, the group context is always canceled afterwards
func (g *ErrGroup) Wait() error {
	g.wg.Wait()
	g.cancel()
	return g.err
}
