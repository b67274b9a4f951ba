package srv

import "context"

// NewCleanup wraps a teardown function as a Service so resources like
// database handles close during the shutdown sweep.
func NewCleanup(fn func() error) Service {
	return cleanup(fn)
}

type cleanup func() error

func (cleanup) Start(ctx context.Context) error { return nil }

func (c cleanup) Shutdown(ctx context.Context) error {
	if c != nil {
		return c()
	}
	return nil
}
