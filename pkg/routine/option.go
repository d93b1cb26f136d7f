package routine

type option struct {
	limit int
}

type Option func(*option)

// WithLimit bounds the number of goroutines running at the same time
func WithLimit(limit int) Option {
	return func(o *option) { o.limit = limit }
}
