package matroid

// Option configures a façade at construction.
type Option func(*options)

type options struct {
	name string
}

// WithName attaches a custom display name to the constructed matroid.
// The name travels through ExportState and Relabel.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

func buildOptions(opts []Option) options {
	var o options
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
