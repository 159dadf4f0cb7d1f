package leopard16

// Option configures an Encoder/Decoder, following the teacher's
// functional-options idiom (github.com/bpfs/defs/v2/reedsolomon's
// New(dataShards, parityShards, opts ...Option)).
type Option func(*config)

type config struct {
	variant Variant
	forced  bool
}

// WithVariant forces a specific Engine variant instead of the
// CPU-detected default, for testing and benchmarking.
func WithVariant(v Variant) Option {
	return func(c *config) {
		c.variant = v
		c.forced = true
	}
}

func newConfig(opts ...Option) config {
	var c config
	for _, o := range opts {
		o(&c)
	}
	return c
}

func (c config) engine() Engine {
	ensureTables()
	if c.forced {
		return ForVariant(c.variant)
	}
	return selectPlatform()
}
