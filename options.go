package blitz

// Option configures a SpriteBatch or SpriteBatcher during creation.
//
//	batch := blitz.NewSpriteBatch(dev,
//		blitz.WithCapacity(2048),
//		blitz.WithStreamMode(blitz.StreamDynamic),
//	)
type Option func(*options)

type options struct {
	capacity   int
	streamMode StreamMode
	shader     Shader
	view       int
}

func defaultOptions() options {
	return options{streamMode: StreamTransient}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithCapacity sets the initial item pool size of a SpriteBatch. Values are
// rounded up to a multiple of 64. NewSpriteBatcher takes its capacity as an
// argument and ignores this option.
func WithCapacity(n int) Option {
	return func(o *options) { o.capacity = n }
}

// WithStreamMode selects how flushed vertices reach the device. Only
// StreamDynamic and StreamTransient are valid; the batcher rewrites its
// vertex array every run, which a static stream forbids.
func WithStreamMode(mode StreamMode) Option {
	if mode == StreamStatic {
		panic("blitz: sprite batcher cannot use a static stream")
	}
	return func(o *options) { o.streamMode = mode }
}

// WithDefaultShader sets the shader Begin falls back to when given nil.
func WithDefaultShader(s Shader) Option {
	return func(o *options) { o.shader = s }
}

// WithView selects the device view a SpriteBatch submits to.
func WithView(view int) Option {
	return func(o *options) { o.view = view }
}
