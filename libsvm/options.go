package libsvm

// Option configures an Encoder, a Decoder, or the file helpers.
type Option func(*config)

type config struct {
	delimiter   byte
	precision   int
	numRows     int
	source      string
	finite      bool
	maxLineSize int
}

const defaultMaxLineSize = 64 << 20

func newConfig(opts []Option) config {
	cfg := config{
		delimiter:   ' ',
		precision:   -1,
		numRows:     -1,
		maxLineSize: defaultMaxLineSize,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithDelimiter sets the byte separating fields on a line. The default is a
// single space.
func WithDelimiter(d byte) Option {
	return func(c *config) {
		c.delimiter = d
	}
}

// WithPrecision sets the number of significant digits written for floating
// and complex values. The default, -1, writes the shortest representation
// that parses back to the identical value.
func WithPrecision(p int) Option {
	return func(c *config) {
		c.precision = p
	}
}

// WithNumRows fixes the number of rows of the decoded matrix instead of
// inferring it from the largest row index in the input.
func WithNumRows(n int) Option {
	return func(c *config) {
		c.numRows = n
	}
}

// WithSourceName sets the name reported in format errors and logs.
func WithSourceName(name string) Option {
	return func(c *config) {
		c.source = name
	}
}

// WithFiniteValues makes the decoder reject NaN and infinite values.
func WithFiniteValues() Option {
	return func(c *config) {
		c.finite = true
	}
}

// WithMaxLineSize sets the longest line, in bytes, the decoder accepts.
func WithMaxLineSize(n int) Option {
	return func(c *config) {
		c.maxLineSize = n
	}
}
