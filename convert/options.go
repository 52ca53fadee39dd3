package convert

// Option configures a Converter.
type Option func(*convertConfig)

type convertConfig struct {
	tagName    string
	omitEmpty  bool
	timeFormat string
}

func defaultConfig() *convertConfig {
	return &convertConfig{
		tagName:    "fix",
		omitEmpty:  false,
		timeFormat: "20060102-15:04:05",
	}
}

func (c *convertConfig) applyOptions(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// WithTagName sets the struct tag name used for field mapping. Default
// is "fix".
func WithTagName(name string) Option {
	return func(c *convertConfig) {
		if name != "" {
			c.tagName = name
		}
	}
}

// WithOmitEmpty controls whether zero-value fields are skipped when
// marshaling, in addition to any field that sets "omitempty" itself.
func WithOmitEmpty(omit bool) Option {
	return func(c *convertConfig) {
		c.omitEmpty = omit
	}
}

// WithTimeFormat sets the layout used for time.Time fields that don't
// specify their own "format=" option. Default is "20060102-15:04:05",
// FIX's UTCTIMESTAMP layout without fractional seconds.
func WithTimeFormat(format string) Option {
	return func(c *convertConfig) {
		if format != "" {
			c.timeFormat = format
		}
	}
}
