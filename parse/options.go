package parse

// Default parser configuration values.
const (
	defaultMaxBodyLength       = 8 * 1024 * 1024 // DoS protection: maximum BodyLength in bytes
	defaultMaxGroupRepetitions = 100000           // DoS protection: maximum repetitions per group
)

// parserConfig holds the parser configuration.
type parserConfig struct {
	maxBodyLength       int
	maxGroupRepetitions int
}

func defaultConfig() parserConfig {
	return parserConfig{
		maxBodyLength:       defaultMaxBodyLength,
		maxGroupRepetitions: defaultMaxGroupRepetitions,
	}
}

// ParserOption is a functional option for configuring the parser.
type ParserOption func(*parserConfig)

// WithMaxBodyLength sets the maximum BodyLength (tag 9) this parser
// accepts before it will even attempt to buffer a message. A sender
// claiming a larger body gets a framing error rather than having the
// parser wait for that many bytes to arrive. Default is 8 MiB.
func WithMaxBodyLength(limit int) ParserOption {
	return func(c *parserConfig) {
		if limit > 0 {
			c.maxBodyLength = limit
		}
	}
}

// WithMaxGroupRepetitions sets the maximum repetition count a
// repeating group's counter field is allowed to declare. Default is
// 100000.
func WithMaxGroupRepetitions(limit int) ParserOption {
	return func(c *parserConfig) {
		if limit > 0 {
			c.maxGroupRepetitions = limit
		}
	}
}
