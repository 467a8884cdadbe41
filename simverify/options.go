package simverify

import "github.com/rs/zerolog"

// verifyConfig collects the effect of every applied VerifyOption.
type verifyConfig struct {
	logger    zerolog.Logger
	maxRounds int
}

func defaultVerifyConfig() verifyConfig {
	return verifyConfig{
		logger:    zerolog.Nop(),
		maxRounds: 0,
	}
}

// VerifyOption customizes a Verify call. Options are applied in order,
// so a later WithLogger/WithMaxRounds overrides an earlier one.
type VerifyOption func(*verifyConfig)

// WithLogger attaches a zerolog.Logger that receives one debug event
// per round and a warn event on failure. The default logger is
// zerolog.Nop(), so logging never affects verification outcome.
func WithLogger(logger zerolog.Logger) VerifyOption {
	return func(c *verifyConfig) {
		c.logger = logger
	}
}

// WithMaxRounds bounds the number of rounds Verify will run before
// giving up and reporting failure, guarding against a Solution that
// never terminates (e.g. every program ends in an infinite Z tail
// chasing a cell no agent can reach). A non-positive value disables
// the bound, matching the original's unbounded loop.
func WithMaxRounds(n int) VerifyOption {
	return func(c *verifyConfig) {
		c.maxRounds = n
	}
}
