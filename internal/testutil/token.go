package testutil

// DefaultRunToken is used when a scenario does not pin its own token.
const DefaultRunToken = "test-run-default"

// FixedTokenGenerator returns the same run token on every call, so golden
// traces do not depend on UUID generation.
//
// Thread-safety: stateless after construction, safe for concurrent use.
type FixedTokenGenerator struct {
	token string
}

// NewFixedTokenGenerator creates a generator for token, or DefaultRunToken
// when token is empty.
func NewFixedTokenGenerator(token string) *FixedTokenGenerator {
	if token == "" {
		token = DefaultRunToken
	}
	return &FixedTokenGenerator{token: token}
}

// Generate returns the fixed token.
func (g *FixedTokenGenerator) Generate() string {
	return g.token
}
