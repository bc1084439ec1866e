package auth

import "context"

type TestChecker struct {
	ValidTokens map[string]bool
}

func NewTestChecker(tokens ...string) *TestChecker {
	c := &TestChecker{
		ValidTokens: map[string]bool{},
	}
	for _, t := range tokens {
		c.ValidTokens[t] = true
	}
	return c
}

func (c *TestChecker) IsValid(_ context.Context, token string) (bool, error) {
	return c.ValidTokens[token], nil
}
