package auth

import "context"

var _ Checker = (*SecretChecker)(nil)
var _ Checker = (*TestChecker)(nil)

type Checker interface {
	IsValid(ctx context.Context, token string) (bool, error)
}
