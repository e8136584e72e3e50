package contextx

import (
	"context"
	"fmt"
)

type AccountName string

type contextKeyAccountName struct{}

func (a AccountName) String() string {
	return string(a)
}

func WithAccountName(ctx context.Context, accountName AccountName) context.Context {
	return context.WithValue(ctx, contextKeyAccountName{}, accountName)
}

func AccountNameFromContext(ctx context.Context) (AccountName, error) {
	accountName, ok := ctx.Value(contextKeyAccountName{}).(AccountName)
	if !ok {
		return "", fmt.Errorf("account name: %w", ErrNoValue)
	}

	return accountName, nil
}
