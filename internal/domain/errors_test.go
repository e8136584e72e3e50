package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dylan-park/TradeBell/internal/domain"
	"github.com/dylan-park/TradeBell/pkg/errcodes"
)

func TestWrapError(t *testing.T) {
	rq := require.New(t)

	cause := errors.New("connection refused")
	err := domain.WrapError(cause, errcodes.SteamAPIError, "poll trade offers")

	rq.Equal("poll trade offers: connection refused", err.Error())
	rq.ErrorIs(err, cause)

	code, ok := domain.GetCode(err)
	rq.True(ok)
	rq.Equal(errcodes.SteamAPIError, code)

	// The code survives further wrapping.
	code, ok = domain.GetCode(fmt.Errorf("outer: %w", err))
	rq.True(ok)
	rq.Equal(errcodes.SteamAPIError, code)
}

func TestNewError(t *testing.T) {
	rq := require.New(t)

	err := domain.NewError(errcodes.NotificationError, "chat not found")
	rq.Equal("chat not found", err.Error())
	rq.Nil(err.Unwrap())

	_, ok := domain.GetCode(errors.New("plain"))
	rq.False(ok)
}
