package middlewarex

import "github.com/dylan-park/TradeBell/pkg/contextx"

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals
