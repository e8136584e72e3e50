package logx

import (
	"regexp"
)

type SensitiveDataMaskerInterface interface {
	Mask(input []byte) []byte
}

//nolint:gochecknoglobals
var sensitiveDataPatterns = []*regexp.Regexp{
	// Steam Web API key, passed as a query parameter.
	regexp.MustCompile(`(?s)([?&]key=)[^&\s"]+()`),
	// Telegram bot token, part of the request path.
	regexp.MustCompile(`(?s)(/bot)\d+:[A-Za-z0-9_-]+(/)`),
	// JSON fields.
	regexp.MustCompile(`(?s)("api_key":\s?").+?(")`),
	regexp.MustCompile(`(?s)("token":\s?").+?(")`),
	regexp.MustCompile("(?s)(Authorization: Bearer ).+?(\r)"),
}

type SensitiveDataMasker struct{}

func NewSensitiveDataMasker() SensitiveDataMasker {
	return SensitiveDataMasker{}
}

func (s SensitiveDataMasker) Mask(input []byte) []byte {
	for _, pattern := range sensitiveDataPatterns {
		input = pattern.ReplaceAll(input, []byte("${1}[MASKED]${2}"))
	}

	return input
}
