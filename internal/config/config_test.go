package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dylan-park/TradeBell/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	rq := require.New(t)

	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("BOT_CHAT_ID", "-100200300")

	cfg, err := config.Load()
	rq.NoError(err)

	rq.Equal("tradebell", cfg.App.Name)
	rq.Equal("dev", cfg.App.Version)
	rq.False(cfg.App.HTTPDebug)
	rq.Equal("123:abc", cfg.Bot.Token)
	rq.Equal(int64(-100200300), cfg.Bot.ChatID)
	rq.Equal(time.Minute, cfg.Poller.Interval)
	rq.Equal("accounts.json", cfg.Poller.AccountsFile)
	rq.Equal("cache.json", cfg.Cache.Path)
	rq.Equal(":8080", cfg.Servers.StatusAddress)
	rq.Equal(":8091", cfg.Servers.ProbeAddress)
	rq.Equal(":9090", cfg.Servers.MetricsAddress)
}

func TestLoadOverrides(t *testing.T) {
	rq := require.New(t)

	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("BOT_CHAT_ID", "42")
	t.Setenv("POLL_INTERVAL", "30s")
	t.Setenv("ACCOUNTS_FILE", "/etc/tradebell/accounts.json")
	t.Setenv("HTTP_DEBUG", "true")

	cfg, err := config.Load()
	rq.NoError(err)

	rq.Equal(30*time.Second, cfg.Poller.Interval)
	rq.Equal("/etc/tradebell/accounts.json", cfg.Poller.AccountsFile)
	rq.True(cfg.App.HTTPDebug)
}

func TestLoadMissingRequired(t *testing.T) {
	rq := require.New(t)

	t.Setenv("BOT_TOKEN", "")
	t.Setenv("BOT_CHAT_ID", "")
	rq.NoError(os.Unsetenv("BOT_TOKEN"))
	rq.NoError(os.Unsetenv("BOT_CHAT_ID"))

	_, err := config.Load()
	rq.Error(err)
}

func writeAccountsFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "accounts.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoadAccounts(t *testing.T) {
	rq := require.New(t)

	path := writeAccountsFile(t, `[
		{"name": "alice", "api_key": "AAAA"},
		{"name": "bob", "api_key": "BBBB"}
	]`)

	accounts, err := config.LoadAccounts(path)
	rq.NoError(err)
	rq.Len(accounts, 2)
	rq.Equal("alice", accounts[0].Name)
	rq.Equal("AAAA", accounts[0].APIKey)
}

func TestLoadAccountsErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "empty list", content: `[]`},
		{name: "not json", content: `{oops`},
		{name: "missing api key", content: `[{"name": "alice"}]`},
		{name: "missing name", content: `[{"api_key": "AAAA"}]`},
		{name: "duplicate name", content: `[
			{"name": "alice", "api_key": "AAAA"},
			{"name": "alice", "api_key": "BBBB"}
		]`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := config.LoadAccounts(writeAccountsFile(t, test.content))
			require.Error(t, err)
		})
	}
}

func TestLoadAccountsMissingFile(t *testing.T) {
	_, err := config.LoadAccounts(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}
