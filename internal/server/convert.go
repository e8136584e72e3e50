package server

import (
	"time"

	"github.com/samber/lo"

	"github.com/dylan-park/TradeBell/internal/worker"
	"github.com/dylan-park/TradeBell/pkg/rest"
)

func newRESTStatus(name, version string, uptime time.Duration, accounts int) rest.Status {
	return rest.Status{
		Name:     name,
		Version:  version,
		UptimeS:  int64(uptime / time.Second),
		Accounts: accounts,
	}
}

func newRESTAccounts(snapshots []worker.Snapshot) []rest.Account {
	return lo.Map(snapshots, func(snapshot worker.Snapshot, _ int) rest.Account {
		return newRESTAccount(snapshot)
	})
}

func newRESTAccount(snapshot worker.Snapshot) rest.Account {
	account := rest.Account{
		Name:            snapshot.Name,
		ProcessedTrades: snapshot.ProcessedTrades,
		LastError:       snapshot.LastError,
	}

	if !snapshot.LastPollAt.IsZero() {
		account.LastPollAt = snapshot.LastPollAt.Unix()
	}

	return account
}
