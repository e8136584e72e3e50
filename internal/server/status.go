package server

import (
	"net/http"
	"time"

	"git.appkode.ru/pub/go/failure"

	"github.com/dylan-park/TradeBell/internal/worker"
	"github.com/dylan-park/TradeBell/pkg/errcodes"
	"github.com/dylan-park/TradeBell/pkg/httpx/reply"
)

type pollerRegistry interface {
	Size() int
	Snapshots() []worker.Snapshot
	Snapshot(name string) (worker.Snapshot, bool)
}

type StatusServer struct {
	appName    string
	appVersion string
	startedAt  time.Time
	registry   pollerRegistry
}

func NewStatusServer(appName, appVersion string, registry pollerRegistry) StatusServer {
	return StatusServer{
		appName:    appName,
		appVersion: appVersion,
		startedAt:  time.Now(),
		registry:   registry,
	}
}

func (s StatusServer) getV1Status(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	reply.JSON(ctx, w, http.StatusOK, newRESTStatus(
		s.appName,
		s.appVersion,
		time.Since(s.startedAt),
		s.registry.Size(),
	))

	return nil
}

func (s StatusServer) getV1Accounts(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	reply.JSON(ctx, w, http.StatusOK, newRESTAccounts(s.registry.Snapshots()))

	return nil
}

func (s StatusServer) getV1Account(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	snapshot, ok := s.registry.Snapshot(r.PathValue("name"))
	if !ok {
		return failure.NewNotFoundError(
			"account not found",
			failure.WithCode(errcodes.AccountNotFound),
			failure.WithDescription("No account with the given name is being watched"),
		)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTAccount(snapshot))

	return nil
}
