// Package server exposes the read-only status API.
package server

type Server struct {
	StatusServer
}

func NewServer(
	statusServer StatusServer,
) Server {
	return Server{
		StatusServer: statusServer,
	}
}
