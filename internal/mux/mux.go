package mux

import (
	"context"
	"net/http"

	"wolfgoatpig-server/pkg/lobby"

	gmux "github.com/gorilla/mux"
)

type ctxKey int

const ctxRoundKey ctxKey = iota

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
	lobby   *lobby.Lobby
}

// NewMux returns a new HTTP mux
func NewMux(version string, l *lobby.Lobby) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		lobby:   l,
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodPost).Path("/round").Handler(this.postRound())

	rr := r.PathPrefix("/round/{uuid:(?i)[a-f0-9]{8}(?:-[a-f0-9]{4}){3}-[a-f0-9]{12}}").Subrouter()
	rr.Use(this.roundMiddleware)

	rr.Methods(http.MethodGet).Path("").Handler(this.getRoundUUID())
	rr.Methods(http.MethodPost).Path("/action").Handler(this.postRoundUUIDAction())
	rr.Methods(http.MethodGet).Path("/log").Handler(this.getRoundUUIDLog())

	return this
}

func (m *Mux) roundMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		round, ok := m.lobby.Round(gmux.Vars(r)["uuid"])
		if !ok {
			writeJSONError(w, http.StatusNotFound, nil)
			return
		}

		newCtx := context.WithValue(r.Context(), ctxRoundKey, round)
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}

func roundFromContext(r *http.Request) *lobby.Round {
	return r.Context().Value(ctxRoundKey).(*lobby.Round)
}
