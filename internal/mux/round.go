package mux

import (
	"errors"
	"net/http"
	"strconv"

	"wolfgoatpig-server/pkg/lobby"
	"wolfgoatpig-server/pkg/playable"
)

type postRoundPayload struct {
	Game           string                  `json:"game"`
	Players        []int64                 `json:"players"`
	Names          []string                `json:"names"`
	AdditionalData playable.AdditionalData `json:"additionalData"`
}

func (m *Mux) postRound() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload postRoundPayload
		if !decodeRequest(w, r, &payload) {
			return
		}

		if len(payload.Names) > len(payload.Players) {
			writeJSONError(w, http.StatusBadRequest, errors.New("more names than players"))
			return
		}

		names := make(map[int64]string)
		for i, name := range payload.Names {
			names[payload.Players[i]] = name
		}

		round, err := m.lobby.CreateRound(lobby.CreateRequest{
			Game:           payload.Game,
			PlayerIDs:      payload.Players,
			PlayerNames:    names,
			AdditionalData: payload.AdditionalData,
		})
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		writeJSON(w, http.StatusCreated, round.Info())
	}
}

func (m *Mux) getRoundUUID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		round := roundFromContext(r)

		var playerID int64
		if idStr := r.FormValue("playerId"); idStr != "" {
			val, err := strconv.ParseInt(idStr, 10, 64)
			if err != nil {
				writeJSONError(w, http.StatusBadRequest, err)
				return
			}

			playerID = val
		}

		state, err := round.PlayerState(playerID)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, state)
	}
}

type postActionPayload struct {
	PlayerID       int64                   `json:"playerId"`
	Action         string                  `json:"action"`
	AdditionalData playable.AdditionalData `json:"additionalData"`
}

func (m *Mux) postRoundUUIDAction() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		round := roundFromContext(r)

		var payload postActionPayload
		if !decodeRequest(w, r, &payload) {
			return
		}

		response, err := round.Action(payload.PlayerID, &playable.PayloadIn{
			Action:         payload.Action,
			AdditionalData: payload.AdditionalData,
		})
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		writeJSON(w, http.StatusOK, response)
	}
}

func (m *Mux) getRoundUUIDLog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		round := roundFromContext(r)

		start, rows, err := parsePaginationOptions(r)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		writeJSON(w, http.StatusOK, round.LogMessages(int(start), rows))
	}
}
