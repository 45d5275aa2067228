package mux

import (
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"wolfgoatpig-server/pkg/lobby"
	"wolfgoatpig-server/pkg/playable"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func testMux(t *testing.T, version string) *Mux {
	t.Helper()
	return NewMux(version, lobby.New(logrus.StandardLogger(), 0))
}

func createTestRound(t *testing.T, ts *httptest.Server) lobby.Info {
	t.Helper()

	var info lobby.Info
	assertPost(t, ts, "/round", postRoundPayload{
		Game:    "wolf-goat-pig",
		Players: []int64{10, 20, 30, 40},
		Names:   []string{"Alice"},
		AdditionalData: playable.AdditionalData{
			"shuffleTeeOrder": false,
		},
	}, &info, 201)

	return info
}

func TestPostRound(t *testing.T) {
	a := assert.New(t)

	m := testMux(t, "")
	ts := httptest.NewServer(m)
	defer ts.Close()

	info := createTestRound(t, ts)
	a.NotEmpty(info.UUID)
	a.Len(info.ShareCode, 8)
	a.Equal("wolf-goat-pig", info.Game)
	a.Equal([]int64{10, 20, 30, 40}, info.Players)
	a.Equal("Alice", info.Names[10])

	var errObj errorResponse
	assertPost(t, ts, "/round", postRoundPayload{Game: "poker"}, &errObj, 400)
	a.Equal("no factory with name: poker", errObj.Message)

	assertPost(t, ts, "/round", postRoundPayload{
		Game:    "wolf-goat-pig",
		Players: []int64{10},
		Names:   []string{"A", "B"},
	}, &errObj, 400)
	a.Equal("more names than players", errObj.Message)

	assertPost(t, ts, "/round", "{bad json", &errObj, 400)
}

func TestGetRound(t *testing.T) {
	a := assert.New(t)

	m := testMux(t, "")
	ts := httptest.NewServer(m)
	defer ts.Close()

	info := createTestRound(t, ts)

	var resp playable.Response
	assertGet(t, ts, fmt.Sprintf("/round/%s?playerId=10", info.UUID), &resp, 200)
	a.Equal("game", resp.Key)
	a.Equal("wolf-goat-pig", resp.Value)

	// a well-formed but unknown UUID is a JSON 404
	var errObj errorResponse
	assertGet(t, ts, "/round/00000000-0000-0000-0000-000000000000", &errObj, 404)
	a.Equal("Not Found", errObj.Message)

	assertGet(t, ts, fmt.Sprintf("/round/%s?playerId=abc", info.UUID), &errObj, 400)
}

func TestPostRoundAction(t *testing.T) {
	a := assert.New(t)

	m := testMux(t, "")
	ts := httptest.NewServer(m)
	defer ts.Close()

	info := createTestRound(t, ts)
	path := fmt.Sprintf("/round/%s/action", info.UUID)

	var resp playable.Response
	assertPost(t, ts, path, postActionPayload{
		PlayerID:       10,
		Action:         "choosePartner",
		AdditionalData: playable.AdditionalData{"partner": float64(30)},
	}, &resp, 200)
	a.Equal("status", resp.Key)
	a.Equal("OK", resp.Value)

	var errObj errorResponse
	assertPost(t, ts, path, postActionPayload{
		PlayerID: 20,
		Action:   "declareSolo",
	}, &errObj, 400)
	a.Equal("only the captain may do that", errObj.Message)

	assertPost(t, ts, path, postActionPayload{
		PlayerID: 10,
		Action:   "shuffle",
	}, &errObj, 400)
	a.Equal("unknown action: shuffle", errObj.Message)
}

func TestGetRoundLog(t *testing.T) {
	a := assert.New(t)

	m := testMux(t, "")
	ts := httptest.NewServer(m)
	defer ts.Close()

	info := createTestRound(t, ts)
	round, ok := m.lobby.Round(info.UUID)
	a.True(ok)

	// log delivery is asynchronous
	a.Eventually(func() bool {
		return len(round.LogMessages(0, 100)) > 0
	}, time.Second*2, time.Millisecond*10)

	var messages []*playable.LogMessage
	assertGet(t, ts, fmt.Sprintf("/round/%s/log", info.UUID), &messages, 200)
	a.NotEmpty(messages)

	assertGet(t, ts, fmt.Sprintf("/round/%s/log?rows=1", info.UUID), &messages, 200)
	a.Len(messages, 1)

	var errObj errorResponse
	assertGet(t, ts, fmt.Sprintf("/round/%s/log?start=-1", info.UUID), &errObj, 400)
	a.Equal("start cannot be less than zero", errObj.Message)
}
