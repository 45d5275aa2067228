package lobby

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"wolfgoatpig-server/pkg/model"
	"wolfgoatpig-server/pkg/playable"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func testLobby(t *testing.T) (*Lobby, *Round) {
	t.Helper()

	l := New(logrus.StandardLogger(), 0)
	round, err := l.CreateRound(CreateRequest{
		Game:        "wolf-goat-pig",
		PlayerIDs:   []int64{10, 20, 30, 40},
		PlayerNames: map[int64]string{10: "Alice"},
		AdditionalData: playable.AdditionalData{
			"shuffleTeeOrder": false,
		},
	})
	assert.NoError(t, err)

	t.Cleanup(func() {
		l.Remove(round.UUID)
	})

	return l, round
}

func TestLobby_CreateRound(t *testing.T) {
	a := assert.New(t)

	l, round := testLobby(t)
	a.NotEmpty(round.UUID)
	a.Len(round.ShareCode, shareCodeLength)
	a.Equal("Wolf Goat Pig (1-quarter base)", round.Name)
	a.Equal([]int64{10, 20, 30, 40}, round.PlayerIDs)
	a.Equal("Alice", round.Names[10])
	a.NotEmpty(round.Names[20], "players without a name get one assigned")

	found, ok := l.Round(round.UUID)
	a.True(ok)
	a.Equal(round, found)

	_, ok = l.Round("bogus")
	a.False(ok)

	_, err := l.CreateRound(CreateRequest{Game: "poker"})
	a.EqualError(err, "no factory with name: poker")

	_, err = l.CreateRound(CreateRequest{Game: "wolf-goat-pig", PlayerIDs: []int64{10}})
	a.EqualError(err, "expected 4 players, got 1")
}

func TestLobby_actionsAndLog(t *testing.T) {
	a := assert.New(t)

	_, round := testLobby(t)

	// the attendant drains the game's channel into the round's buffer
	a.Eventually(func() bool {
		return len(round.LogMessages(0, 100)) > 0
	}, time.Second*2, time.Millisecond*10)

	resp, err := round.Action(10, &playable.PayloadIn{
		Action:         "choosePartner",
		AdditionalData: playable.AdditionalData{"partner": float64(30)},
	})
	a.NoError(err)
	a.Equal(playable.OK(), resp)

	_, err = round.Action(99, &playable.PayloadIn{Action: "declareSolo"})
	a.Error(err)

	state, err := round.PlayerState(10)
	a.NoError(err)
	a.Equal("wolf-goat-pig", state.Value)

	a.False(round.IsOver())
}

func TestLobby_finishSavesRound(t *testing.T) {
	a := assert.New(t)

	l, round := testLobby(t)

	var saved *model.Round
	l.Save = func(ctx context.Context, record *model.Round) error {
		saved = record
		return nil
	}

	l.finish(round, &playable.GameOverDetails{
		BalanceAdjustments: map[int64]string{10: "3", 20: "-1", 30: "-1", 40: "-1"},
		Log:                []string{},
	})

	a.NotNil(saved)
	a.Equal(round.UUID, saved.UUID)
	a.Equal(round.ShareCode, saved.ShareCode)
	a.Equal("wolf-goat-pig", saved.Game)
	a.Equal([]int64{10, 20, 30, 40}, saved.Players)

	var totals map[string]string
	a.NoError(json.Unmarshal(saved.Totals, &totals))
	a.Equal("3", totals["10"])
}

func TestLobby_finishWithoutSaveFunc(t *testing.T) {
	l, round := testLobby(t)

	// nothing to assert beyond not panicking
	l.finish(round, &playable.GameOverDetails{})
}

func TestRound_logWindowing(t *testing.T) {
	a := assert.New(t)

	r := &Round{logCap: 3}
	r.appendLog(playable.SimpleLogMessage(0, "one"))
	r.appendLog(playable.SimpleLogMessage(0, "two"))
	r.appendLog(playable.SimpleLogMessage(0, "three"))
	r.appendLog(playable.SimpleLogMessage(0, "four"))

	all := r.LogMessages(0, 100)
	a.Len(all, 3, "the oldest message fell off")
	a.Equal("two", all[0].Message)

	window := r.LogMessages(1, 1)
	a.Len(window, 1)
	a.Equal("three", window[0].Message)

	a.Empty(r.LogMessages(10, 5))
}
