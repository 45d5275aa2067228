package lobby

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"wolfgoatpig-server/internal/util"
	"wolfgoatpig-server/pkg/lobby/gamefactory"
	"wolfgoatpig-server/pkg/model"
	"wolfgoatpig-server/pkg/playable"
	"wolfgoatpig-server/pkg/token"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const shareCodeLength = 8
const saveTimeout = time.Second * 10
const defaultLogRetention = 1000

// SaveFunc persists a finished round. If the lobby has no SaveFunc, finished
// rounds stay in memory only.
type SaveFunc func(ctx context.Context, round *model.Round) error

// Lobby keeps the active rounds and attends each one on its own goroutine
type Lobby struct {
	logger       logrus.FieldLogger
	logRetention int

	// Save, if set, is called once when a round finishes
	Save SaveFunc

	mu     sync.RWMutex
	rounds map[string]*Round
}

// New returns an empty lobby
func New(logger logrus.FieldLogger, logRetention int) *Lobby {
	if logRetention <= 0 {
		logRetention = defaultLogRetention
	}

	return &Lobby{
		logger:       logger,
		logRetention: logRetention,
		rounds:       make(map[string]*Round),
	}
}

// CreateRequest is a request to start a new round
type CreateRequest struct {
	Game           string
	PlayerIDs      []int64
	PlayerNames    map[int64]string
	AdditionalData playable.AdditionalData
}

// CreateRound builds a game from the named factory, registers it, and starts
// attending it
func (l *Lobby) CreateRound(req CreateRequest) (*Round, error) {
	factory, err := gamefactory.Get(req.Game)
	if err != nil {
		return nil, err
	}

	name, _, err := factory.Details(req.AdditionalData)
	if err != nil {
		return nil, err
	}

	roundUUID := uuid.New().String()
	game, err := factory.CreateGame(l.logger.WithField("round", roundUUID), req.PlayerIDs, req.AdditionalData)
	if err != nil {
		return nil, err
	}

	shareCode, err := token.Generate(shareCodeLength)
	if err != nil {
		return nil, err
	}

	names := make(map[int64]string, len(req.PlayerIDs))
	for _, id := range req.PlayerIDs {
		if n := req.PlayerNames[id]; n != "" {
			names[id] = n
		} else {
			names[id] = util.GetRandomName()
		}
	}

	round := &Round{
		UUID:      roundUUID,
		ShareCode: shareCode,
		Name:      name,
		Game:      req.Game,
		PlayerIDs: append([]int64{}, req.PlayerIDs...),
		Names:     names,
		game:      game,
		logCap:    l.logRetention,
		done:      make(chan struct{}),
	}

	l.mu.Lock()
	l.rounds[roundUUID] = round
	l.mu.Unlock()

	go l.attend(round)

	l.logger.WithFields(logrus.Fields{
		"round": roundUUID,
		"game":  req.Game,
	}).Info("round created")

	return round, nil
}

// Round returns an active round by UUID
func (l *Lobby) Round(uuid string) (*Round, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	round, ok := l.rounds[uuid]
	return round, ok
}

// Remove stops attending the round and drops it from the lobby
func (l *Lobby) Remove(uuid string) {
	l.mu.Lock()
	round, ok := l.rounds[uuid]
	delete(l.rounds, uuid)
	l.mu.Unlock()

	if ok {
		round.closeOnce.Do(func() { close(round.done) })
	}
}

// attend drains the game's log channel and drives Tick until the round ends
// or is removed
func (l *Lobby) attend(round *Round) {
	var tickC <-chan time.Time
	if tickable, ok := round.game.(playable.Tickable); ok {
		ticker := time.NewTicker(tickable.Interval())
		defer ticker.Stop()
		tickC = ticker.C
	}

	for {
		select {
		case messages := <-round.game.LogChan():
			round.appendLog(messages...)
		case <-tickC:
			round.mu.Lock()
			if _, err := round.game.(playable.Tickable).Tick(); err != nil {
				l.logger.WithError(err).WithField("round", round.UUID).Error("tick failed")
			}
			details, over := round.game.GetEndOfGameDetails()
			round.mu.Unlock()

			if over {
				round.drainLog()
				l.finish(round, details)
				return
			}
		case <-round.done:
			return
		}
	}
}

// finish persists the completed round if a SaveFunc is configured
func (l *Lobby) finish(round *Round, details *playable.GameOverDetails) {
	log := l.logger.WithField("round", round.UUID)
	log.Info("round finished")

	if l.Save == nil {
		return
	}

	ledger, err := json.Marshal(details.Log)
	if err != nil {
		log.WithError(err).Error("could not marshal ledger")
		return
	}

	totals, err := json.Marshal(details.BalanceAdjustments)
	if err != nil {
		log.WithError(err).Error("could not marshal totals")
		return
	}

	record := &model.Round{
		UUID:      round.UUID,
		ShareCode: round.ShareCode,
		Game:      round.Game,
		Players:   round.PlayerIDs,
		Ledger:    ledger,
		Totals:    totals,
	}

	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	if err := l.Save(ctx, record); err != nil {
		log.WithError(err).Error("could not save round")
		return
	}

	log.WithField("id", record.ID).Info("round saved")
}
