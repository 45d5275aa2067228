package lobby

import (
	"sync"

	"wolfgoatpig-server/pkg/playable"
)

// Round is an active round under the lobby's care. The engine is not safe for
// concurrent use, so every call into the game goes through the round's mutex.
type Round struct {
	UUID      string
	ShareCode string
	Name      string
	Game      string
	PlayerIDs []int64
	Names     map[int64]string

	mu   sync.Mutex
	game playable.Playable

	logMu  sync.RWMutex
	log    []*playable.LogMessage
	logCap int

	done      chan struct{}
	closeOnce sync.Once
}

// Info is the shareable description of a round
type Info struct {
	UUID      string           `json:"uuid"`
	ShareCode string           `json:"shareCode"`
	Name      string           `json:"name"`
	Game      string           `json:"game"`
	Players   []int64          `json:"players"`
	Names     map[int64]string `json:"names"`
}

// Info returns the round's shareable description
func (r *Round) Info() Info {
	return Info{
		UUID:      r.UUID,
		ShareCode: r.ShareCode,
		Name:      r.Name,
		Game:      r.Game,
		Players:   r.PlayerIDs,
		Names:     r.Names,
	}
}

// Action dispatches a player action to the game
func (r *Round) Action(playerID int64, payload *playable.PayloadIn) (*playable.Response, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	response, _, err := r.game.Action(playerID, payload)
	return response, err
}

// PlayerState returns the game state for the given player
func (r *Round) PlayerState(playerID int64) (*playable.Response, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.game.GetPlayerState(playerID)
}

// IsOver returns true once the game has ended
func (r *Round) IsOver() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, over := r.game.GetEndOfGameDetails()
	return over
}

// LogMessages returns a window of the round's buffered log, oldest first
func (r *Round) LogMessages(start, rows int) []*playable.LogMessage {
	r.logMu.RLock()
	defer r.logMu.RUnlock()

	if start >= len(r.log) {
		return []*playable.LogMessage{}
	}

	end := start + rows
	if end > len(r.log) {
		end = len(r.log)
	}

	return append([]*playable.LogMessage{}, r.log[start:end]...)
}

func (r *Round) appendLog(messages ...*playable.LogMessage) {
	r.logMu.Lock()
	defer r.logMu.Unlock()

	r.log = append(r.log, messages...)
	if over := len(r.log) - r.logCap; over > 0 {
		r.log = append([]*playable.LogMessage{}, r.log[over:]...)
	}
}

// drainLog empties any buffered log messages without blocking
func (r *Round) drainLog() {
	for {
		select {
		case messages := <-r.game.LogChan():
			r.appendLog(messages...)
		default:
			return
		}
	}
}
