package wolfgoatpig

import (
	"wolfgoatpig-server/pkg/playable"
)

// GameState is the overall round state
// This is safe for all players to see
type GameState struct {
	Participants []*GameStateParticipant `json:"participants"`
	Hole         Hole                    `json:"hole"`
	Phase        string                  `json:"phase"`
	Captain      int64                   `json:"captain"`
	TeeOrder     []int64                 `json:"teeOrder"`

	Assignment *TeamAssignment `json:"assignment,omitempty"`
	Wager      *WagerState     `json:"wager,omitempty"`
	CarryOver  CarryOver       `json:"carryOver"`

	// OptionPending is true while the trailing captain's automatic double is
	// armed and undeclined
	OptionPending bool `json:"optionPending"`

	// LastResult is the previous committed hole, if any
	LastResult *HoleResult `json:"lastResult,omitempty"`

	HolesCommitted int  `json:"holesCommitted"`
	IsGameOver     bool `json:"isGameOver"`

	// ZeroSum reports the ledger's invariant check
	ZeroSum bool `json:"zeroSum"`
}

// GameStateParticipant is the state of an individual participant
type GameStateParticipant struct {
	PlayerID     int64  `json:"playerId"`
	TeeOrder     int    `json:"teeOrder"`
	Handicap     int    `json:"handicap"`
	RunningTotal Amount `json:"runningTotal"`
	FloatUsed    bool   `json:"floatUsed"`

	// Strokes is the player's recorded strokes for the current hole, or 0
	Strokes int `json:"strokes,omitempty"`
}

// Response is the response format for this game
type Response struct {
	GameState *GameState `json:"gameState"`

	RunningTotal Amount `json:"runningTotal"`

	// CanDeclare is true if the player is the captain and teams are undeclared
	CanDeclare bool `json:"canDeclare"`
	// CanFloat is true if the player may still defer the declaration
	CanFloat bool `json:"canFloat"`
	// CanDouble is true if the player's side may escalate the wager
	CanDouble bool `json:"canDouble"`
	// CanDeclineOption is true if the player holds an undeclined option
	CanDeclineOption bool `json:"canDeclineOption"`
	// CanRecordStrokes is true if the player has not carded this hole yet
	CanRecordStrokes bool `json:"canRecordStrokes"`
}

func (g *Game) phaseName() string {
	switch g.phase {
	case PhaseDeclaration:
		return "declaration"
	case PhasePlay:
		return "play"
	case PhaseHoleEnd:
		return "holeEnd"
	case PhaseGameOver:
		return "gameOver"
	default:
		return "unknown"
	}
}

func (g *Game) getGameState() *GameState {
	totals := g.ledger.RunningTotals()

	participants := make([]*GameStateParticipant, len(g.participants))
	for i, p := range g.participants {
		participants[i] = &GameStateParticipant{
			PlayerID:     p.PlayerID,
			TeeOrder:     p.TeeOrder,
			Handicap:     p.Handicap,
			RunningTotal: totals[p.PlayerID],
			FloatUsed:    p.floatUsed,
			Strokes:      g.strokes[p.PlayerID],
		}
	}

	teeOrder := make([]int64, len(g.teeOrder))
	for i, p := range g.teeOrder {
		teeOrder[i] = p.PlayerID
	}

	state := &GameState{
		Participants:   participants,
		Hole:           g.hole,
		Phase:          g.phaseName(),
		Captain:        g.captain.PlayerID,
		TeeOrder:       teeOrder,
		Wager:          g.wager,
		CarryOver:      g.carry,
		LastResult:     g.lastResult,
		HolesCommitted: g.ledger.HolesCommitted(),
		IsGameOver:     g.done,
		ZeroSum:        g.ledger.ZeroSumCheck(),
	}

	if g.formation != nil && g.formation.assignment != nil {
		state.Assignment = g.formation.assignment
	}

	if g.negotiation != nil {
		state.OptionPending = g.negotiation.optionPending() && !g.wager.Locked
	} else {
		state.OptionPending = g.optionArmed
	}

	return state
}

// GetPlayerState returns the state for the given player
func (g *Game) GetPlayerState(playerID int64) (*playable.Response, error) {
	state := g.getGameState()

	response := &Response{
		GameState:    state,
		RunningTotal: g.ledger.RunningTotal(playerID),
	}

	if player, ok := g.idToParticipant[playerID]; ok {
		inPlay := g.phase == PhaseDeclaration || g.phase == PhasePlay

		isCaptain := player == g.captain
		undeclared := g.formation != nil && g.formation.state != FormationDeclared

		response.CanDeclare = inPlay && isCaptain && undeclared
		response.CanFloat = inPlay && isCaptain && g.formation.state == FormationAwaiting && !player.floatUsed
		response.CanDouble = g.negotiation != nil && !g.wager.Locked && !g.negotiation.closed
		response.CanDeclineOption = isCaptain && g.negotiation != nil && g.negotiation.optionPending() && !g.wager.Locked
		response.CanRecordStrokes = inPlay && g.pendingStrokes[playerID]
	}

	return &playable.Response{
		Key:   "game",
		Value: g.Name(),
		Data:  response,
	}, nil
}
