package wolfgoatpig

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"wolfgoatpig-server/pkg/playable"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Phase is the current phase of a hole
type Phase int

const (
	// PhaseDeclaration is when the captain decides team formation
	PhaseDeclaration Phase = iota
	// PhasePlay is when the wager can escalate and strokes are recorded
	PhasePlay
	// PhaseHoleEnd is after a hole has been committed, before the next starts
	PhaseHoleEnd
	// PhaseGameOver is when the round has ended
	PhaseGameOver
)

// HoleResult is the committed result of a single hole
type HoleResult struct {
	Hole           Hole            `json:"hole"`
	Assignment     *TeamAssignment `json:"assignment"`
	Wager          *WagerState     `json:"wager"`
	Outcome        *Outcome        `json:"outcome"`
	Delta          PointsDelta     `json:"delta"`
	CarryOut       CarryOver       `json:"carryOut"`
	ForfeitedUnits int             `json:"forfeitedUnits,omitempty"`
}

// Game is a round of Wolf Goat Pig
type Game struct {
	options         Options
	participants    []*Participant // base tee order
	idToParticipant map[int64]*Participant
	holes           []Hole
	rotation        *rotation
	ledger          *RoundLedger
	carry           CarryOver

	// current hole
	hole           Hole
	captain        *Participant
	teeOrder       []*Participant
	formation      *formation
	wager          *WagerState
	negotiation    *negotiation
	strokes        map[int64]int
	pendingStrokes map[int64]bool
	requestedStake int
	optionArmed    bool
	lastResult     *HoleResult

	phase Phase
	done  bool

	logger  logrus.FieldLogger
	logChan chan []*playable.LogMessage

	pendingDealerAction *pendingDealerAction
}

// NewGame returns a new Wolf Goat Pig round. playerIDs must be in tee order
// for the first hole; any shuffle happens beforehand.
func NewGame(logger logrus.FieldLogger, playerIDs []int64, opts Options) (*Game, error) {
	if len(playerIDs) != roundPlayers {
		return nil, PlayerCountError(len(playerIDs))
	}

	opts = opts.withDefaults()

	participants := make([]*Participant, len(playerIDs))
	idToParticipant := make(map[int64]*Participant)
	for i, pid := range playerIDs {
		p := NewParticipant(pid, i, opts.Handicaps[pid])
		participants[i] = p
		idToParticipant[pid] = p
	}

	if len(idToParticipant) != roundPlayers {
		return nil, errors.New("player IDs must be unique")
	}

	g := &Game{
		options:         opts,
		participants:    participants,
		idToParticipant: idToParticipant,
		holes:           holesForRound(opts),
		rotation:        newRotation(participants, opts),
		ledger:          NewRoundLedger(playerIDs),
		logger:          logger,
		logChan:         make(chan []*playable.LogMessage, 256),
	}

	g.sendLogMessages(newLogMessage(0, "New round of Wolf Goat Pig started for %d quarters a hole", opts.BaseWager))
	g.startHole()

	return g, nil
}

// Name returns "wolf-goat-pig"
func (g *Game) Name() string {
	return "wolf-goat-pig"
}

// LogChan returns a channel for sending log messages
func (g *Game) LogChan() <-chan []*playable.LogMessage {
	return g.logChan
}

// Interval determines how often Tick() should be called
func (g *Game) Interval() time.Duration {
	return time.Second
}

// Tick will check the state of the game and possibly move the state along
func (g *Game) Tick() (bool, error) {
	if g.done {
		return false, nil
	}

	if g.pendingDealerAction != nil {
		if time.Now().After(g.pendingDealerAction.ExecuteAfter) {
			action := g.pendingDealerAction.Action
			g.pendingDealerAction = nil

			switch action {
			case dealerActionNextHole:
				g.startHole()
			case dealerActionEndGame:
				g.phase = PhaseGameOver
				g.done = true
				g.sendLogMessages(newLogMessage(0, "The round ends"))
			default:
				panic(fmt.Sprintf("unknown dealer action: %d", action))
			}

			return true, nil
		}
	}

	return false, nil
}

// Action performs an action
func (g *Game) Action(playerID int64, message *playable.PayloadIn) (playerResponse *playable.Response, updateState bool, err error) {
	if g.done {
		return nil, false, ErrGameIsOver
	}

	player, ok := g.idToParticipant[playerID]
	if !ok {
		return nil, false, ErrPlayerNotFound
	}

	switch message.Action {
	case "declareSolo":
		err = g.declareSolo(player)
	case "choosePartner":
		partner, ok := message.AdditionalData.GetInt("partner")
		if !ok {
			return nil, false, errors.New("missing 'partner' parameter")
		}
		err = g.choosePartner(player, int64(partner))
	case "float":
		err = g.invokeFloat(player)
	case "setStakes":
		stakes, ok := message.AdditionalData.GetInt("stakes")
		if !ok {
			return nil, false, errors.New("missing 'stakes' parameter")
		}
		err = g.setStakes(player, stakes)
	case "double", "redouble":
		err = g.offerDouble(player)
	case "decline":
		err = g.declineDouble(player)
	case "declineOption":
		err = g.declineOption(player)
	case "raiseStake":
		stake, ok := message.AdditionalData.GetInt("stake")
		if !ok {
			return nil, false, errors.New("missing 'stake' parameter")
		}
		err = g.raiseStake(player, stake)
	case "recordStrokes":
		strokes, ok := message.AdditionalData.GetInt("strokes")
		if !ok {
			return nil, false, errors.New("missing 'strokes' parameter")
		}
		err = g.recordStrokes(player, strokes)
	case "recordScores":
		scores, ok := message.AdditionalData.GetIntMap("scores")
		if !ok {
			return nil, false, errors.New("missing 'scores' parameter")
		}
		err = g.recordScores(scores)
	default:
		return nil, false, fmt.Errorf("unknown action: %s", message.Action)
	}

	if err != nil {
		return nil, false, err
	}

	return playable.OK(), true, nil
}

// startHole advances the rotation and resets the per-hole state
func (g *Game) startHole() {
	g.hole = g.holes[g.ledger.HolesCommitted()]

	totals := g.ledger.RunningTotals()
	g.captain, g.teeOrder = g.rotation.advance(g.hole, totals)
	g.formation = newFormation(g.captain, g.teeOrder[1:])
	g.wager = nil
	g.negotiation = nil
	g.requestedStake = 0
	g.optionArmed = g.isStrictlyTrailing(g.captain, totals)
	g.strokes = make(map[int64]int)
	g.pendingStrokes = make(map[int64]bool)
	for _, p := range g.participants {
		g.pendingStrokes[p.PlayerID] = true
	}
	g.phase = PhaseDeclaration

	messages := []*playable.LogMessage{
		newLogMessage(g.captain.PlayerID, "Hole %d (par %d): {} has the captaincy", g.hole.Number, g.hole.Par),
	}

	if g.hole.SpecialPhase {
		messages = append(messages, newLogMessage(g.captain.PlayerID, "{} is furthest down and chooses their spot"))
	}

	if g.hole.DoublePoints {
		messages = append(messages, newLogMessage(0, "Hole %d plays for double points", g.hole.Number))
	}

	if g.carry.Units > 0 {
		messages = append(messages, newLogMessage(0, "%d quarters carry over from hole %d", g.carry.Units, g.carry.FromHole))
	}

	if g.optionArmed {
		messages = append(messages, newLogMessage(g.captain.PlayerID, "{} holds the option"))
	}

	g.sendLogMessages(messages...)
}

// isStrictlyTrailing returns true if the player's total is strictly worse
// than every other player's
func (g *Game) isStrictlyTrailing(player *Participant, totals map[int64]Amount) bool {
	for _, p := range g.participants {
		if p == player {
			continue
		}

		if totals[player.PlayerID].Cmp(totals[p.PlayerID]) >= 0 {
			return false
		}
	}

	return true
}

func (g *Game) requireCaptain(player *Participant) error {
	if player != g.captain {
		return ErrNotCaptain
	}

	return nil
}

func (g *Game) declareSolo(player *Participant) error {
	if err := g.requireCaptain(player); err != nil {
		return err
	}

	assignment, err := g.formation.declareSolo()
	if err != nil {
		return err
	}

	if assignment.Duncan {
		g.sendLogMessages(newLogMessage(player.PlayerID, "{} goes pig before seeing a shot (the Duncan)"))
	} else {
		g.sendLogMessages(newLogMessage(player.PlayerID, "{} goes pig"))
	}

	return g.onDeclared()
}

func (g *Game) choosePartner(player *Participant, partnerID int64) error {
	if err := g.requireCaptain(player); err != nil {
		return err
	}

	assignment, err := g.formation.declarePartnership(partnerID)
	if err != nil {
		return err
	}

	g.sendLogMessages(newLogMessageWithPlayers([]int64{assignment.Captain, assignment.Partner}, "{} take on the field"))
	return g.onDeclared()
}

func (g *Game) invokeFloat(player *Participant) error {
	if err := g.requireCaptain(player); err != nil {
		return err
	}

	if _, err := g.formation.invokeFloat(); err != nil {
		return err
	}

	g.sendLogMessages(newLogMessage(player.PlayerID, "{} floats the decision"))
	return nil
}

func (g *Game) setStakes(player *Participant, stakes int) error {
	if err := g.requireCaptain(player); err != nil {
		return err
	}

	if g.wager != nil {
		if err := g.wager.applyCustomStake(g.hole, stakes); err != nil {
			return err
		}
	} else {
		if !g.hole.SpecialPhase {
			return ErrStakeOutsideSpecialPhase
		}

		if !validStakes[stakes] {
			return ErrInvalidStakeValue
		}

		g.requestedStake = stakes
	}

	g.sendLogMessages(newLogMessage(player.PlayerID, "{} sets the stakes to %d quarters", stakes))
	return nil
}

// onDeclared builds the wager for the declared teams and opens the doubling
// negotiation. If strokes were already observed the wager locks immediately.
func (g *Game) onDeclared() error {
	assignment := g.formation.assignment
	g.wager = computeWager(g.hole, assignment, g.options)

	if g.requestedStake > 0 {
		if err := g.wager.applyCustomStake(g.hole, g.requestedStake); err != nil {
			return err
		}
	}

	g.negotiation = newNegotiation(g.wager, g.optionArmed)
	g.phase = PhasePlay

	if len(g.strokes) > 0 {
		g.negotiation.lock()
	}

	g.sendLogMessages(newLogMessage(0, "The hole plays for %d quarters", g.wager.Units))
	return g.maybeResolve()
}

func (g *Game) sideOf(player *Participant) (TeamSide, error) {
	assignment := g.formation.assignment
	if assignment == nil || g.formation.state != FormationDeclared {
		return SideNone, ErrDeclarationRequired
	}

	if assignment.onCaptainTeam(player.PlayerID) {
		return SideCaptain, nil
	}

	return SideOpponents, nil
}

func (g *Game) offerDouble(player *Participant) error {
	if g.negotiation == nil {
		return ErrDeclarationRequired
	}

	side, err := g.sideOf(player)
	if err != nil {
		return err
	}

	if err := g.negotiation.offerDouble(side); err != nil {
		return err
	}

	g.sendLogMessages(newLogMessage(player.PlayerID, "{} doubles; the hole now plays for %d quarters", g.wager.Units))
	return nil
}

func (g *Game) declineDouble(player *Participant) error {
	if g.negotiation == nil {
		return ErrDeclarationRequired
	}

	side, err := g.sideOf(player)
	if err != nil {
		return err
	}

	if err := g.negotiation.decline(side); err != nil {
		return err
	}

	g.sendLogMessages(newLogMessage(player.PlayerID, "{} declines; the wager stands at %d quarters", g.wager.Units))
	return nil
}

func (g *Game) declineOption(player *Participant) error {
	if err := g.requireCaptain(player); err != nil {
		return err
	}

	if g.negotiation == nil {
		return ErrDeclarationRequired
	}

	if err := g.negotiation.declineOption(); err != nil {
		return err
	}

	g.sendLogMessages(newLogMessage(player.PlayerID, "{} declines the option"))
	return nil
}

func (g *Game) raiseStake(player *Participant, stake int) error {
	if g.wager == nil {
		return ErrDeclarationRequired
	}

	if err := g.wager.applyPlayerStake(player.PlayerID, stake); err != nil {
		return err
	}

	g.sendLogMessages(newLogMessage(player.PlayerID, "{} raises their personal stake to %d quarters", stake))
	return nil
}

func (g *Game) recordStrokes(player *Participant, strokes int) error {
	if g.phase != PhaseDeclaration && g.phase != PhasePlay {
		return ErrHoleAlreadyCommitted
	}

	if strokes <= 0 {
		return ErrInvalidStrokes
	}

	if !g.pendingStrokes[player.PlayerID] {
		return ErrStrokesAlreadyRecorded
	}

	g.strokes[player.PlayerID] = strokes
	delete(g.pendingStrokes, player.PlayerID)
	g.formation.observedStroke()

	if g.negotiation != nil {
		g.negotiation.lock()
	}

	g.sendLogMessages(newLogMessage(player.PlayerID, "{} carded a %d", strokes))
	return g.maybeResolve()
}

// recordScores records strokes for multiple players at once, for a
// scorekeeper entering the group's card
func (g *Game) recordScores(scores map[int64]int) error {
	if g.phase != PhaseDeclaration && g.phase != PhasePlay {
		return ErrHoleAlreadyCommitted
	}

	// validate up front so a bad card leaves the hole untouched
	ids := make([]int64, 0, len(scores))
	for id, strokes := range scores {
		if _, ok := g.idToParticipant[id]; !ok {
			return ErrPlayerNotFound
		}

		if strokes <= 0 {
			return ErrInvalidStrokes
		}

		if !g.pendingStrokes[id] {
			return ErrStrokesAlreadyRecorded
		}

		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		if err := g.recordStrokes(g.idToParticipant[id], scores[id]); err != nil {
			return err
		}
	}

	return nil
}

// maybeResolve commits the hole once every stroke is in and teams are
// declared. On the special final holes an undeclared captain is forced into
// a partnership with the next-worst player rather than holding up the hole.
func (g *Game) maybeResolve() error {
	if len(g.pendingStrokes) > 0 {
		return nil
	}

	if g.formation.state != FormationDeclared {
		if !g.hole.SpecialPhase {
			g.sendLogMessages(newLogMessage(g.captain.PlayerID, "Waiting on {} to declare teams"))
			return nil
		}

		partner := g.defaultPartner()
		assignment := g.formation.forcePartnership(partner.PlayerID)
		g.sendLogMessages(newLogMessageWithPlayers([]int64{assignment.Captain, assignment.Partner},
			"No declaration was made: {} are partnered by default"))

		// onDeclared locks the wager (strokes are in) and resolves the hole
		return g.onDeclared()
	}

	return g.resolveHole()
}

// defaultPartner returns the non-captain player with the worst running
// total, ties broken by tee-order index
func (g *Game) defaultPartner() *Participant {
	totals := g.ledger.RunningTotals()

	var worst *Participant
	for _, p := range g.participants {
		if p == g.captain {
			continue
		}

		if worst == nil || totals[p.PlayerID].Cmp(totals[worst.PlayerID]) < 0 {
			worst = p
		}
	}

	return worst
}

func (g *Game) resolveHole() error {
	g.negotiation.lock()

	assignment := g.formation.assignment
	outcome, err := resolveScores(ScoreSet{Strokes: g.strokes}, assignment, g.options)
	if err != nil {
		return err
	}

	dist, err := distribute(outcome, g.wager, assignment, g.carry, g.hole, g.options)
	if err != nil {
		// a zero-sum violation is a rule-composition bug. Refuse to commit
		// the hole rather than write a corrupt delta.
		g.logger.WithError(err).Error("could not distribute quarters")
		return err
	}

	entry := LedgerEntry{
		Hole:           g.hole,
		Assignment:     assignment,
		Wager:          g.wager,
		Delta:          dist.delta,
		ForfeitedUnits: dist.forfeitedUnits,
	}

	if err := g.ledger.Commit(entry); err != nil {
		g.logger.WithError(err).Error("could not commit hole")
		return err
	}

	g.carry = dist.carryOut
	g.lastResult = &HoleResult{
		Hole:           g.hole,
		Assignment:     assignment,
		Wager:          g.wager,
		Outcome:        outcome,
		Delta:          dist.delta,
		CarryOut:       dist.carryOut,
		ForfeitedUnits: dist.forfeitedUnits,
	}

	g.logHoleResult(outcome, dist)
	g.phase = PhaseHoleEnd

	action := dealerActionNextHole
	if g.ledger.HolesCommitted() == len(g.holes) {
		action = dealerActionEndGame
	}

	g.pendingDealerAction = &pendingDealerAction{
		Action:       action,
		ExecuteAfter: time.Now().Add(time.Second * 2),
	}

	return nil
}

func (g *Game) logHoleResult(outcome *Outcome, dist *distribution) {
	assignment := g.formation.assignment

	switch outcome.Result {
	case CaptainWins:
		g.sendLogMessages(newLogMessageWithPlayers(assignment.captainTeam(),
			"{} win the hole, %d to %d", outcome.CaptainBest, outcome.OpponentsBest))
	case OpponentsWin:
		g.sendLogMessages(newLogMessageWithPlayers(assignment.Opponents,
			"{} win the hole, %d to %d", outcome.OpponentsBest, outcome.CaptainBest))
	case Tie:
		if dist.forfeitedUnits > 0 {
			g.sendLogMessages(newLogMessage(0, "The hole is halved; %d carried quarters are forfeited", dist.forfeitedUnits))
		} else {
			g.sendLogMessages(newLogMessage(0, "The hole is halved; %d quarters carry over", dist.carryOut.Units))
		}
	}

	if outcome.Outlier > 0 && outcome.Result != Tie {
		g.sendLogMessages(newLogMessage(outcome.Outlier, "{} blew up and absorbs the bigger share"))
	}
}

// GetEndOfGameDetails returns details at the end of the round
func (g *Game) GetEndOfGameDetails() (gameOverDetails *playable.GameOverDetails, isGameOver bool) {
	if !g.done {
		return nil, false
	}

	adjustments := make(map[int64]string)
	for id, total := range g.ledger.RunningTotals() {
		adjustments[id] = total.String()
	}

	return &playable.GameOverDetails{
		BalanceAdjustments: adjustments,
		Log:                g.ledger.Entries(),
	}, true
}

// Ledger exposes the round's committed ledger for read-only queries
func (g *Game) Ledger() *RoundLedger {
	return g.ledger
}

func (g *Game) sendLogMessages(msg ...*playable.LogMessage) {
	if g.logChan != nil {
		g.logChan <- msg
	}
}

func newLogMessage(playerID int64, format string, a ...interface{}) *playable.LogMessage {
	var playerIDs []int64
	if playerID > 0 {
		playerIDs = []int64{playerID}
	}

	return &playable.LogMessage{
		UUID:      uuid.New().String(),
		PlayerIDs: playerIDs,
		Message:   fmt.Sprintf(format, a...),
		Time:      time.Now(),
	}
}

func newLogMessageWithPlayers(playerIDs []int64, format string, a ...interface{}) *playable.LogMessage {
	return &playable.LogMessage{
		UUID:      uuid.New().String(),
		PlayerIDs: playerIDs,
		Message:   fmt.Sprintf(format, a...),
		Time:      time.Now(),
	}
}
