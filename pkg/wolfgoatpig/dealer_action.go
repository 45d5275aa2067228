package wolfgoatpig

import "time"

type dealerAction int

const (
	dealerActionNextHole dealerAction = iota
	dealerActionEndGame
)

type pendingDealerAction struct {
	Action       dealerAction
	ExecuteAfter time.Time
}
