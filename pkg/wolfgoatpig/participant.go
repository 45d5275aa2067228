package wolfgoatpig

// Participant is an individual player in the round
type Participant struct {
	PlayerID int64
	TeeOrder int
	Handicap int

	floatUsed bool
}

// NewParticipant returns a new participant
func NewParticipant(playerID int64, teeOrder, handicap int) *Participant {
	return &Participant{
		PlayerID: playerID,
		TeeOrder: teeOrder,
		Handicap: handicap,
	}
}

// UsedFloat returns true if the participant has already floated this round
func (p *Participant) UsedFloat() bool {
	return p.floatUsed
}
