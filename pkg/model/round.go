package model

import (
	"context"
	"encoding/json"
	"time"

	"wolfgoatpig-server/pkg/db"

	"github.com/lib/pq"
)

const roundColumns = `
rounds.id,
rounds.uuid,
rounds.share_code,
rounds.game,
rounds.players,
rounds.ledger,
rounds.totals,
rounds.created`

// Round is a record in the `rounds` table. A round is written once, after it
// finishes; the ledger and totals are stored as JSON.
type Round struct {
	ID        int64           `json:"id"`
	UUID      string          `json:"uuid"`
	ShareCode string          `json:"shareCode"`
	Game      string          `json:"game"`
	Players   []int64         `json:"players"`
	Ledger    json.RawMessage `json:"ledger"`
	Totals    json.RawMessage `json:"totals"`
	Created   time.Time       `json:"created"`
}

func getRoundByRow(row db.Scanner) (*Round, error) {
	var round Round
	var players pq.Int64Array
	if err := row.Scan(&round.ID, &round.UUID, &round.ShareCode, &round.Game, &players, &round.Ledger, &round.Totals, &round.Created); err != nil {
		return nil, err
	}

	round.Players = players
	return &round, nil
}

// SaveRound persists a finished round
func SaveRound(ctx context.Context, round *Round) error {
	const query = `
INSERT INTO rounds (uuid, share_code, game, players, ledger, totals)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, created`

	row := db.Instance().QueryRowContext(ctx, query,
		round.UUID, round.ShareCode, round.Game, pq.Int64Array(round.Players), round.Ledger, round.Totals)
	return row.Scan(&round.ID, &round.Created)
}

// GetRoundByUUID returns a finished round by its UUID
func GetRoundByUUID(ctx context.Context, uuid string) (*Round, error) {
	const query = `
SELECT ` + roundColumns + `
FROM rounds
WHERE uuid = $1`

	row := db.Instance().QueryRowContext(ctx, query, uuid)
	return getRoundByRow(row)
}

// GetRoundsByPlayerID returns the finished rounds a player took part in,
// newest first
func GetRoundsByPlayerID(ctx context.Context, playerID int64, start int64, rows int) ([]*Round, error) {
	const query = `
SELECT ` + roundColumns + `
FROM rounds
WHERE players @> $1
ORDER BY created DESC
OFFSET $2 LIMIT $3`

	res, err := db.Instance().QueryContext(ctx, query, pq.Int64Array{playerID}, start, rows)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	rounds := make([]*Round, 0)
	for res.Next() {
		round, err := getRoundByRow(res)
		if err != nil {
			return nil, err
		}

		rounds = append(rounds, round)
	}

	return rounds, res.Err()
}
