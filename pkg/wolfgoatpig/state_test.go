package wolfgoatpig

import (
	"testing"

	"wolfgoatpig-server/pkg/snapshot"
)

func TestGameState_snapshot(t *testing.T) {
	g := testGame(t, DefaultOptions())
	snapshot.ValidateSnapshot(t, g.getGameState(), 0)
}
