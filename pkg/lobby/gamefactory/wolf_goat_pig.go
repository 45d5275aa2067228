package gamefactory

import (
	"fmt"

	"wolfgoatpig-server/internal/rng"
	"wolfgoatpig-server/pkg/playable"
	"wolfgoatpig-server/pkg/wolfgoatpig"

	"github.com/sirupsen/logrus"
)

type wolfGoatPigFactory struct{}

func (w wolfGoatPigFactory) Details(additionalData playable.AdditionalData) (string, int, error) {
	opts := getWolfGoatPigOptions(additionalData)
	return fmt.Sprintf("Wolf Goat Pig (%d-quarter base)", opts.BaseWager), opts.BaseWager, nil
}

func (w wolfGoatPigFactory) CreateGame(logger logrus.FieldLogger, playerIDs []int64, additionalData playable.AdditionalData) (playable.Playable, error) {
	opts := getWolfGoatPigOptions(additionalData)

	ids := append([]int64{}, playerIDs...)
	if shuffle, ok := additionalData.GetBool("shuffleTeeOrder"); !ok || shuffle {
		rng.ShuffleInt64s(rng.Crypto{}, ids)
	}

	return wolfgoatpig.NewGame(logger, ids, opts)
}

func getWolfGoatPigOptions(additionalData playable.AdditionalData) wolfgoatpig.Options {
	opts := wolfgoatpig.DefaultOptions()

	if baseWager, ok := additionalData.GetInt("baseWager"); ok && baseWager > 0 {
		opts.BaseWager = baseWager
	}

	if carryLimit, ok := additionalData.GetInt("carryLimit"); ok && carryLimit > 0 {
		opts.CarryLimit = carryLimit
	}

	if holes, ok := additionalData.GetInt("holes"); ok && holes == 9 {
		// a nine-hole round compresses the double window and the final phase
		opts.Holes = 9
		opts.DoubleWindowStart = 7
		opts.DoubleWindowEnd = 8
		opts.SpecialPhaseStart = 9
	}

	return opts
}
