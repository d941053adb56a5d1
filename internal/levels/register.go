package levels

import (
	"github.com/michelv/squish/internal/game"
	"github.com/michelv/squish/internal/registry"
)

func init() {
	registry.Register("squish", func() registry.Game {
		return game.New(Campaign())
	})
	registry.Register("squish_endless", func() registry.Game {
		return game.NewEndless()
	})
}
