package routing

import (
	"fmt"
	"math/rand"
	"time"
)

// colorPicker hands out random display colors for the alternatives of one
// fetch. Each fetch gets its own seed. Colors within a result set are
// redrawn on collision a few times; a residual collision is cosmetic and
// tolerated.
type colorPicker struct {
	rng  *rand.Rand
	seen map[string]struct{}
}

func newColorPicker() *colorPicker {
	return &colorPicker{
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
		seen: map[string]struct{}{},
	}
}

func (p *colorPicker) next() string {
	color := p.draw()
	for attempt := 0; attempt < 8; attempt++ {
		if _, dup := p.seen[color]; !dup {
			break
		}
		color = p.draw()
	}
	p.seen[color] = struct{}{}
	return color
}

func (p *colorPicker) draw() string {
	return fmt.Sprintf("#%02x%02x%02x", p.rng.Intn(256), p.rng.Intn(256), p.rng.Intn(256))
}
