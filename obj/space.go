package obj

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/logastroids/common"
)

// Wrap teleports a position that crossed a screen edge to the opposite one.
func Wrap(p cp.Vector) cp.Vector {
	if p.X < 0 {
		p.X = common.BaseWidth
	} else if p.X > common.BaseWidth {
		p.X = 0
	}
	if p.Y < 0 {
		p.Y = common.BaseHeight
	} else if p.Y > common.BaseHeight {
		p.Y = 0
	}
	return p
}
