package board

import (
	"fmt"
	"slices"
)

// Area names one of the addressable zones on the board.
type Area int

const (
	PlayerHand Area = iota
	PlayerField
	OpponentHand
	OpponentField
)

// Areas lists every addressable zone in iteration order.
var Areas = []Area{PlayerHand, PlayerField, OpponentHand, OpponentField}

func (a Area) String() string {
	switch a {
	case PlayerHand:
		return "player-hand"
	case PlayerField:
		return "player-field"
	case OpponentHand:
		return "opponent-hand"
	case OpponentField:
		return "opponent-field"
	}
	return fmt.Sprintf("area(%d)", int(a))
}

// ZoneRef names "the card at Index of Area". It is a name, not a handle:
// resolve it against the GameState on every use, and recompute it after any
// Take or Insert on the same zone.
type ZoneRef struct {
	Area  Area
	Index int
}

func (r ZoneRef) String() string {
	return fmt.Sprintf("%s[%d]", r.Area, r.Index)
}

// Zone is an ordered run of cards. Index 0 is laid out leftmost.
type Zone []*CardInstance

func (z Zone) Get(i int) (*CardInstance, bool) {
	if i < 0 || i >= len(z) {
		return nil, false
	}
	return z[i], true
}

// TryRemove removes the card at i, shifting later cards down by one.
func (z *Zone) TryRemove(i int) (*CardInstance, bool) {
	c, ok := z.Get(i)
	if !ok {
		return nil, false
	}
	*z = slices.Delete(*z, i, i+1)
	return c, true
}

// PushOrInsert inserts c at i. i == len appends. Anything past the end is
// rejected and leaves the zone untouched.
func (z *Zone) PushOrInsert(i int, c *CardInstance) bool {
	if i < 0 || i > len(*z) {
		return false
	}
	*z = slices.Insert(*z, i, c)
	return true
}
