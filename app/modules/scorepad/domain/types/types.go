// Package scorepadtypes holds the Doppelkopf scoring rules shared by the
// scorepad service and its HTTP views: match validation and scoring,
// dealer rotation, the points/bidding slider pair, winner selection and
// the running score board.
package scorepadtypes

import (
	"errors"
	"fmt"
)

// Team is one of the two parties of a deal.
type Team string

const (
	TeamRe     Team = "re"
	TeamContra Team = "contra"
)

// Teams lists the parties in display order.
var Teams = []Team{TeamRe, TeamContra}

// Valid reports whether t names a party.
func (t Team) Valid() bool {
	return t == TeamRe || t == TeamContra
}

const (
	MinPlayers  = 4
	MaxPlayers  = 5
	WinnerCount = 2

	MaxSpecialPoints     = 5
	DefaultSpecialPoints = 0
)

var (
	// ErrInvalidMatch is the parent of every match validation failure.
	ErrInvalidMatch = errors.New("invalid match")

	ErrInvalidWinners       = fmt.Errorf("%w: winners", ErrInvalidMatch)
	ErrInvalidTeam          = fmt.Errorf("%w: team", ErrInvalidMatch)
	ErrInvalidBids          = fmt.Errorf("%w: bids", ErrInvalidMatch)
	ErrInvalidPoints        = fmt.Errorf("%w: points", ErrInvalidMatch)
	ErrPointsAboveBidding   = fmt.Errorf("%w: points exceed bidding", ErrInvalidMatch)
	ErrInvalidSpecialPoints = fmt.Errorf("%w: special points", ErrInvalidMatch)

	// ErrInvalidSlot indicates a winner slot other than 0 or 1.
	ErrInvalidSlot = errors.New("invalid winner slot")
	// ErrUnknownPlayer indicates a player who is not seated at the scorepad.
	ErrUnknownPlayer = errors.New("player is not seated at this scorepad")
	// ErrPlayerDisabled indicates a player already chosen in the other slot.
	ErrPlayerDisabled = errors.New("player is already selected as the other winner")
)

// SpecialPointOptions returns the selectable special points, -5 through 5.
func SpecialPointOptions() []int {
	out := make([]int, 0, 2*MaxSpecialPoints+1)
	for i := -MaxSpecialPoints; i <= MaxSpecialPoints; i++ {
		out = append(out, i)
	}
	return out
}
