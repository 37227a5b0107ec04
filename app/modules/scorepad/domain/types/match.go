package scorepadtypes

import "fmt"

// MatchInput is a match as entered by the scorer.
type MatchInput struct {
	Winners       []string `json:"winners"`
	Team          Team     `json:"team"`
	Bids          []Team   `json:"bids"`
	Points        int      `json:"points"`
	Bidding       int      `json:"bidding"`
	SpecialPoints int      `json:"specialPoints"`
}

// Validate checks m against the players seated at the scorepad.
func (m MatchInput) Validate(seated []string) error {
	if len(m.Winners) != WinnerCount {
		return fmt.Errorf("%w: want %d, got %d", ErrInvalidWinners, WinnerCount, len(m.Winners))
	}
	sel := NewWinnerSelection(seated)
	for slot, id := range m.Winners {
		if err := sel.Select(slot, id); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidWinners, err)
		}
	}

	if !m.Team.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidTeam, m.Team)
	}

	seen := make(map[Team]bool, len(m.Bids))
	for _, bid := range m.Bids {
		if !bid.Valid() {
			return fmt.Errorf("%w: %q", ErrInvalidBids, bid)
		}
		if seen[bid] {
			return fmt.Errorf("%w: %q announced twice", ErrInvalidBids, bid)
		}
		seen[bid] = true
	}

	if !OnSliderStep(m.Points) {
		return fmt.Errorf("%w: %d", ErrInvalidPoints, m.Points)
	}
	if !OnSliderStep(m.Bidding) {
		return fmt.Errorf("%w: bidding %d", ErrInvalidPoints, m.Bidding)
	}
	if m.Points > m.Bidding {
		return fmt.Errorf("%w: %d > %d", ErrPointsAboveBidding, m.Points, m.Bidding)
	}

	if m.SpecialPoints < -MaxSpecialPoints || m.SpecialPoints > MaxSpecialPoints {
		return fmt.Errorf("%w: %d", ErrInvalidSpecialPoints, m.SpecialPoints)
	}
	return nil
}

// Score computes the value of a won match: one for winning, one more when
// contra won, one per 30-point bracket the losers stayed under, one per
// announced limit, two per bid and the special points.
func Score(m MatchInput) int {
	score := 1
	if m.Team == TeamContra {
		score++
	}
	score += (SliderMax - m.Points) / SliderStep
	score += (SliderMax - m.Bidding) / SliderStep
	score += 2 * len(m.Bids)
	score += m.SpecialPoints
	return score
}
