package scorepadtypes

import "slices"

// BoardPlayer is a seated player with the running score after the last row.
type BoardPlayer struct {
	ID      string `json:"_id"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
	Score   int    `json:"score"`
}

// PlayedMatch is the part of a stored match the board needs.
type PlayedMatch struct {
	Winners []string
	Score   int
}

// BoardRow is one line of the running score table.
type BoardRow struct {
	Index    int      `json:"index"`
	Scores   []int    `json:"scores"`
	Score    int      `json:"score"`
	Winners  []string `json:"winners"`
	NewRound bool     `json:"newRound"`
}

// Board is the running score table of a scorepad.
type Board struct {
	Players     []BoardPlayer `json:"players"`
	Rows        []BoardRow    `json:"rows"`
	DealerIndex int           `json:"dealerIndex"`
	Dealer      *BoardPlayer  `json:"dealer,omitempty"`
}

// BuildBoard replays matches in order. Each winner's running score grows by
// the match score, and a row closes a round when its 1-based index is a
// multiple of the player count. Scores start from zero on every call.
func BuildBoard(players []BoardPlayer, matches []PlayedMatch) Board {
	board := Board{
		Players: make([]BoardPlayer, len(players)),
		Rows:    make([]BoardRow, 0, len(matches)),
	}
	names := make(map[string]string, len(players))
	for i, p := range players {
		p.Score = 0
		board.Players[i] = p
		names[p.ID] = p.Name
	}

	for i, m := range matches {
		row := BoardRow{
			Index:   i + 1,
			Scores:  make([]int, len(board.Players)),
			Score:   m.Score,
			Winners: make([]string, 0, len(m.Winners)),
		}
		for j := range board.Players {
			if slices.Contains(m.Winners, board.Players[j].ID) {
				board.Players[j].Score += m.Score
			}
			row.Scores[j] = board.Players[j].Score
		}
		for _, id := range m.Winners {
			if name, ok := names[id]; ok {
				row.Winners = append(row.Winners, name)
			}
		}
		row.NewRound = len(board.Players) > 0 && row.Index%len(board.Players) == 0
		board.Rows = append(board.Rows, row)
	}

	board.DealerIndex = DealerIndex(len(matches), len(board.Players))
	if board.DealerIndex >= 0 {
		dealer := board.Players[board.DealerIndex]
		board.Dealer = &dealer
	}
	return board
}
