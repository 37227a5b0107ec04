package scorepadtypes

// DealerIndex returns the seat of the current dealer after matchCount
// matches at a table of playerCount. Before the first match the last
// seat deals. It returns -1 for an empty table.
func DealerIndex(matchCount, playerCount int) int {
	if playerCount <= 0 {
		return -1
	}
	if matchCount > 0 {
		return (matchCount - 1) % playerCount
	}
	return playerCount - 1
}
