package scorepadevents

// MatchRecordedTopic is published after a match has been committed.
const MatchRecordedTopic = "scorepad.match.recorded.v1"

// MatchRecordedPayload describes a newly recorded match.
type MatchRecordedPayload struct {
	ScorepadID string   `json:"scorepadId"`
	MatchID    string   `json:"matchId"`
	Seq        int      `json:"seq"`
	Score      int      `json:"score"`
	Winners    []string `json:"winners"`
}
