package models

import "time"

// ProgressRecord is the per-user learning progress of a single card as held
// by the remote store. The pair (UserID, CardID) is unique.
type ProgressRecord struct {
	UserID          string     `json:"user_id"`
	CardID          int64      `json:"card_id"`
	CardScore       int        `json:"card_score"`
	ViewCount       int        `json:"view_count"`
	LastPracticedAt *time.Time `json:"last_practiced_at,omitempty"`
}

// ProgressDelta is a relative change to a user's progress on one card. It is
// applied atomically on the remote side so that concurrent devices never
// lose each other's updates.
type ProgressDelta struct {
	UserID     string `json:"user_id"`
	CardID     int64  `json:"card_id"`
	ScoreDelta int    `json:"score_delta"`
	ViewDelta  int    `json:"view_delta"`
}

// MergeProgress overlays remote progress onto cards. Cards without a progress
// record get zero score and views.
func MergeProgress(cards []Card, progress []ProgressRecord) []Card {
	byCard := make(map[int64]ProgressRecord, len(progress))
	for _, p := range progress {
		byCard[p.CardID] = p
	}

	merged := make([]Card, 0, len(cards))
	for _, card := range cards {
		p, ok := byCard[card.ID]
		card.CardScore = 0
		card.ViewCount = 0
		card.LastPracticedAt = nil
		if ok {
			card.CardScore = p.CardScore
			card.ViewCount = p.ViewCount
			card.LastPracticedAt = p.LastPracticedAt
		}
		merged = append(merged, card)
	}
	return merged
}
