package earnings

import (
	"sort"

	"github.com/google/uuid"

	"cliprewards/internal/domain"
)

// Aggregation over the earnings ledger. Every function here is a
// deterministic, side-effect-free fold over a ledger snapshot; data volumes
// are small enough to recompute on each request.

type LeaderboardEntry struct {
	UserID string  `json:"user_id"`
	Total  float64 `json:"total"`
}

type CampaignStat struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	TotalClips    int       `json:"total_clips"`
	ApprovedClips int       `json:"approved_clips"`
	TotalEarnings float64   `json:"total_earnings"`
}

// Total sums the whole ledger.
func Total(entries []domain.Earning) float64 {
	var sum float64
	for _, e := range entries {
		sum += e.Amount
	}
	return sum
}

// TotalsByUser folds the ledger into per-user sums. Every roster user appears
// in the result, users without entries at 0, so dashboards can render the
// full user list without a second lookup.
func TotalsByUser(entries []domain.Earning, roster []string) map[string]float64 {
	totals := make(map[string]float64, len(roster))
	for _, userID := range roster {
		totals[userID] = 0
	}
	for _, e := range entries {
		totals[e.UserID] += e.Amount
	}
	return totals
}

// TotalsByPlatform folds the ledger into per-platform sums. Only platforms
// with at least one entry appear.
func TotalsByPlatform(entries []domain.Earning) map[domain.Platform]float64 {
	totals := make(map[domain.Platform]float64)
	for _, e := range entries {
		totals[e.Platform] += e.Amount
	}
	return totals
}

// TotalsByUserPlatform builds the two-level user -> platform -> sum map.
// Roster users appear with an empty inner map when they have no entries.
func TotalsByUserPlatform(entries []domain.Earning, roster []string) map[string]map[domain.Platform]float64 {
	totals := make(map[string]map[domain.Platform]float64, len(roster))
	for _, userID := range roster {
		totals[userID] = make(map[domain.Platform]float64)
	}
	for _, e := range entries {
		inner, ok := totals[e.UserID]
		if !ok {
			inner = make(map[domain.Platform]float64)
			totals[e.UserID] = inner
		}
		inner[e.Platform] += e.Amount
	}
	return totals
}

// CampaignStats attributes ledger entries to campaigns through the set of
// users owning clips in each campaign. That is an approximation: a user
// active in several campaigns has their full ledger counted against each of
// them. Kept for dashboard continuity; Earning.CampaignID exists for an exact
// join when the dashboards migrate.
func CampaignStats(campaigns []domain.Campaign, clips []domain.Clip, entries []domain.Earning) []CampaignStat {
	stats := make([]CampaignStat, 0, len(campaigns))

	for _, c := range campaigns {
		members := make(map[string]struct{})
		total := 0
		approved := 0
		for _, cl := range clips {
			if cl.CampaignID != c.ID {
				continue
			}
			total++
			if cl.Status == domain.ClipApproved {
				approved++
			}
			members[cl.UserID] = struct{}{}
		}

		var earned float64
		for _, e := range entries {
			if _, ok := members[e.UserID]; ok {
				earned += e.Amount
			}
		}

		stats = append(stats, CampaignStat{
			ID:            c.ID,
			Name:          c.Name,
			TotalClips:    total,
			ApprovedClips: approved,
			TotalEarnings: earned,
		})
	}

	return stats
}

// Leaderboard ranks users by total earnings, descending, keeping the top n.
// Ties break by user id ascending so the order is stable across recomputes.
func Leaderboard(perUser map[string]float64, n int) []LeaderboardEntry {
	board := make([]LeaderboardEntry, 0, len(perUser))
	for userID, total := range perUser {
		board = append(board, LeaderboardEntry{UserID: userID, Total: total})
	}

	sort.Slice(board, func(i, j int) bool {
		if board[i].Total != board[j].Total {
			return board[i].Total > board[j].Total
		}
		return board[i].UserID < board[j].UserID
	})

	if n > 0 && len(board) > n {
		board = board[:n]
	}
	return board
}
