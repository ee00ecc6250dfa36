package earnings

import (
	"math"
	"testing"

	"github.com/google/uuid"

	"cliprewards/internal/domain"
)

func TestAmount(t *testing.T) {
	cases := []struct {
		views int64
		rpm   float64
		want  float64
	}{
		{0, 5, 0},
		{1000, 5, 5},
		{2000, 5, 10},
		{1500, 2.0, 3.0},
		{500, 1, 0.5},
		{1, 1, 0.001},
		{123456, 0, 0},
	}

	for _, tc := range cases {
		if got := Amount(tc.views, tc.rpm); got != tc.want {
			t.Fatalf("Amount(%d, %v) = %v, want %v", tc.views, tc.rpm, got, tc.want)
		}
	}
}

func entry(userID string, p domain.Platform, amount float64) domain.Earning {
	return domain.Earning{
		ID:       uuid.New(),
		ClipID:   uuid.New(),
		UserID:   userID,
		Platform: p,
		Amount:   amount,
	}
}

func TestAggregationSumsAgree(t *testing.T) {
	entries := []domain.Earning{
		entry("a", domain.PlatformYouTube, 30),
		entry("b", domain.PlatformTikTok, 10),
		entry("c", domain.PlatformYouTube, 20),
		entry("a", domain.PlatformInstagram, 2.5),
	}
	roster := []string{"a", "b", "c", "d"}

	total := Total(entries)

	var userSum float64
	for _, v := range TotalsByUser(entries, roster) {
		userSum += v
	}
	var platformSum float64
	for _, v := range TotalsByPlatform(entries) {
		platformSum += v
	}

	if math.Abs(total-userSum) > 1e-9 || math.Abs(total-platformSum) > 1e-9 {
		t.Fatalf("sums disagree: total=%v perUser=%v perPlatform=%v", total, userSum, platformSum)
	}
}

func TestTotalsByUserIncludesRosterZeros(t *testing.T) {
	entries := []domain.Earning{entry("a", domain.PlatformYouTube, 5)}

	totals := TotalsByUser(entries, []string{"a", "b"})
	if len(totals) != 2 {
		t.Fatalf("expected 2 users, got %d", len(totals))
	}
	if totals["b"] != 0 {
		t.Fatalf("expected roster user b at 0, got %v", totals["b"])
	}
}

func TestTotalsByUserPlatform(t *testing.T) {
	entries := []domain.Earning{
		entry("a", domain.PlatformYouTube, 5),
		entry("a", domain.PlatformYouTube, 7),
		entry("a", domain.PlatformTikTok, 1),
	}

	totals := TotalsByUserPlatform(entries, []string{"a", "b"})
	if totals["a"][domain.PlatformYouTube] != 12 {
		t.Fatalf("expected 12 on youtube, got %v", totals["a"][domain.PlatformYouTube])
	}
	if len(totals["b"]) != 0 {
		t.Fatalf("expected empty map for user b")
	}
	// an off-roster user in the ledger still shows up
	more := append(entries, entry("ghost", domain.PlatformX, 3))
	totals = TotalsByUserPlatform(more, []string{"a"})
	if totals["ghost"][domain.PlatformX] != 3 {
		t.Fatalf("expected off-roster entry to be kept")
	}
}

func TestLeaderboardOrderAndLimit(t *testing.T) {
	perUser := map[string]float64{"a": 30, "b": 10, "c": 20}

	board := Leaderboard(perUser, 2)
	if len(board) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(board))
	}
	if board[0].UserID != "a" || board[0].Total != 30 {
		t.Fatalf("expected a:30 first, got %+v", board[0])
	}
	if board[1].UserID != "c" || board[1].Total != 20 {
		t.Fatalf("expected c:20 second, got %+v", board[1])
	}
}

func TestLeaderboardTiebreakIsUserIDAscending(t *testing.T) {
	perUser := map[string]float64{"z": 10, "a": 10, "m": 10}

	board := Leaderboard(perUser, 5)
	if board[0].UserID != "a" || board[1].UserID != "m" || board[2].UserID != "z" {
		t.Fatalf("expected deterministic tie order a,m,z, got %+v", board)
	}
}

func TestCampaignStatsAttributionByMembership(t *testing.T) {
	campA := domain.Campaign{ID: uuid.New(), Name: "A"}
	campB := domain.Campaign{ID: uuid.New(), Name: "B"}

	clips := []domain.Clip{
		{ID: uuid.New(), UserID: "u1", CampaignID: campA.ID, Status: domain.ClipApproved},
		{ID: uuid.New(), UserID: "u1", CampaignID: campA.ID, Status: domain.ClipPending},
		{ID: uuid.New(), UserID: "u2", CampaignID: campB.ID, Status: domain.ClipApproved},
	}
	entries := []domain.Earning{
		entry("u1", domain.PlatformYouTube, 10),
		entry("u2", domain.PlatformTikTok, 4),
	}

	stats := CampaignStats([]domain.Campaign{campA, campB}, clips, entries)
	if len(stats) != 2 {
		t.Fatalf("expected 2 campaigns, got %d", len(stats))
	}

	if stats[0].TotalClips != 2 || stats[0].ApprovedClips != 1 || stats[0].TotalEarnings != 10 {
		t.Fatalf("campaign A stats wrong: %+v", stats[0])
	}
	if stats[1].TotalClips != 1 || stats[1].ApprovedClips != 1 || stats[1].TotalEarnings != 4 {
		t.Fatalf("campaign B stats wrong: %+v", stats[1])
	}
}

func TestCampaignStatsDoubleCountsSharedUsers(t *testing.T) {
	// documented behavior of membership attribution: a user with clips in two
	// campaigns has their whole ledger counted against both
	campA := domain.Campaign{ID: uuid.New(), Name: "A"}
	campB := domain.Campaign{ID: uuid.New(), Name: "B"}

	clips := []domain.Clip{
		{ID: uuid.New(), UserID: "u1", CampaignID: campA.ID, Status: domain.ClipApproved},
		{ID: uuid.New(), UserID: "u1", CampaignID: campB.ID, Status: domain.ClipApproved},
	}
	entries := []domain.Earning{entry("u1", domain.PlatformYouTube, 10)}

	stats := CampaignStats([]domain.Campaign{campA, campB}, clips, entries)
	if stats[0].TotalEarnings != 10 || stats[1].TotalEarnings != 10 {
		t.Fatalf("expected 10 attributed to both campaigns, got %+v", stats)
	}
}
