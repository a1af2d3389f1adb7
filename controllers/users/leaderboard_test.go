package users

import "testing"

func TestRankEntriesSortsDescending(t *testing.T) {
	entries := []LeaderboardEntry{
		{Name: "a", Points: 10},
		{Name: "b", Points: 120},
		{Name: "c", Points: 45},
	}
	ranked := rankEntries(entries)
	if ranked[0].Name != "b" || ranked[1].Name != "c" || ranked[2].Name != "a" {
		t.Fatalf("unexpected order: %+v", ranked)
	}
	for i, e := range ranked {
		if e.Rank != i+1 {
			t.Errorf("entry %d has rank %d", i, e.Rank)
		}
	}
}

func TestRankEntriesStableTies(t *testing.T) {
	entries := []LeaderboardEntry{
		{Name: "a", Points: 10},
		{Name: "b", Points: 30},
		{Name: "c", Points: 30},
		{Name: "d", Points: 5},
	}
	ranked := rankEntries(entries)
	want := []string{"b", "c", "a", "d"}
	for i, name := range want {
		if ranked[i].Name != name {
			t.Fatalf("position %d: got %s, want %s", i, ranked[i].Name, name)
		}
	}
}

func TestRankEntriesLevels(t *testing.T) {
	cases := []struct {
		points float64
		level  int
	}{
		{0, 1},
		{49, 1},
		{50, 2},
		{120, 3},
	}
	for _, c := range cases {
		ranked := rankEntries([]LeaderboardEntry{{Points: c.points}})
		if ranked[0].Level != c.level {
			t.Errorf("points %v: got level %d, want %d", c.points, ranked[0].Level, c.level)
		}
	}
}

func TestRankEntriesDoesNotMutateInput(t *testing.T) {
	entries := []LeaderboardEntry{
		{Name: "a", Points: 10},
		{Name: "b", Points: 120},
	}
	_ = rankEntries(entries)
	if entries[0].Name != "a" || entries[0].Rank != 0 {
		t.Fatalf("input slice mutated: %+v", entries)
	}
}

func TestBoardIdentitiesSessionUserLast(t *testing.T) {
	ids := boardIdentities("me@example.com")
	if len(ids) != len(demoIdentities)+1 {
		t.Fatalf("expected %d identities, got %d", len(demoIdentities)+1, len(ids))
	}
	last := ids[len(ids)-1]
	if last.Name != "You" || last.Email != "me@example.com" {
		t.Fatalf("session user must be last, got %+v", last)
	}
}

func TestBoardIdentitiesNoDuplicateForDemoEmail(t *testing.T) {
	ids := boardIdentities(demoIdentities[0].Email)
	if len(ids) != len(demoIdentities) {
		t.Fatalf("demo email must not appear twice, got %+v", ids)
	}
	if ids[len(ids)-1].Name != "You" {
		t.Fatalf("session entry must still be last, got %+v", ids)
	}
}
