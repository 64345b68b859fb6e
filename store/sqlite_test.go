package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/lixenwraith/slime-arena/core"
)

func newTestDB(t *testing.T) *SQLiteDB {
	t.Helper()
	db, err := NewSQLiteDB(filepath.Join(t.TempDir(), "episodes.db"))
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.Migrate(); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	return db
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	if err := db.Migrate(); err != nil {
		t.Fatalf("second migrate: %v", err)
	}
}

func TestSaveAndGetEpisode(t *testing.T) {
	db := newTestDB(t)

	ep := &Episode{
		Seed:        42,
		Difficulty:  5,
		Steps:       31,
		Ticks:       183,
		ScoringSide: core.SideLeft,
		Terminated:  true,
		Touches:     4,
		NetHits:     1,
		RewardRight: -49.5,
		RewardLeft:  51.25,
	}
	if err := db.SaveEpisode(ep); err != nil {
		t.Fatalf("SaveEpisode: %v", err)
	}
	if _, err := uuid.Parse(ep.ID); err != nil {
		t.Fatalf("assigned id %q is not a uuid: %v", ep.ID, err)
	}
	if ep.CreatedAt.IsZero() {
		t.Fatal("CreatedAt not assigned")
	}

	got, err := db.GetEpisode(ep.ID)
	if err != nil {
		t.Fatalf("GetEpisode: %v", err)
	}
	if got.Seed != 42 || got.Difficulty != 5 || got.Steps != 31 || got.Ticks != 183 {
		t.Errorf("counters mismatch: %+v", got)
	}
	if got.ScoringSide != core.SideLeft || !got.Terminated || got.Truncated {
		t.Errorf("outcome mismatch: %+v", got)
	}
	if got.RewardRight != -49.5 || got.RewardLeft != 51.25 {
		t.Errorf("rewards mismatch: %+v", got)
	}
	if !got.CreatedAt.Equal(ep.CreatedAt) {
		t.Errorf("created_at %v, want %v", got.CreatedAt, ep.CreatedAt)
	}
}

func TestGetEpisodeNotFound(t *testing.T) {
	db := newTestDB(t)
	_, err := db.GetEpisode(uuid.New().String())
	if errors.Cause(err) != ErrEpisodeNotFound {
		t.Fatalf("expected ErrEpisodeNotFound, got %v", err)
	}
}

func TestSaveAndGetEvents(t *testing.T) {
	db := newTestDB(t)
	ep := &Episode{ID: "ep1", Seed: 1}
	if err := db.SaveEpisode(ep); err != nil {
		t.Fatalf("SaveEpisode: %v", err)
	}

	events := []core.Event{
		{Kind: core.EventJump, Step: 3, Slime: core.SlimeLeft, Side: core.SideLeft},
		{Kind: core.EventTouch, Step: 20, Slime: core.SlimeRight, Side: core.SideRight},
		{Kind: core.EventNet, Step: 41, Side: core.SideRight},
		{Kind: core.EventFloor, Step: 77, Side: core.SideRight},
	}
	if err := db.SaveEvents(ep.ID, events); err != nil {
		t.Fatalf("SaveEvents: %v", err)
	}
	if err := db.SaveEvents(ep.ID, nil); err != nil {
		t.Fatalf("SaveEvents empty: %v", err)
	}

	got, err := db.GetEvents(ep.ID, 10, 0)
	if err != nil {
		t.Fatalf("GetEvents: %v", err)
	}
	if len(got) != len(events) {
		t.Fatalf("got %d events, want %d", len(got), len(events))
	}
	for i := range events {
		if got[i] != events[i] {
			t.Errorf("event %d: got %+v, want %+v", i, got[i], events[i])
		}
	}

	page, err := db.GetEvents(ep.ID, 2, 2)
	if err != nil {
		t.Fatalf("GetEvents page: %v", err)
	}
	if len(page) != 2 || page[0] != events[2] {
		t.Fatalf("page %+v", page)
	}
}

func TestListEpisodesAndStats(t *testing.T) {
	db := newTestDB(t)
	base := time.Unix(1_700_000_000, 0)

	episodes := []*Episode{
		{ID: "a", Ticks: 100, Touches: 2, ScoringSide: core.SideRight, Terminated: true, CreatedAt: base},
		{ID: "b", Ticks: 200, Touches: 4, ScoringSide: core.SideLeft, Terminated: true, CreatedAt: base.Add(time.Second)},
		{ID: "c", Ticks: 600, Touches: 6, Truncated: true, CreatedAt: base.Add(2 * time.Second)},
	}
	for _, ep := range episodes {
		if err := db.SaveEpisode(ep); err != nil {
			t.Fatalf("SaveEpisode %s: %v", ep.ID, err)
		}
	}

	list, err := db.ListEpisodes(2, 0)
	if err != nil {
		t.Fatalf("ListEpisodes: %v", err)
	}
	if len(list) != 2 || list[0].ID != "c" || list[1].ID != "b" {
		t.Fatalf("unexpected order: %+v", list)
	}

	st, err := db.Stats()
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if st.Episodes != 3 || st.RightPoints != 1 || st.LeftPoints != 1 || st.Truncated != 1 {
		t.Errorf("counts %+v", st)
	}
	if st.AvgTicks != 300 || st.AvgTouches != 4 {
		t.Errorf("averages %+v", st)
	}
}

func TestStatsEmpty(t *testing.T) {
	db := newTestDB(t)
	st, err := db.Stats()
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if st.Episodes != 0 || st.AvgTicks != 0 {
		t.Fatalf("empty stats %+v", st)
	}
}
