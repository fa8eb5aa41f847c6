package quiz

import (
	"testing"
	"time"
)

func TestSessionStoreLifecycle(t *testing.T) {
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	store := NewSessionStore(func() time.Time { return now })

	rec := GetRecommendation(Answers{ProjectScope: "full-website", Investment: "premium", Timeline: "urgent"})
	session := store.Record(rec)
	if session.ID == "" {
		t.Fatal("empty session id")
	}
	if session.PriorityLabel != rec.PriorityLabel || session.Solution != rec.Solution {
		t.Fatalf("session does not mirror recommendation: %+v", session)
	}

	if !store.Completed(session.ID) {
		t.Fatal("fresh session not reported as completed")
	}

	now = now.Add(SessionTTL - time.Second)
	if !store.Completed(session.ID) {
		t.Fatal("session expired before TTL")
	}

	now = now.Add(2 * time.Second)
	if store.Completed(session.ID) {
		t.Fatal("session survived past TTL")
	}
}

func TestSessionStoreUnknownID(t *testing.T) {
	store := NewSessionStore(nil)
	if store.Completed("nope") {
		t.Fatal("unknown id reported as completed")
	}
}

func TestSessionStorePrunesExpired(t *testing.T) {
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	store := NewSessionStore(func() time.Time { return now })

	old := store.Record(GetRecommendation(Answers{}))
	now = now.Add(SessionTTL + time.Minute)
	store.Record(GetRecommendation(Answers{}))

	store.mu.Lock()
	_, stillThere := store.items[old.ID]
	store.mu.Unlock()
	if stillThere {
		t.Fatal("expired session not pruned on write")
	}
}
