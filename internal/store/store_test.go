package store

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/lumina-labs/lumina/internal/assessment"
	"github.com/lumina-labs/lumina/internal/scoring"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestKVRoundTrip(t *testing.T) {
	s := openTestStore(t)
	kv := s.KV()
	ctx := context.Background()

	if _, ok, err := kv.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("get missing: ok=%v err=%v, want absent", ok, err)
	}

	if err := kv.Set(ctx, "k", []byte("v1")); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := kv.Set(ctx, "k", []byte("v2")); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	v, ok, err := kv.Get(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if string(v) != "v2" {
		t.Errorf("value = %q, want v2", v)
	}

	if err := kv.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := kv.Get(ctx, "k"); ok {
		t.Error("key still present after delete")
	}
	if err := kv.Delete(ctx, "k"); err != nil {
		t.Errorf("delete absent key: %v", err)
	}
}

func TestProgressRoundTrip(t *testing.T) {
	p := NewProgressStore(NewMemoryKV())
	ctx := context.Background()

	if _, ok, err := p.Load(ctx, assessment.TypeMBTI); err != nil || ok {
		t.Fatalf("load empty: ok=%v err=%v, want absent", ok, err)
	}

	snap := ProgressSnapshot{
		CurrentIndex: 3,
		Answers:      assessment.AnswerMap{1: "E", 2: assessment.Neutral},
	}
	if err := p.Save(ctx, assessment.TypeMBTI, snap); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, ok, err := p.Load(ctx, assessment.TypeMBTI)
	if err != nil || !ok {
		t.Fatalf("load: ok=%v err=%v", ok, err)
	}
	if got.CurrentIndex != 3 {
		t.Errorf("CurrentIndex = %d, want 3", got.CurrentIndex)
	}
	if got.Answers[1] != "E" || got.Answers[2] != assessment.Neutral {
		t.Errorf("Answers = %v", got.Answers)
	}
	if got.Timestamp == 0 {
		t.Error("Timestamp not stamped on save")
	}

	// Sessions are keyed per assessment type.
	if _, ok, _ := p.Load(ctx, assessment.TypeIQ); ok {
		t.Error("IQ progress present, want only MBTI")
	}

	if err := p.Clear(ctx, assessment.TypeMBTI); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, ok, _ := p.Load(ctx, assessment.TypeMBTI); ok {
		t.Error("progress still present after clear")
	}
}

func TestHistoryNewestFirstAndCapped(t *testing.T) {
	h := NewHistoryStore(NewMemoryKV())
	ctx := context.Background()

	for i := 0; i < MaxHistory+1; i++ {
		rec := HistoryRecord{
			Type:    assessment.TypeMBTI,
			Version: assessment.VersionLite,
			TakenAt: int64(i + 1),
			Result: scoring.Result{
				Kind: assessment.TypeMBTI,
				MBTI: &scoring.MBTIResult{Type: fmt.Sprintf("T%d", i)},
			},
		}
		if _, err := h.Append(ctx, rec); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	records, err := h.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != MaxHistory {
		t.Fatalf("len = %d, want %d", len(records), MaxHistory)
	}
	if records[0].Result.MBTI.Type != fmt.Sprintf("T%d", MaxHistory) {
		t.Errorf("head = %q, want newest record", records[0].Result.MBTI.Type)
	}
	// The oldest record fell off the tail.
	if records[len(records)-1].Result.MBTI.Type != "T1" {
		t.Errorf("tail = %q, want T1", records[len(records)-1].Result.MBTI.Type)
	}
	if records[0].ID == "" {
		t.Error("ID not assigned on append")
	}
}

func TestHistoryClear(t *testing.T) {
	h := NewHistoryStore(NewMemoryKV())
	ctx := context.Background()

	if _, err := h.Append(ctx, HistoryRecord{Type: assessment.TypeEQ}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := h.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	records, err := h.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("len = %d after clear, want 0", len(records))
	}
}
