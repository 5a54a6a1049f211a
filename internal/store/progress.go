package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lumina-labs/lumina/internal/assessment"
)

const progressKeyPrefix = "lumina_quiz_progress_"

// ProgressSnapshot is the persisted shape of an in-flight quiz session.
type ProgressSnapshot struct {
	CurrentIndex int                  `json:"currentIndex"`
	Answers      assessment.AnswerMap `json:"answers"`
	Timestamp    int64                `json:"timestamp"`
}

// ProgressStore saves and restores one in-flight session per assessment
// type. Saving overwrites any previous snapshot for the same type.
type ProgressStore struct {
	kv KV
}

// NewProgressStore wraps an arbitrary KV, mainly for tests.
func NewProgressStore(kv KV) *ProgressStore {
	return &ProgressStore{kv: kv}
}

// Save overwrites the snapshot for t, stamping it with the current time.
func (p *ProgressStore) Save(ctx context.Context, t assessment.Type, snap ProgressSnapshot) error {
	if snap.Timestamp == 0 {
		snap.Timestamp = time.Now().UnixMilli()
	}
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal progress: %w", err)
	}
	return p.kv.Set(ctx, progressKey(t), raw)
}

// Load returns the saved snapshot for t, or ok=false if none exists.
func (p *ProgressStore) Load(ctx context.Context, t assessment.Type) (ProgressSnapshot, bool, error) {
	raw, ok, err := p.kv.Get(ctx, progressKey(t))
	if err != nil || !ok {
		return ProgressSnapshot{}, false, err
	}
	var snap ProgressSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return ProgressSnapshot{}, false, fmt.Errorf("unmarshal progress: %w", err)
	}
	if snap.Answers == nil {
		snap.Answers = assessment.AnswerMap{}
	}
	return snap, true, nil
}

// Clear removes the snapshot for t. Clearing an absent snapshot is a no-op.
func (p *ProgressStore) Clear(ctx context.Context, t assessment.Type) error {
	return p.kv.Delete(ctx, progressKey(t))
}

func progressKey(t assessment.Type) string {
	return progressKeyPrefix + string(t)
}
