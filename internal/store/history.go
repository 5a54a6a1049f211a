package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lumina-labs/lumina/internal/assessment"
	"github.com/lumina-labs/lumina/internal/scoring"
)

const (
	historyKey = "lumina_history_v1"

	// MaxHistory is the number of records retained; older ones fall off.
	MaxHistory = 50
)

// HistoryRecord is one completed assessment.
type HistoryRecord struct {
	ID       string             `json:"id"`
	Type     assessment.Type    `json:"type"`
	Version  assessment.Version `json:"version"`
	TakenAt  int64              `json:"takenAt"`
	Result   scoring.Result     `json:"result"`
	Analysis json.RawMessage    `json:"analysis,omitempty"`
}

// HistoryStore keeps completed results as a single newest-first list,
// capped at MaxHistory records.
type HistoryStore struct {
	kv KV
}

// NewHistoryStore wraps an arbitrary KV, mainly for tests.
func NewHistoryStore(kv KV) *HistoryStore {
	return &HistoryStore{kv: kv}
}

// Append prepends rec to the history, assigning an ID and timestamp if
// unset, and drops the oldest records past the cap. It returns the
// stored record.
func (h *HistoryStore) Append(ctx context.Context, rec HistoryRecord) (HistoryRecord, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.TakenAt == 0 {
		rec.TakenAt = time.Now().UnixMilli()
	}

	records, err := h.List(ctx)
	if err != nil {
		return HistoryRecord{}, err
	}

	records = append([]HistoryRecord{rec}, records...)
	if len(records) > MaxHistory {
		records = records[:MaxHistory]
	}

	if err := h.save(ctx, records); err != nil {
		return HistoryRecord{}, err
	}
	return rec, nil
}

// List returns all records, newest first. An empty history is not an error.
func (h *HistoryStore) List(ctx context.Context) ([]HistoryRecord, error) {
	raw, ok, err := h.kv.Get(ctx, historyKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var records []HistoryRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("unmarshal history: %w", err)
	}
	return records, nil
}

// Clear removes the entire history.
func (h *HistoryStore) Clear(ctx context.Context) error {
	return h.kv.Delete(ctx, historyKey)
}

func (h *HistoryStore) save(ctx context.Context, records []HistoryRecord) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}
	return h.kv.Set(ctx, historyKey, raw)
}
