package store

import (
	"context"
	"encoding/json"
	"strings"
	"time"
)

// EventRecord is one row of the mutation event log.
type EventRecord struct {
	ID       string          `json:"id"`
	TS       time.Time       `json:"ts"`
	Type     string          `json:"type"`
	EntityID string          `json:"entityId"`
	Payload  json.RawMessage `json:"payload,omitempty"`
}

// AppendEvent records c in the event log. The log is informational; the
// state tables stay the source of truth.
func (s Store) AppendEvent(ctx context.Context, c Change) error {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	payload := []byte("null")
	if c.Payload != nil {
		payload, err = json.Marshal(c.Payload)
		if err != nil {
			return err
		}
	}
	ts := c.TS
	if ts.IsZero() {
		ts = time.Now()
	}
	_, err = db.ExecContext(ctx, `INSERT INTO events(id, ts_unixms, type, entity_id, payload_json) VALUES(?, ?, ?, ?, ?)`,
		NewID(), ts.UTC().UnixMilli(), c.Type, c.EntityID, string(payload))
	return err
}

// ReadEvents returns the most recent events, newest first. entityID filters
// when non-empty; limit <= 0 means no limit.
func (s Store) ReadEvents(ctx context.Context, entityID string, limit int) ([]EventRecord, error) {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	q := `SELECT id, ts_unixms, type, entity_id, payload_json FROM events`
	args := []any{}
	if id := strings.TrimSpace(entityID); id != "" {
		q += ` WHERE entity_id = ?`
		args = append(args, id)
	}
	q += ` ORDER BY ts_unixms DESC, rowid DESC`
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []EventRecord{}
	for rows.Next() {
		var (
			ev      EventRecord
			tsMs    int64
			payload string
		)
		if err := rows.Scan(&ev.ID, &tsMs, &ev.Type, &ev.EntityID, &payload); err != nil {
			return nil, err
		}
		ev.TS = time.UnixMilli(tsMs).UTC()
		if payload != "" && payload != "null" {
			ev.Payload = json.RawMessage(payload)
		}
		out = append(out, ev)
	}
	return out, rows.Err()
}
