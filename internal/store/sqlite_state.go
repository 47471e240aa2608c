package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"itinerary-studio/internal/model"
)

const stateVersion = 1

func saveStateToSQLite(ctx context.Context, db *sql.DB, st *State) error {
	if st == nil {
		return errors.New("nil state")
	}

	tx, err := db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `INSERT OR REPLACE INTO state_meta(k, v) VALUES(?, ?)`, "version", fmt.Sprintf("%d", stateVersion)); err != nil {
		return err
	}

	// Replace-all: the snapshot is the source of truth for both collections.
	for _, t := range []string{"itineraries", "keywords"} {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+t); err != nil {
			return err
		}
	}

	nowMs := time.Now().UTC().UnixMilli()

	for i, it := range st.Itineraries {
		raw, err := json.Marshal(it)
		if err != nil {
			return fmt.Errorf("encode itinerary %s: %w", it.ID, err)
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO itineraries(
			id, position, itinerary_code, client_name, destination, json, updated_at_unixms
		) VALUES(?, ?, ?, ?, ?, ?, ?)`,
			it.ID, i, strings.TrimSpace(it.ItineraryCode), it.ClientName, it.Destination, string(raw), nowMs,
		); err != nil {
			return fmt.Errorf("insert itinerary %s: %w", it.ID, err)
		}
	}
	for i, k := range st.Keywords {
		raw, err := json.Marshal(k)
		if err != nil {
			return fmt.Errorf("encode keyword %s: %w", k.ID, err)
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO keywords(id, position, keyword, json, updated_at_unixms) VALUES(?, ?, ?, ?, ?)`,
			k.ID, i, k.Keyword, string(raw), nowMs); err != nil {
			return fmt.Errorf("insert keyword %s: %w", k.ID, err)
		}
	}

	return tx.Commit()
}

func loadStateFromSQLite(ctx context.Context, db *sql.DB) (*State, error) {
	out := &State{}
	var err error
	out.Itineraries, err = readJSONRows[model.Itinerary](ctx, db, `SELECT json FROM itineraries ORDER BY position ASC`)
	if err != nil {
		return nil, fmt.Errorf("read itineraries: %w", err)
	}
	out.Keywords, err = readJSONRows[model.Keyword](ctx, db, `SELECT json FROM keywords ORDER BY position ASC`)
	if err != nil {
		return nil, fmt.Errorf("read keywords: %w", err)
	}
	normalizeState(out)
	return out, nil
}

// normalizeState replaces nil collections with empty ones so callers and
// JSON output never see null lists.
func normalizeState(st *State) {
	if st.Itineraries == nil {
		st.Itineraries = []model.Itinerary{}
	}
	if st.Keywords == nil {
		st.Keywords = []model.Keyword{}
	}
	for i := range st.Itineraries {
		it := &st.Itineraries[i]
		if it.CustomHeadings == nil {
			it.CustomHeadings = []model.CustomHeading{}
		}
		if it.PricingSlots == nil {
			it.PricingSlots = []model.PricingSlot{}
		}
		if it.DayPlans == nil {
			it.DayPlans = []model.DayPlan{}
		}
		for j := range it.DayPlans {
			if it.DayPlans[j].Activities == nil {
				it.DayPlans[j].Activities = []string{}
			}
		}
		if it.Inclusions == nil {
			it.Inclusions = []string{}
		}
		if it.Exclusions == nil {
			it.Exclusions = []string{}
		}
	}
	for i := range st.Keywords {
		if st.Keywords[i].Activities == nil {
			st.Keywords[i].Activities = []string{}
		}
	}
}

func readJSONRows[T any](ctx context.Context, db *sql.DB, query string) ([]T, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		var js string
		if err := rows.Scan(&js); err != nil {
			return nil, err
		}
		var v T
		if err := json.Unmarshal([]byte(js), &v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
