// This file contains persistence for confirmed events and their stored
// lineup rows. An event and its lineup are written together inside one
// transaction: finalize is a single create operation, there is no partial
// commit state for a handler to clean up.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/grooveops/server/internal/model"
)

// EventRepo manages persistence for events and their lineup snapshots.
type EventRepo struct {
	db *sql.DB
}

// NewEventRepo constructs an EventRepo with the given DB handle.
func NewEventRepo(db *sql.DB) *EventRepo {
	return &EventRepo{db: db}
}

// eventColumns is the shared SELECT column list for event rows.
const eventColumns = `id, name, description, date, location, status, event_status, coordinator_id,
                      entry_fee_cents, total_fee_cents, created_at`

// Create inserts the event and all of its lineup rows in one transaction
// and assigns the generated ID back to the struct. Either everything is
// stored or nothing is.
func (r *EventRepo) Create(ctx context.Context, e *model.Event) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			_ = tx.Commit()
		}
	}()

	const q = `INSERT INTO events (name, description, date, location, status, event_status, coordinator_id,
                                   entry_fee_cents, total_fee_cents)
               VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	var res sql.Result
	res, err = tx.ExecContext(ctx, q,
		e.Name, e.Description, e.Date, e.Location, e.Status, e.EventStatus, e.CoordinatorID,
		e.EntryFeeCents, e.TotalFeeCents,
	)
	if err != nil {
		return err
	}
	var id int64
	id, err = res.LastInsertId()
	if err != nil {
		return err
	}
	e.ID = uint64(id)

	const lq = `INSERT INTO event_lineup (event_id, position, time, dj_id, artist_alias, legal_name, genres,
                                          phone, instagram, fee_cents, target_bpm)
                VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for i, slot := range e.Lineup {
		var genres string
		genres, err = encodeTags(slot.Genres)
		if err != nil {
			return err
		}
		// A zero DJID is stored as NULL so the column can carry a real
		// foreign key when the profile still exists.
		var djID any
		if slot.DJID != 0 {
			djID = slot.DJID
		}
		_, err = tx.ExecContext(ctx, lq,
			e.ID, i, slot.Time, djID, slot.ArtistAlias, slot.LegalName, genres,
			slot.Phone, slot.Instagram, slot.FeeCents, slot.TargetBPM,
		)
		if err != nil {
			return err
		}
		e.Lineup[i].Position = i
	}
	return nil
}

// GetByID retrieves an event with its full lineup. It returns
// ErrEventNotFound when there is no matching row.
func (r *EventRepo) GetByID(ctx context.Context, id uint64) (model.Event, error) {
	const q = `SELECT ` + eventColumns + ` FROM events WHERE id = ?`
	var e model.Event
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&e.ID, &e.Name, &e.Description, &e.Date, &e.Location, &e.Status, &e.EventStatus,
		&e.CoordinatorID, &e.EntryFeeCents, &e.TotalFeeCents, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Event{}, ErrEventNotFound
		}
		return model.Event{}, err
	}
	e.Lineup, err = r.lineupFor(ctx, e.ID)
	if err != nil {
		return model.Event{}, err
	}
	return e, nil
}

// GetAll returns every event ordered by date ascending, each with its
// lineup loaded. When no events exist it returns an empty slice and nil
// error.
func (r *EventRepo) GetAll(ctx context.Context) ([]model.Event, error) {
	const q = `SELECT ` + eventColumns + ` FROM events ORDER BY date ASC, id ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	result := []model.Event{}
	for rows.Next() {
		var e model.Event
		if err := rows.Scan(
			&e.ID, &e.Name, &e.Description, &e.Date, &e.Location, &e.Status, &e.EventStatus,
			&e.CoordinatorID, &e.EntryFeeCents, &e.TotalFeeCents, &e.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range result {
		result[i].Lineup, err = r.lineupFor(ctx, result[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

// lineupFor loads the stored lineup rows of one event in chronological
// order.
func (r *EventRepo) lineupFor(ctx context.Context, eventID uint64) ([]model.LineupSlot, error) {
	const q = `SELECT position, time, dj_id, artist_alias, legal_name, genres, phone, instagram,
                      fee_cents, target_bpm
               FROM event_lineup WHERE event_id = ? ORDER BY position ASC`
	rows, err := r.db.QueryContext(ctx, q, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	lineup := []model.LineupSlot{}
	for rows.Next() {
		var (
			s      model.LineupSlot
			djID   sql.NullInt64
			genres string
		)
		if err := rows.Scan(
			&s.Position, &s.Time, &djID, &s.ArtistAlias, &s.LegalName, &genres,
			&s.Phone, &s.Instagram, &s.FeeCents, &s.TargetBPM,
		); err != nil {
			return nil, err
		}
		if djID.Valid {
			s.DJID = uint64(djID.Int64)
		}
		s.Genres = decodeTags(genres)
		lineup = append(lineup, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return lineup, nil
}

// UpdateStatus moves an event between draft, confirmed and cancelled. It
// returns ErrEventNotFound when no row matched and ErrNoChange when the
// event already had the requested status.
func (r *EventRepo) UpdateStatus(ctx context.Context, id uint64, status string) error {
	const q = `UPDATE events SET status = ? WHERE id = ? AND status <> ?`
	res, err := r.db.ExecContext(ctx, q, status, id, status)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}
	var one int
	if err := r.db.QueryRowContext(ctx, `SELECT 1 FROM events WHERE id = ? LIMIT 1`, id).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrEventNotFound
		}
		return err
	}
	return ErrNoChange
}

// Delete removes an event and its lineup rows inside one transaction. It
// returns ErrEventNotFound when the event does not exist.
func (r *EventRepo) Delete(ctx context.Context, id uint64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			_ = tx.Commit()
		}
	}()
	if _, err = tx.ExecContext(ctx, `DELETE FROM event_lineup WHERE event_id = ?`, id); err != nil {
		return err
	}
	var res sql.Result
	res, err = tx.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		err = ErrEventNotFound
		return err
	}
	return nil
}
