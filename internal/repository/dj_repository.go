// This file contains persistence for Vault profiles (the djs table).
// Genre and vibe tags are stored as JSON-encoded text columns and decoded
// back into string slices on read; every other field maps to a plain
// column.
package repository

import (
	"context"      // context for controlling query lifetime
	"database/sql" // sql provides DB abstraction
	"encoding/json"
	"errors"
	"strings"

	"github.com/grooveops/server/internal/model"
)

// DJRepo manages persistence for Vault profiles.
type DJRepo struct {
	db *sql.DB
}

// NewDJRepo constructs a DJRepo with the given DB handle.
func NewDJRepo(db *sql.DB) *DJRepo {
	return &DJRepo{db: db}
}

// djColumns is the column list shared by every SELECT in this file so
// scans stay in one shape.
const djColumns = `id, email, name, surname, contact_number, preferred_comms, alias, bio, ig_link,
                   fee_cents, genres, vibes, experience, bank_name, account_holder, account_number,
                   profile_pic, mix_url, created_at`

// encodeTags marshals a tag slice into its JSON column form. A nil slice
// is stored as an empty array so reads never produce NULL.
func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// decodeTags unmarshals a JSON column back into a tag slice. Empty or
// NULL columns decode to an empty slice.
func decodeTags(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var tags []string
	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		return []string{}
	}
	return tags
}

// scanDJ reads one row into a model.DJ. The row must carry djColumns in
// order.
func scanDJ(row interface{ Scan(...any) error }) (model.DJ, error) {
	var (
		d             model.DJ
		genres, vibes string
	)
	err := row.Scan(
		&d.ID, &d.Email, &d.Name, &d.Surname, &d.ContactNumber, &d.PreferredComms,
		&d.Alias, &d.Bio, &d.IGLink, &d.FeeCents, &genres, &vibes, &d.Experience,
		&d.BankName, &d.AccountHolder, &d.AccountNumber, &d.ProfilePic, &d.MixURL,
		&d.CreatedAt,
	)
	if err != nil {
		return model.DJ{}, err
	}
	d.Genres = decodeTags(genres)
	d.Vibes = decodeTags(vibes)
	return d, nil
}

// Create inserts a new Vault profile and assigns the generated ID back to
// the struct. Email uniqueness is enforced by the DB; a duplicate key
// violation surfaces as ErrEmailExists.
func (r *DJRepo) Create(ctx context.Context, d *model.DJ) error {
	genres, err := encodeTags(d.Genres)
	if err != nil {
		return err
	}
	vibes, err := encodeTags(d.Vibes)
	if err != nil {
		return err
	}
	const q = `INSERT INTO djs (email, name, surname, contact_number, preferred_comms, alias, bio, ig_link,
                                fee_cents, genres, vibes, experience, bank_name, account_holder, account_number,
                                profile_pic, mix_url)
               VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q,
		d.Email, d.Name, d.Surname, d.ContactNumber, d.PreferredComms, d.Alias, d.Bio, d.IGLink,
		d.FeeCents, genres, vibes, d.Experience, d.BankName, d.AccountHolder, d.AccountNumber,
		d.ProfilePic, d.MixURL,
	)
	if err != nil {
		// MySQL duplicate key error (1062) on the unique email index.
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrEmailExists
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	d.ID = uint64(id)
	// Fetch the freshly inserted row to populate DB-default fields.
	fresh, err := r.GetByID(ctx, d.ID)
	if err != nil {
		return err
	}
	*d = fresh
	return nil
}

// GetByID retrieves a Vault profile by its ID. It returns ErrDJNotFound
// when there is no matching row.
func (r *DJRepo) GetByID(ctx context.Context, id uint64) (model.DJ, error) {
	const q = `SELECT ` + djColumns + ` FROM djs WHERE id = ?`
	d, err := scanDJ(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.DJ{}, ErrDJNotFound
		}
		return model.DJ{}, err
	}
	return d, nil
}

// GetAll returns every Vault profile, newest first. When the Vault is
// empty it returns an empty slice and nil error.
func (r *DJRepo) GetAll(ctx context.Context) ([]model.DJ, error) {
	const q = `SELECT ` + djColumns + ` FROM djs ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	result := []model.DJ{}
	for rows.Next() {
		d, err := scanDJ(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Update rewrites every mutable field of the profile with the given ID.
// It returns ErrDJNotFound when the row does not exist and ErrEmailExists
// when the new email collides with another profile.
func (r *DJRepo) Update(ctx context.Context, d *model.DJ) error {
	genres, err := encodeTags(d.Genres)
	if err != nil {
		return err
	}
	vibes, err := encodeTags(d.Vibes)
	if err != nil {
		return err
	}
	const q = `UPDATE djs
               SET email = ?, name = ?, surname = ?, contact_number = ?, preferred_comms = ?, alias = ?,
                   bio = ?, ig_link = ?, fee_cents = ?, genres = ?, vibes = ?, experience = ?,
                   bank_name = ?, account_holder = ?, account_number = ?, profile_pic = ?, mix_url = ?
               WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q,
		d.Email, d.Name, d.Surname, d.ContactNumber, d.PreferredComms, d.Alias,
		d.Bio, d.IGLink, d.FeeCents, genres, vibes, d.Experience,
		d.BankName, d.AccountHolder, d.AccountNumber, d.ProfilePic, d.MixURL,
		d.ID,
	)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrEmailExists
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// Zero rows means either a missing row or an identical update;
		// check existence to tell the cases apart.
		var one int
		if err := r.db.QueryRowContext(ctx, `SELECT 1 FROM djs WHERE id = ? LIMIT 1`, d.ID).Scan(&one); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrDJNotFound
			}
			return err
		}
		return ErrNoChange
	}
	fresh, err := r.GetByID(ctx, d.ID)
	if err != nil {
		return err
	}
	*d = fresh
	return nil
}

// Delete removes a Vault profile. It returns ErrDJNotFound when no row
// matched. Confirmed events keep their snapshots, so deleting a DJ never
// touches stored lineups.
func (r *DJRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM djs WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrDJNotFound
	}
	return nil
}
