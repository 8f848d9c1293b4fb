package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// UpsertStylePreferences creates or replaces the style preferences row for a user
func (db *DB) UpsertStylePreferences(ctx context.Context, prefs *StylePreferences) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO style_preferences (user_id, colors, styles, fabrics, occasions, body_type, top_size, bottom_size, shoe_size)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 ON CONFLICT (user_id) DO UPDATE SET
		   colors = $2, styles = $3, fabrics = $4, occasions = $5,
		   body_type = $6, top_size = $7, bottom_size = $8, shoe_size = $9,
		   updated_at = NOW()`,
		prefs.UserID, prefs.Colors, prefs.Styles, prefs.Fabrics, prefs.Occasions,
		prefs.BodyType, prefs.TopSize, prefs.BottomSize, prefs.ShoeSize,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert style preferences: %w", err)
	}
	return nil
}

// GetStylePreferences retrieves a user's style preferences, or nil if none saved
func (db *DB) GetStylePreferences(ctx context.Context, userID uuid.UUID) (*StylePreferences, error) {
	var p StylePreferences
	err := db.pool.QueryRow(ctx,
		`SELECT user_id, colors, styles, fabrics, occasions,
		        COALESCE(body_type, ''), COALESCE(top_size, ''), COALESCE(bottom_size, ''), COALESCE(shoe_size, ''),
		        updated_at
		 FROM style_preferences WHERE user_id = $1`,
		userID,
	).Scan(&p.UserID, &p.Colors, &p.Styles, &p.Fabrics, &p.Occasions,
		&p.BodyType, &p.TopSize, &p.BottomSize, &p.ShoeSize, &p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get style preferences: %w", err)
	}
	return &p, nil
}
