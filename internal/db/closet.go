package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// AddClosetItem inserts a garment into the user's closet and returns the stored row
func (db *DB) AddClosetItem(ctx context.Context, item *ClosetItem) (*ClosetItem, error) {
	var stored ClosetItem
	err := db.pool.QueryRow(ctx,
		`INSERT INTO closet_items (user_id, category, subcategory, brand, color, size, is_favorite)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, user_id, category, COALESCE(subcategory, ''), COALESCE(brand, ''), COALESCE(color, ''), COALESCE(size, ''), is_favorite, added_at`,
		item.UserID, item.Category, item.Subcategory, item.Brand, item.Color, item.Size, item.IsFavorite,
	).Scan(&stored.ID, &stored.UserID, &stored.Category, &stored.Subcategory,
		&stored.Brand, &stored.Color, &stored.Size, &stored.IsFavorite, &stored.AddedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to add closet item: %w", err)
	}
	return &stored, nil
}

// ListClosetItems retrieves all closet items for a user, oldest first
func (db *DB) ListClosetItems(ctx context.Context, userID uuid.UUID) ([]ClosetItem, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, category, COALESCE(subcategory, ''), COALESCE(brand, ''), COALESCE(color, ''), COALESCE(size, ''), is_favorite, added_at
		 FROM closet_items WHERE user_id = $1 ORDER BY added_at ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list closet items: %w", err)
	}
	defer rows.Close()

	var items []ClosetItem
	for rows.Next() {
		var item ClosetItem
		if err := rows.Scan(&item.ID, &item.UserID, &item.Category, &item.Subcategory,
			&item.Brand, &item.Color, &item.Size, &item.IsFavorite, &item.AddedAt); err != nil {
			return nil, fmt.Errorf("failed to scan closet item: %w", err)
		}
		items = append(items, item)
	}
	return items, nil
}

// DeleteClosetItem removes a closet item owned by the user
func (db *DB) DeleteClosetItem(ctx context.Context, userID, itemID uuid.UUID) error {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM closet_items WHERE id = $1 AND user_id = $2`,
		itemID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete closet item: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("closet item not found: %s", itemID)
	}
	return nil
}
