package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shoplite/pos-backend/internal/sales/domain"
)

// PostgresBillArchive persists bill summaries with raw SQL
type PostgresBillArchive struct {
	db *sql.DB
}

// NewPostgresBillArchive creates a new bill archive repository
func NewPostgresBillArchive(db *sql.DB) *PostgresBillArchive {
	return &PostgresBillArchive{db: db}
}

// Migrate creates the bills table if it does not exist
func (r *PostgresBillArchive) Migrate(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS bills (
			id          BIGSERIAL PRIMARY KEY,
			date        TIMESTAMPTZ NOT NULL,
			items       TEXT NOT NULL,
			total_price NUMERIC(12,2) NOT NULL,
			gst         NUMERIC(12,2) NOT NULL,
			final_price NUMERIC(12,2) NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("failed to create bills table: %w", err)
	}
	return nil
}

// Archive inserts one bill summary row
func (r *PostgresBillArchive) Archive(ctx context.Context, bill *domain.Bill) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO bills (date, items, total_price, gst, final_price)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		bill.Date, bill.Items,
		bill.TotalPrice.StringFixed(2), bill.GST.StringFixed(2), bill.FinalPrice.StringFixed(2),
	).Scan(&bill.ID)
	if err != nil {
		return fmt.Errorf("failed to archive bill: %w", err)
	}
	return nil
}
