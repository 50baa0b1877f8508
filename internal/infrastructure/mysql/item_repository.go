package mysql

import (
	"context"
	"database/sql"
	"strings"

	"auction-engine/internal/domain"

	_ "github.com/go-sql-driver/mysql"
	"github.com/shopspring/decimal"
)

type MySQLItemRepository struct {
	db *sql.DB
}

func NewMySQLItemRepository(db *sql.DB) *MySQLItemRepository {
	return &MySQLItemRepository{db: db}
}

const itemColumns = `item_id, seller_id, title, description, starting_price, current_price,
        minimum_price, auction_type, status, current_winner_id, created_at, end_time,
        payment_status, payment_time`

// SaveItem is an idempotent upsert keyed by item_id.
func (r *MySQLItemRepository) SaveItem(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	query := `
        INSERT INTO items (` + itemColumns + `)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
        ON DUPLICATE KEY UPDATE
            seller_id = VALUES(seller_id),
            title = VALUES(title),
            description = VALUES(description),
            starting_price = VALUES(starting_price),
            current_price = VALUES(current_price),
            minimum_price = VALUES(minimum_price),
            auction_type = VALUES(auction_type),
            status = VALUES(status),
            current_winner_id = VALUES(current_winner_id),
            end_time = VALUES(end_time),
            payment_status = VALUES(payment_status),
            payment_time = VALUES(payment_time)
    `

	var minimumPrice decimal.NullDecimal
	if item.MinimumPrice != nil {
		minimumPrice = decimal.NullDecimal{Decimal: *item.MinimumPrice, Valid: true}
	}

	var winnerID sql.NullString
	if item.CurrentWinnerID != nil {
		winnerID = sql.NullString{String: *item.CurrentWinnerID, Valid: true}
	}

	var endTime, paymentTime sql.NullTime
	if item.EndTime != nil {
		endTime = sql.NullTime{Time: *item.EndTime, Valid: true}
	}
	if item.PaymentTime != nil {
		paymentTime = sql.NullTime{Time: *item.PaymentTime, Valid: true}
	}

	_, err := r.db.ExecContext(ctx, query,
		item.ID, item.SellerID, item.Title, item.Description,
		item.StartingPrice, item.CurrentPrice, minimumPrice,
		string(item.AuctionType), string(item.Status), winnerID,
		item.CreatedAt, endTime, string(item.PaymentStatus), paymentTime)
	if err != nil {
		return nil, err
	}
	return item.Clone(), nil
}

func (r *MySQLItemRepository) GetItem(ctx context.Context, itemID string) (*domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE item_id = ?`

	row := r.db.QueryRowContext(ctx, query, itemID)
	item, err := scanItem(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return item, err
}

func (r *MySQLItemRepository) ListItems(ctx context.Context) ([]*domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items ORDER BY created_at, item_id`
	return r.queryItems(ctx, query)
}

func (r *MySQLItemRepository) ListItemsByStatus(ctx context.Context, status domain.ItemStatus) ([]*domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE status = ? ORDER BY created_at, item_id`
	return r.queryItems(ctx, query, string(status))
}

func (r *MySQLItemRepository) ListItemsBySeller(ctx context.Context, sellerID string) ([]*domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE seller_id = ? ORDER BY created_at, item_id`
	return r.queryItems(ctx, query, sellerID)
}

func (r *MySQLItemRepository) SearchItems(ctx context.Context, query string) ([]*domain.Item, error) {
	stmt := `
        SELECT ` + itemColumns + ` FROM items
        WHERE LOWER(title) LIKE ? OR LOWER(description) LIKE ?
        ORDER BY created_at, item_id
    `
	pattern := "%" + strings.ToLower(query) + "%"
	return r.queryItems(ctx, stmt, pattern, pattern)
}

func (r *MySQLItemRepository) queryItems(ctx context.Context, query string, args ...interface{}) ([]*domain.Item, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*domain.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanItem(row rowScanner) (*domain.Item, error) {
	var item domain.Item
	var auctionType, status, paymentStatus string
	var minimumPrice decimal.NullDecimal
	var winnerID sql.NullString
	var endTime, paymentTime sql.NullTime

	err := row.Scan(
		&item.ID, &item.SellerID, &item.Title, &item.Description,
		&item.StartingPrice, &item.CurrentPrice, &minimumPrice,
		&auctionType, &status, &winnerID,
		&item.CreatedAt, &endTime, &paymentStatus, &paymentTime)
	if err != nil {
		return nil, err
	}

	// Reject unknown flag values at the storage boundary instead of deep in
	// business logic.
	if item.AuctionType, err = domain.ParseAuctionType(auctionType); err != nil {
		return nil, err
	}
	if item.Status, err = domain.ParseItemStatus(status); err != nil {
		return nil, err
	}
	if item.PaymentStatus, err = domain.ParsePaymentStatus(paymentStatus); err != nil {
		return nil, err
	}

	if minimumPrice.Valid {
		item.MinimumPrice = &minimumPrice.Decimal
	}
	if winnerID.Valid {
		item.CurrentWinnerID = &winnerID.String
	}
	if endTime.Valid {
		item.EndTime = &endTime.Time
	}
	if paymentTime.Valid {
		item.PaymentTime = &paymentTime.Time
	}
	return &item, nil
}
