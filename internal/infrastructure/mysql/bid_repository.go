package mysql

import (
	"context"
	"database/sql"

	"auction-engine/internal/domain"
)

type MySQLBidRepository struct {
	db *sql.DB
}

func NewMySQLBidRepository(db *sql.DB) *MySQLBidRepository {
	return &MySQLBidRepository{db: db}
}

func (r *MySQLBidRepository) SaveBid(ctx context.Context, bid *domain.Bid) (*domain.Bid, error) {
	query := `
        INSERT INTO bids (bid_id, item_id, bidder_id, amount, bid_time)
        VALUES (?, ?, ?, ?, ?)
    `
	_, err := r.db.ExecContext(ctx, query,
		bid.ID, bid.ItemID, bid.BidderID, bid.Amount, bid.BidTime)
	if err != nil {
		return nil, err
	}

	saved := *bid
	return &saved, nil
}

func (r *MySQLBidRepository) ListBidsForItem(ctx context.Context, itemID string) ([]*domain.Bid, error) {
	query := `
        SELECT bid_id, item_id, bidder_id, amount, bid_time
        FROM bids
        WHERE item_id = ?
        ORDER BY amount DESC, bid_time ASC, bid_id ASC
    `

	rows, err := r.db.QueryContext(ctx, query, itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bids []*domain.Bid
	for rows.Next() {
		var bid domain.Bid
		err := rows.Scan(&bid.ID, &bid.ItemID, &bid.BidderID, &bid.Amount, &bid.BidTime)
		if err != nil {
			return nil, err
		}
		bids = append(bids, &bid)
	}
	return bids, rows.Err()
}
