package mysql

import (
	"context"
	"database/sql"

	"auction-engine/internal/domain"
)

// MySQLUserDirectory reads display data from the upstream identity service's
// users table. Read-only to this engine.
type MySQLUserDirectory struct {
	db *sql.DB
}

func NewMySQLUserDirectory(db *sql.DB) *MySQLUserDirectory {
	return &MySQLUserDirectory{db: db}
}

func (d *MySQLUserDirectory) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	query := `
        SELECT user_id, username, first_name, last_name, email
        FROM users WHERE user_id = ?
    `

	var user domain.User
	err := d.db.QueryRowContext(ctx, query, userID).Scan(
		&user.ID, &user.Username, &user.FirstName, &user.LastName, &user.Email)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
