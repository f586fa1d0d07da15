package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuditFields holds the timestamp columns shared by all tables.
type AuditFields struct {
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Account is a row of the accounts table.
type Account struct {
	AccountID     string          `db:"account_id"`
	CustomerID    string          `db:"customer_id"`
	AccountNumber string          `db:"account_number"`
	Status        string          `db:"status"`
	Balance       decimal.Decimal `db:"balance"`
	Version       int64           `db:"version"`
	AuditFields
}
