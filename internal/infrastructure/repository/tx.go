package repository

import (
	"context"

	domainRepo "github.com/sangkips/leadtrack-api/internal/domain/repository"
	"gorm.io/gorm"
)

type txKey struct{}

// TxManager runs functions inside a single GORM transaction. The open
// transaction handle is carried in the context so that every repository
// call made with that context joins the same transaction.
type TxManager struct {
	db *gorm.DB
}

// NewTxManager creates a new transaction manager
func NewTxManager(db *gorm.DB) domainRepo.Transactor {
	return &TxManager{db: db}
}

// Transaction executes fn inside one transaction. Any error returned by
// fn rolls the whole transaction back.
func (m *TxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// dbFrom resolves the DB handle for a call: the transaction carried in
// the context when present, the repository's own handle otherwise.
func dbFrom(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return fallback.WithContext(ctx)
}
