package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
	domainRepo "github.com/sangkips/solarpower/internal/domain/repository"
	"gorm.io/gorm"
)

type ctxKey string

// TxKey is the context key holding the active *gorm.DB transaction
const TxKey ctxKey = "gorm_tx"

// WithTx binds tx to ctx so repository calls made with it join the transaction
func WithTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, TxKey, tx)
}

// GetTx extracts the active transaction from context
func GetTx(ctx context.Context) (*gorm.DB, bool) {
	tx, ok := ctx.Value(TxKey).(*gorm.DB)
	return tx, ok
}

// conn returns the transaction bound to ctx, falling back to db
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := GetTx(ctx); ok {
		return tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}

// translateError maps gorm constraint errors to the domain errors services check for.
// It relies on gorm.Config.TranslateError being enabled.
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", domainRepo.ErrDuplicateKey, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated), isSQLiteForeignKey(err):
		return fmt.Errorf("%w: %v", domainRepo.ErrForeignKey, err)
	}
	return err
}

// isSQLiteForeignKey reports foreign key failures the sqlite translator leaves
// untouched. ON DELETE RESTRICT is enforced by sqlite as a trigger, so it
// surfaces as SQLITE_CONSTRAINT_TRIGGER rather than SQLITE_CONSTRAINT_FOREIGNKEY.
func isSQLiteForeignKey(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintForeignKey, sqlite3.ErrConstraintTrigger:
		return true
	}
	return false
}

type transactor struct {
	db *gorm.DB
}

// NewTransactor creates a transaction runner over db
func NewTransactor(db *gorm.DB) domainRepo.Transactor {
	return &transactor{db: db}
}

// WithinTransaction runs fn in a transaction. A call nested inside an
// existing transaction reuses it instead of opening a new one.
func (t *transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := GetTx(ctx); ok {
		return fn(ctx)
	}
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(WithTx(ctx, tx))
	})
}
