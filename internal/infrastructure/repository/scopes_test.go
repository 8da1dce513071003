package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/mattn/go-sqlite3"
	domainRepo "github.com/sangkips/solarpower/internal/domain/repository"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTranslateError(t *testing.T) {
	other := errors.New("connection reset")

	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "duplicate key", err: gorm.ErrDuplicatedKey, want: domainRepo.ErrDuplicateKey},
		{name: "translated foreign key", err: gorm.ErrForeignKeyViolated, want: domainRepo.ErrForeignKey},
		{
			name: "sqlite restrict trigger",
			err:  sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintTrigger},
			want: domainRepo.ErrForeignKey,
		},
		{
			name: "wrapped sqlite foreign key",
			err:  fmt.Errorf("delete: %w", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}),
			want: domainRepo.ErrForeignKey,
		},
		{name: "unrelated", err: other, want: other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, translateError(tt.err), tt.want)
		})
	}

	assert.NoError(t, translateError(nil))

	unique := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}
	assert.False(t, errors.Is(translateError(unique), domainRepo.ErrForeignKey))
}
