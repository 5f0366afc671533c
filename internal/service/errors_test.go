package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/example/storefront/internal/repo"
)

func TestMapRepoErr(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{name: "record not found", in: gorm.ErrRecordNotFound, want: ErrNotFound},
		{name: "email taken", in: repo.ErrEmailTaken, want: ErrConflict},
		{name: "duplicate key from a lost insert race", in: gorm.ErrDuplicatedKey, want: ErrConflict},
		{name: "missing parent", in: repo.ErrMissingParent, want: ErrReference},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, mapRepoErr(tt.in), tt.want)
		})
	}

	assert.NoError(t, mapRepoErr(nil))

	other := errors.New("connection reset")
	assert.Equal(t, other, mapRepoErr(other))
}
