package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name       string
		page, size int
		offset     int
		limit      int
	}{
		{name: "defaults", page: 1, size: 10, offset: 0, limit: 10},
		{name: "second page", page: 2, size: 10, offset: 10, limit: 10},
		{name: "zero page clamps", page: 0, size: 5, offset: 0, limit: 5},
		{name: "negative size falls back", page: 1, size: -1, offset: 0, limit: DefaultPageSize},
		{name: "oversized falls back", page: 3, size: 1000, offset: 20, limit: DefaultPageSize},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			offset, limit := Calculate(tt.page, tt.size)
			assert.Equal(t, tt.offset, offset)
			assert.Equal(t, tt.limit, limit)
		})
	}
}
