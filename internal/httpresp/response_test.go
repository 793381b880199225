package httpresp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/salonhub/salon-backend/internal/httpresp"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name       string
		total      int64
		page       int
		limit      int
		totalPages int
	}{
		{"empty", 0, 1, 10, 0},
		{"exact fit", 20, 1, 10, 2},
		{"partial last page", 21, 1, 10, 3},
		{"single record", 1, 1, 10, 1},
		{"limit one", 7, 3, 1, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := httpresp.NewPagination(tt.total, tt.page, tt.limit)
			assert.Equal(t, tt.total, p.Total)
			assert.Equal(t, tt.page, p.Page)
			assert.Equal(t, tt.limit, p.Limit)
			assert.Equal(t, tt.totalPages, p.TotalPages)
		})
	}
}
