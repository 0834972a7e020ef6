package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateTotalPages(t *testing.T) {
	cases := []struct {
		name    string
		total   int64
		perPage int
		want    int
	}{
		{"exact multiple", 20, 10, 2},
		{"partial last page", 21, 10, 3},
		{"single item", 1, 10, 1},
		{"empty", 0, 10, 0},
		{"zero per page", 20, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CalculateTotalPages(tc.total, tc.perPage))
		})
	}
}

func TestCalculateOffset(t *testing.T) {
	cases := []struct {
		name    string
		page    int
		perPage int
		want    int
	}{
		{"first page", 1, 10, 0},
		{"second page", 2, 10, 10},
		{"fifth page", 5, 20, 80},
		{"zero page clamps", 0, 10, 0},
		{"negative page clamps", -3, 10, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CalculateOffset(tc.page, tc.perPage))
		})
	}
}

func TestParseInt(t *testing.T) {
	cases := []struct {
		name  string
		value string
		def   int
		want  int
	}{
		{"valid number", "7", 1, 7},
		{"empty falls back", "", 1, 1},
		{"garbage falls back", "abc", 1, 1},
		{"zero falls back", "0", 1, 1},
		{"negative falls back", "-2", 1, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseInt(tc.value, tc.def))
		})
	}
}
