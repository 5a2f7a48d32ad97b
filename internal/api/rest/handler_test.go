package rest

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/feral-file/nft-bridge/internal/bridge"
	"github.com/feral-file/nft-bridge/internal/domain"
)

func TestMigrationStatusCode(t *testing.T) {
	tests := []struct {
		name     string
		checks   map[string]domain.TokenCheck
		expected int
	}{
		{
			name:     "no checks",
			checks:   map[string]domain.TokenCheck{},
			expected: http.StatusOK,
		},
		{
			name: "all tokens pass",
			checks: map[string]domain.TokenCheck{
				"1": {TokenID: "1"},
				"2": {TokenID: "2"},
			},
			expected: http.StatusOK,
		},
		{
			name: "ownership failure",
			checks: map[string]domain.TokenCheck{
				"1": {TokenID: "1", Reason: bridge.CheckWrongOwner},
			},
			expected: http.StatusBadRequest,
		},
		{
			name: "missing transfer outranks a bad request",
			checks: map[string]domain.TokenCheck{
				"1": {TokenID: "1", Reason: bridge.CheckWrongOwner},
				"2": {TokenID: "2", Reason: bridge.CheckNoTransferFound},
			},
			expected: http.StatusNotFound,
		},
		{
			name: "origin outage outranks everything",
			checks: map[string]domain.TokenCheck{
				"1": {TokenID: "1"},
				"2": {TokenID: "2", Reason: bridge.CheckNoTransferFound},
				"3": {TokenID: "3", Reason: bridge.CheckOriginUnavailable},
				"4": {TokenID: "4", Reason: bridge.CheckAlreadyMinted},
			},
			expected: http.StatusInternalServerError,
		},
		{
			name: "passing tokens do not mask failures",
			checks: map[string]domain.TokenCheck{
				"1": {TokenID: "1"},
				"2": {TokenID: "2", Reason: bridge.CheckAlreadyMinted},
			},
			expected: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := &domain.MigrationResult{Checks: tt.checks}
			assert.Equal(t, tt.expected, migrationStatusCode(result))
		})
	}
}
