package firestore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampCounter(t *testing.T) {
	tests := []struct {
		name     string
		value    int64
		expected int64
	}{
		{name: "positive stays", value: 4, expected: 4},
		{name: "zero stays", value: 0, expected: 0},
		{name: "decrement below zero floors", value: -1, expected: 0},
		{name: "deep negative floors", value: -42, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, clampCounter(tt.value))
		})
	}
}

func TestStoreRepository_IncrementCounter_UnknownCounter(t *testing.T) {
	repo := &storeRepository{}

	// The whitelist is checked before any document access.
	err := repo.IncrementCounter(context.Background(), "s1", "bogus", 1)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown counter")
}
