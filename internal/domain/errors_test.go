package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorPredicates(t *testing.T) {
	notFound := NewNotFound("item with id %d not found", 7)
	forbidden := NewForbidden("authorization failed")
	validation := NewValidation("item with id %d is not available", 7)
	conflict := NewConflict("user with email %s already exists", "a@b.c")
	unsupported := NewUnsupportedState("Unknown state: %s", "SOON")

	assert.Equal(t, "item with id 7 not found", notFound.Error())
	assert.Equal(t, "Unknown state: SOON", unsupported.Error())

	assert.True(t, IsNotFound(notFound))
	assert.True(t, IsForbidden(forbidden))
	assert.True(t, IsValidation(validation))
	assert.True(t, IsConflict(conflict))
	assert.True(t, IsUnsupportedState(unsupported))

	// Each predicate matches only its own type.
	assert.False(t, IsNotFound(forbidden))
	assert.False(t, IsForbidden(notFound))
	assert.False(t, IsValidation(unsupported))
	assert.False(t, IsUnsupportedState(validation))
	assert.False(t, IsConflict(validation))
}

func TestErrorPredicatesThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("creating booking: %w", NewNotFound("user with id 3 not found"))
	assert.True(t, IsNotFound(wrapped))
	assert.False(t, IsValidation(wrapped))
}
