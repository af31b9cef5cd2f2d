package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestGenerateUUIDv7(t *testing.T) {
	id := GenerateUUIDv7()
	assert.NotEqual(t, uuid.Nil, id)
	assert.Equal(t, uuid.Version(7), id.Version())
}

func TestParseID(t *testing.T) {
	id := uuid.New()
	got, ok := ParseID(" " + id.String() + " ")
	assert.True(t, ok)
	assert.Equal(t, id, got)

	_, ok = ParseID("507f1f77bcf86cd799439011")
	assert.False(t, ok)
	_, ok = ParseID(uuid.Nil.String())
	assert.False(t, ok)
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "jane@gatech.edu", NormalizeEmail("  Jane@GaTech.EDU "))
}
