package base

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
)

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(pgx.ErrNoRows))
	assert.True(t, IsNotFound(fmt.Errorf("get class by id: %w", pgx.ErrNoRows)))
	assert.False(t, IsNotFound(fmt.Errorf("connection refused")))
	assert.False(t, IsNotFound(nil))
}
