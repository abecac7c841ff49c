package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateRejectsUnknownDriver(t *testing.T) {
	err := Migrate("nosuchdb://localhost/setsync")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connect migrator")
}
