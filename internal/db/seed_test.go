package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"setsync/internal/core/domain"
)

func TestDefaultContracts(t *testing.T) {
	contracts := DefaultContracts()
	require.Len(t, contracts, 2)

	ids := map[string]*domain.Contract{}
	for _, c := range contracts {
		assert.Equal(t, domain.SchemaVersion, c.Guardrails.SchemaVersion)
		assert.False(t, c.Guardrails.Timeframe.EndDate.Before(c.Guardrails.Timeframe.StartDate))
		ids[c.ContractID] = c
	}

	lvmh := ids["CNT-9988-LVMH"]
	require.NotNil(t, lvmh)
	assert.Equal(t, 100000.0, lvmh.Guardrails.Budget.TotalBudgetLimit)
	assert.Equal(t, "Mid-Roll Only", lvmh.Guardrails.Optimization.PlacementType)

	nike := ids["CNT-NIKE-VALENTINE"]
	require.NotNil(t, nike)
	assert.Equal(t, []string{"USA"}, nike.Guardrails.Audience.AllowedGeos)
	assert.Equal(t, "2026-02-14", nike.Guardrails.Timeframe.EndDate.String())
}
