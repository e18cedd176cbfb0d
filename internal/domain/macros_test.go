package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goorum04/Nlvip-sub000/pkg/errors"
)

func TestComputeMacros(t *testing.T) {
	t.Run("fat loss cuts calories", func(t *testing.T) {
		plan, err := ComputeMacros(GoalFatLoss, 80)
		require.NoError(t, err)

		assert.Equal(t, 1920, plan.Calories) // 24 kcal/kg
		assert.Equal(t, 160, plan.ProteinG)  // 2 g/kg
		assert.Equal(t, 72, plan.FatG)       // 0.9 g/kg
		// Remaining calories in carbs: (1920 - 160*4 - 72*9) / 4
		assert.Equal(t, 158, plan.CarbsG)
	})

	t.Run("maintenance", func(t *testing.T) {
		plan, err := ComputeMacros(GoalMaintain, 80)
		require.NoError(t, err)
		assert.Equal(t, 2240, plan.Calories)
	})

	t.Run("muscle gain adds surplus", func(t *testing.T) {
		plan, err := ComputeMacros(GoalMuscleGain, 80)
		require.NoError(t, err)
		assert.Equal(t, 2480, plan.Calories)
		assert.Greater(t, plan.CarbsG, 0)
	})

	t.Run("unknown goal", func(t *testing.T) {
		_, err := ComputeMacros(Goal("bulk"), 80)
		assert.True(t, errors.Is(err, errors.ErrInvalidInput))
	})

	t.Run("invalid weight", func(t *testing.T) {
		_, err := ComputeMacros(GoalMaintain, 0)
		assert.True(t, errors.Is(err, errors.ErrInvalidInput))

		_, err = ComputeMacros(GoalMaintain, -70)
		assert.True(t, errors.Is(err, errors.ErrInvalidInput))
	})

	t.Run("carbs never negative", func(t *testing.T) {
		// Tiny weights keep protein and fat above total energy
		plan, err := ComputeMacros(GoalFatLoss, 1)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, plan.CarbsG, 0)
	})
}

func TestGoalLabel(t *testing.T) {
	assert.Equal(t, "pérdida de grasa", GoalLabel(GoalFatLoss))
	assert.Equal(t, "mantenimiento", GoalLabel(GoalMaintain))
	assert.Equal(t, "ganar músculo", GoalLabel(GoalMuscleGain))
	assert.Equal(t, "custom", GoalLabel(Goal("custom")))
}

func TestRenderDietPlan(t *testing.T) {
	plan, err := ComputeMacros(GoalMaintain, 75)
	require.NoError(t, err)

	content := RenderDietPlan(plan)

	assert.True(t, strings.HasPrefix(content, "# PROGRAMA NUTRICIONAL"))
	assert.Contains(t, content, "2100 kcal")
	assert.Contains(t, content, "REGLAS GENERALES")
	assert.Contains(t, content, "SUPLEMENTACIÓN")
	assert.Contains(t, content, "FLUIDOS")
	assert.Contains(t, content, "DESCARGO DE RESPONSABILIDAD")
}
