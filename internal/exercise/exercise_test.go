package exercise_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formsight/formsight/internal/exercise"
)

func TestType_IsValid(t *testing.T) {
	for _, validType := range []exercise.Type{
		exercise.TypeStrength, exercise.TypeCardio, exercise.TypeYoga,
		exercise.TypeHIIT, exercise.TypeRunning,
	} {
		assert.True(t, validType.IsValid())
	}
	assert.False(t, exercise.Type("pilates").IsValid())
	assert.False(t, exercise.Type("").IsValid())
}

func TestType_IsHoldType(t *testing.T) {
	assert.True(t, exercise.TypeYoga.IsHoldType())
	assert.True(t, exercise.TypeRunning.IsHoldType())
	assert.False(t, exercise.TypeStrength.IsHoldType())
	assert.False(t, exercise.TypeCardio.IsHoldType())
	assert.False(t, exercise.TypeHIIT.IsHoldType())
}

func TestNewState(t *testing.T) {
	state := exercise.NewState(exercise.TypeHIIT)
	assert.Equal(t, exercise.StageDown, state.Stage)
	assert.Equal(t, 0, state.RepCount)
	assert.Equal(t, 0, state.HoldSeconds)
	assert.Equal(t, 0, state.LastTriggerMark)
	assert.False(t, state.PoseCorrect)

	state = exercise.NewState(exercise.TypeStrength)
	assert.Equal(t, exercise.StageStart, state.Stage)
}

func TestForType(t *testing.T) {
	thresholds := exercise.DefaultThresholds()
	for _, exerciseType := range []exercise.Type{
		exercise.TypeStrength, exercise.TypeCardio, exercise.TypeYoga,
		exercise.TypeHIIT, exercise.TypeRunning,
	} {
		analyzer, err := exercise.ForType(exerciseType, thresholds)
		require.NoError(t, err)
		assert.Equal(t, exerciseType, analyzer.Type())
	}

	_, err := exercise.ForType("pilates", thresholds)
	assert.Error(t, err)
}
