package exercise_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formsight/formsight/internal/exercise"
)

func TestHIITAnalyzer_AlternatingKneesCount(t *testing.T) {
	analyzer := exercise.NewHIITAnalyzer(exercise.DefaultThresholds())
	state := exercise.NewState(exercise.TypeHIIT)

	result := analyzer.Analyze(kneesJoints(true, false), state)
	require.Len(t, result.Events, 1)
	assert.Equal(t, 1, state.RepCount)
	assert.Equal(t, exercise.StageLeftUp, state.Stage)

	// a knee that stays up does not re-count
	result = analyzer.Analyze(kneesJoints(true, false), state)
	assert.Empty(t, result.Events)
	assert.Equal(t, 1, state.RepCount)

	result = analyzer.Analyze(kneesJoints(false, false), state)
	assert.Empty(t, result.Events)
	assert.Equal(t, exercise.StageDown, state.Stage)
	assert.Equal(t, "Drive those knees up!", result.Feedback)

	result = analyzer.Analyze(kneesJoints(false, true), state)
	require.Len(t, result.Events, 1)
	assert.Equal(t, 2, state.RepCount)
	assert.Equal(t, exercise.StageRightUp, state.Stage)
}

func TestHIITAnalyzer_DirectSwitchCounts(t *testing.T) {
	analyzer := exercise.NewHIITAnalyzer(exercise.DefaultThresholds())
	state := exercise.NewState(exercise.TypeHIIT)

	// left up, then an immediate switch to the right knee without a
	// clean down frame in between still counts both raises
	analyzer.Analyze(kneesJoints(true, false), state)
	result := analyzer.Analyze(kneesJoints(false, true), state)

	require.Len(t, result.Events, 1)
	assert.Equal(t, 2, state.RepCount)
	assert.Equal(t, exercise.StageRightUp, state.Stage)
}

func TestHIITAnalyzer_VisibilityGate(t *testing.T) {
	analyzer := exercise.NewHIITAnalyzer(exercise.DefaultThresholds())
	state := exercise.NewState(exercise.TypeHIIT)

	joints := kneesJoints(true, false)
	joints.LeftHip = nil

	result := analyzer.Analyze(joints, state)
	assert.Equal(t, "Ensure your hips and knees are visible", result.Feedback)
	assert.Equal(t, 0, state.RepCount)
	assert.Equal(t, exercise.StageDown, state.Stage)
}
