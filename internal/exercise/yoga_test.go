package exercise_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formsight/formsight/internal/exercise"
)

func TestYogaAnalyzer_CorrectnessFlips(t *testing.T) {
	analyzer := exercise.NewYogaAnalyzer(exercise.DefaultThresholds())
	state := exercise.NewState(exercise.TypeYoga)

	// entering correctness emits exactly one event
	result := analyzer.Analyze(holdJoints(true, 100), state)
	require.Len(t, result.Events, 1)
	assert.Equal(t, exercise.EventTypePoseCorrectnessChanged, result.Events[0].Type)
	assert.True(t, result.Events[0].PoseCorrect)
	assert.True(t, state.PoseCorrect)
	assert.Equal(t, "Great form, hold this pose!", result.Feedback)

	// staying correct: encouragement, no event
	result = analyzer.Analyze(holdJoints(true, 100), state)
	assert.Empty(t, result.Events)
	assert.Equal(t, "Keep holding, breathe steadily.", result.Feedback)

	// losing correctness emits the flip event
	result = analyzer.Analyze(holdJoints(false, 100), state)
	require.Len(t, result.Events, 1)
	assert.False(t, result.Events[0].PoseCorrect)
	assert.False(t, state.PoseCorrect)
}

func TestYogaAnalyzer_FailurePriority(t *testing.T) {
	analyzer := exercise.NewYogaAnalyzer(exercise.DefaultThresholds())

	testCases := []struct {
		name             string
		armStraight      bool
		kneeAngle        float64
		expectedFeedback string
	}{
		{
			// knee too bent wins even when the arms fail too
			name:        "knee_too_bent_beats_arms",
			armStraight: false, kneeAngle: 60,
			expectedFeedback: "Front knee is bent too much, open up a little.",
		},
		{
			name:        "knee_not_bent_enough_beats_arms",
			armStraight: false, kneeAngle: 150,
			expectedFeedback: "Bend your front knee more.",
		},
		{
			name:        "arms_last",
			armStraight: false, kneeAngle: 100,
			expectedFeedback: "Extend your arms out straight.",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			state := exercise.NewState(exercise.TypeYoga)
			result := analyzer.Analyze(holdJoints(tc.armStraight, tc.kneeAngle), state)
			assert.Equal(t, tc.expectedFeedback, result.Feedback)
			assert.False(t, state.PoseCorrect)
		})
	}
}

func TestYogaAnalyzer_VisibilityGate(t *testing.T) {
	analyzer := exercise.NewYogaAnalyzer(exercise.DefaultThresholds())
	state := exercise.NewState(exercise.TypeYoga)
	state.PoseCorrect = true

	joints := holdJoints(true, 100)
	joints.LeftAnkle.Visibility = 0.1

	result := analyzer.Analyze(joints, state)
	assert.Equal(t, "Ensure your arm and front leg are visible", result.Feedback)
	assert.Empty(t, result.Events)
	// correctness is not re-evaluated on unreliable frames
	assert.True(t, state.PoseCorrect)
}
