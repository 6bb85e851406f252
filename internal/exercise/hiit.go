package exercise

import (
	"github.com/formsight/formsight/internal/pose"
)

// HIITAnalyzer tracks high knees. Raising a knee above the hip line moves
// the machine into left_up or right_up; every entry into a knee-up stage
// from a different stage counts one rep, so alternating raises count once
// each and a knee kept up does not re-count.
type HIITAnalyzer struct {
	thresholds Thresholds
}

func NewHIITAnalyzer(thresholds Thresholds) *HIITAnalyzer {
	return &HIITAnalyzer{thresholds: thresholds}
}

func (a *HIITAnalyzer) Type() Type {
	return TypeHIIT
}

func (a *HIITAnalyzer) Analyze(joints pose.Joints, state *State) Result {
	if !pose.Visible(a.thresholds.VisibilityMin,
		joints.LeftHip, joints.RightHip, joints.LeftKnee, joints.RightKnee,
	) {
		return Result{Feedback: "Ensure your hips and knees are visible"}
	}

	leftKneeUp := joints.LeftKnee.Y < joints.LeftHip.Y
	rightKneeUp := joints.RightKnee.Y < joints.RightHip.Y

	switch {
	case leftKneeUp && state.Stage != StageLeftUp:
		state.Stage = StageLeftUp
		state.RepCount++
		return Result{
			Feedback: "Left knee up, good!",
			Events:   []Event{NewRepCompletedEvent()},
		}

	case rightKneeUp && state.Stage != StageRightUp:
		state.Stage = StageRightUp
		state.RepCount++
		return Result{
			Feedback: "Right knee up, keep it moving!",
			Events:   []Event{NewRepCompletedEvent()},
		}

	case !leftKneeUp && !rightKneeUp:
		if state.Stage == StageLeftUp || state.Stage == StageRightUp {
			state.Stage = StageDown
		}
		return Result{Feedback: "Drive those knees up!"}

	default: // a knee that stays up does not re-count
		return Result{Feedback: "Now the other knee!"}
	}
}
