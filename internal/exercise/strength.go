package exercise

import (
	"github.com/formsight/formsight/internal/pose"
)

// StrengthAnalyzer tracks bicep curls through the left elbow angle.
//
// Stages: start/down (arm extended) and up (arm flexed). A rep is counted
// exactly once on the down->up transition, never while the angle
// oscillates within the flexed range.
type StrengthAnalyzer struct {
	thresholds Thresholds
}

func NewStrengthAnalyzer(thresholds Thresholds) *StrengthAnalyzer {
	return &StrengthAnalyzer{thresholds: thresholds}
}

func (a *StrengthAnalyzer) Type() Type {
	return TypeStrength
}

func (a *StrengthAnalyzer) Analyze(joints pose.Joints, state *State) Result {
	if !pose.Visible(a.thresholds.VisibilityMin, joints.LeftShoulder, joints.LeftElbow, joints.LeftWrist) {
		return Result{Feedback: "Ensure your left arm is fully visible"}
	}

	elbowAngle := pose.AngleAt(joints.LeftShoulder, joints.LeftElbow, joints.LeftWrist)

	switch {
	case elbowAngle > a.thresholds.CurlExtendedAngle:
		leavingUp := state.Stage == StageUp
		state.Stage = StageDown
		if leavingUp {
			return Result{Feedback: "Great rep! Lower slowly and go again."}
		}
		return Result{Feedback: "Arm extended. Curl up when ready."}

	case elbowAngle < a.thresholds.CurlFlexedAngle:
		// start behaves as down for the purpose of entry
		if state.Stage == StageDown || state.Stage == StageStart {
			state.Stage = StageUp
			state.RepCount++
			return Result{
				Feedback: "Peak contraction, squeeze it!",
				Events:   []Event{NewRepCompletedEvent()},
			}
		}
		return Result{Feedback: "Squeeze at the top, then extend back down."}

	default:
		return Result{Feedback: "Keep moving through the full range of motion."}
	}
}
