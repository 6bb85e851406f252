package exercise

import (
	"github.com/formsight/formsight/internal/pose"
)

// YogaAnalyzer checks a warrior-style hold pose. There is no stage
// machine; every frame evaluates a continuous correctness predicate over
// the camera-facing arm and front knee, and emits an event only when
// correctness flips.
type YogaAnalyzer struct {
	thresholds Thresholds
}

func NewYogaAnalyzer(thresholds Thresholds) *YogaAnalyzer {
	return &YogaAnalyzer{thresholds: thresholds}
}

func (a *YogaAnalyzer) Type() Type {
	return TypeYoga
}

func (a *YogaAnalyzer) Analyze(joints pose.Joints, state *State) Result {
	if !pose.Visible(a.thresholds.VisibilityMin,
		joints.LeftShoulder, joints.LeftElbow, joints.LeftWrist,
		joints.LeftHip, joints.LeftKnee, joints.LeftAnkle,
	) {
		return Result{Feedback: "Ensure your arm and front leg are visible"}
	}

	armAngle := pose.AngleAt(joints.LeftShoulder, joints.LeftElbow, joints.LeftWrist)
	kneeAngle := pose.AngleAt(joints.LeftHip, joints.LeftKnee, joints.LeftAnkle)

	armsExtended := armAngle > a.thresholds.HoldArmMinAngle
	kneeBentRight := kneeAngle > a.thresholds.HoldKneeMinAngle && kneeAngle < a.thresholds.HoldKneeMaxAngle
	correct := armsExtended && kneeBentRight

	var events []Event
	if correct != state.PoseCorrect {
		state.PoseCorrect = correct
		events = append(events, NewPoseCorrectnessEvent(correct))
	}

	if correct {
		if len(events) > 0 {
			return Result{Feedback: "Great form, hold this pose!", Events: events}
		}
		return Result{Feedback: "Keep holding, breathe steadily.", Events: events}
	}

	// failure priority: knee too bent, then knee not bent enough, then arms
	var feedback string
	switch {
	case kneeAngle <= a.thresholds.HoldKneeMinAngle:
		feedback = "Front knee is bent too much, open up a little."
	case kneeAngle >= a.thresholds.HoldKneeMaxAngle:
		feedback = "Bend your front knee more."
	default:
		feedback = "Extend your arms out straight."
	}
	return Result{Feedback: feedback, Events: events}
}
