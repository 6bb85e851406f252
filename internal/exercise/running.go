package exercise

import (
	"github.com/formsight/formsight/internal/pose"
)

// RunningAnalyzer checks running posture only, no reps. It compares the
// torso line (shoulder-hip-knee) against an upright threshold and speaks
// up only when correctness actually changes, so the feedback does not
// flicker at the frame rate.
type RunningAnalyzer struct {
	thresholds Thresholds
}

func NewRunningAnalyzer(thresholds Thresholds) *RunningAnalyzer {
	return &RunningAnalyzer{thresholds: thresholds}
}

func (a *RunningAnalyzer) Type() Type {
	return TypeRunning
}

func (a *RunningAnalyzer) Analyze(joints pose.Joints, state *State) Result {
	if !pose.Visible(a.thresholds.VisibilityMin,
		joints.LeftShoulder, joints.LeftHip, joints.LeftKnee,
	) {
		return Result{Feedback: "Ensure your torso and legs are visible"}
	}

	torsoAngle := pose.AngleAt(joints.LeftShoulder, joints.LeftHip, joints.LeftKnee)
	correct := torsoAngle >= a.thresholds.TorsoUprightMinAngle

	if correct == state.PoseCorrect {
		// unchanged, keep quiet
		return Result{}
	}

	state.PoseCorrect = correct
	events := []Event{NewPoseCorrectnessEvent(correct)}
	if correct {
		return Result{Feedback: "Nice upright posture, keep it up.", Events: events}
	}
	return Result{Feedback: "You're leaning too far forward, straighten your torso.", Events: events}
}
