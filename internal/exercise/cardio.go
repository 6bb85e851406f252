package exercise

import (
	"math"

	"github.com/formsight/formsight/internal/pose"
)

// CardioAnalyzer tracks jumping jacks. A rep needs both conditions at
// once: legs spread wider than the hips and both wrists above both
// shoulders. One condition alone produces a nudge for the missing one and
// no stage transition.
type CardioAnalyzer struct {
	thresholds Thresholds
}

func NewCardioAnalyzer(thresholds Thresholds) *CardioAnalyzer {
	return &CardioAnalyzer{thresholds: thresholds}
}

func (a *CardioAnalyzer) Type() Type {
	return TypeCardio
}

func (a *CardioAnalyzer) Analyze(joints pose.Joints, state *State) Result {
	if !pose.Visible(a.thresholds.VisibilityMin,
		joints.LeftShoulder, joints.RightShoulder,
		joints.LeftWrist, joints.RightWrist,
		joints.LeftHip, joints.RightHip,
		joints.LeftAnkle, joints.RightAnkle,
	) {
		return Result{Feedback: "Ensure your whole body is visible"}
	}

	ankleSpread := math.Abs(joints.LeftAnkle.X - joints.RightAnkle.X)
	hipSpread := math.Abs(joints.LeftHip.X - joints.RightHip.X)
	legsApart := ankleSpread > a.thresholds.JackLegSpreadRatio*hipSpread

	// y grows downwards: above means smaller y
	armsUp := joints.LeftWrist.Y < joints.LeftShoulder.Y &&
		joints.LeftWrist.Y < joints.RightShoulder.Y &&
		joints.RightWrist.Y < joints.LeftShoulder.Y &&
		joints.RightWrist.Y < joints.RightShoulder.Y

	switch {
	case legsApart && armsUp:
		if state.Stage == StageDown {
			state.Stage = StageUp
			state.RepCount++
			return Result{
				Feedback: "Nice jump!",
				Events:   []Event{NewRepCompletedEvent()},
			}
		}
		return Result{Feedback: "Good, now back down."}

	case !legsApart && !armsUp:
		if state.Stage == StageUp {
			state.Stage = StageDown
			return Result{Feedback: "Ready for the next jump."}
		}
		return Result{Feedback: "Jump out with your arms overhead!"}

	case legsApart: // arms still down
		return Result{Feedback: "Bring your arms up!"}

	default: // arms up, feet together
		return Result{Feedback: "Jump your feet out!"}
	}
}
