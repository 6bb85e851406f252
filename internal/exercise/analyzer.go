package exercise

import (
	"fmt"

	"github.com/formsight/formsight/internal/pose"
)

// Result of analyzing one frame: the feedback line shown to the user and
// zero or more discrete events for the counters and the trigger policy.
type Result struct {
	Feedback string
	Events   []Event
}

// Analyzer is a per-exercise state machine. Analyze is invoked once per
// frame with the frame's named joints and the mutable session state. It is
// re-entrant and keeps no state of its own - everything lives in State.
//
// Every implementation gates on landmark visibility first: a frame with
// unreliable joints produces corrective feedback and no state transition.
type Analyzer interface {
	Type() Type
	Analyze(joints pose.Joints, state *State) Result
}

// ForType returns the analyzer for the given exercise type.
func ForType(t Type, thresholds Thresholds) (Analyzer, error) {
	switch t {
	case TypeStrength:
		return NewStrengthAnalyzer(thresholds), nil
	case TypeCardio:
		return NewCardioAnalyzer(thresholds), nil
	case TypeYoga:
		return NewYogaAnalyzer(thresholds), nil
	case TypeHIIT:
		return NewHIITAnalyzer(thresholds), nil
	case TypeRunning:
		return NewRunningAnalyzer(thresholds), nil
	default:
		return nil, fmt.Errorf("unknown exercise type: %s", t)
	}
}
