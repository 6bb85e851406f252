package coaching

import "github.com/formsight/formsight/internal/exercise"

// Request carries everything the external coaching service needs to write
// a short comment about the current moment of the workout. Ownership
// transfers to the trigger policy on dispatch.
type Request struct {
	Exercise      exercise.Type `json:"exercise"`
	Reps          int           `json:"reps,omitempty"`
	HoldSeconds   int           `json:"holdSeconds,omitempty"`
	DetectedIssue string        `json:"detectedIssue"`
	PoseSummary   string        `json:"poseSummary"`
}
