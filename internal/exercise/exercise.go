package exercise

// Type of the exercise being analyzed. Selected by the client app, one
// active exercise per session.
type Type string

const (
	TypeStrength Type = "strength" // bicep curls
	TypeCardio   Type = "cardio"   // jumping jacks
	TypeYoga     Type = "yoga"     // warrior pose hold
	TypeHIIT     Type = "hiit"     // high knees
	TypeRunning  Type = "running"  // running form / posture
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeStrength, TypeCardio, TypeYoga, TypeHIIT, TypeRunning:
		return true
	default:
		return false
	}
}

// IsHoldType reports whether the exercise is scored by sustained correct
// posture duration rather than repetitions.
func (t Type) IsHoldType() bool {
	return t == TypeYoga || t == TypeRunning
}

// Stage is the discrete phase of an exercise motion cycle.
type Stage string

const (
	StageStart   Stage = "start"
	StageDown    Stage = "down"
	StageUp      Stage = "up"
	StageLeftUp  Stage = "left_up"
	StageRightUp Stage = "right_up"
)

// InitialStage returns the stage a fresh session of this exercise starts
// in. Start behaves as down for the purpose of rep detection.
func (t Type) InitialStage() Stage {
	switch t {
	case TypeCardio, TypeHIIT:
		return StageDown
	default:
		return StageStart
	}
}

// State is the mutable per-session exercise state. It is owned by the
// session manager, mutated only by the active analyzer and the hold timer
// tick, and fully replaced on every exercise switch.
type State struct {
	Exercise        Type  `json:"exercise"`
	Stage           Stage `json:"stage"`
	RepCount        int   `json:"repCount"`
	HoldSeconds     int   `json:"holdSeconds"`
	PoseCorrect     bool  `json:"poseCorrect"`
	LastTriggerMark int   `json:"-"`
}

func NewState(t Type) *State {
	return &State{
		Exercise: t,
		Stage:    t.InitialStage(),
	}
}
