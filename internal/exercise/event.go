package exercise

// EventType can be one of:
//   - rep_completed
//   - pose_correctness_changed
type EventType string

const (
	EventTypeRepCompleted           EventType = "rep_completed"
	EventTypePoseCorrectnessChanged EventType = "pose_correctness_changed"
)

func (et EventType) String() string {
	return string(et)
}

// Event is a discrete outcome of analyzing a single frame, consumed by the
// session counters and the coaching trigger policy.
type Event struct {
	Type EventType
	// PoseCorrect is set for pose_correctness_changed events only
	PoseCorrect bool
}

func NewRepCompletedEvent() Event {
	return Event{Type: EventTypeRepCompleted}
}

func NewPoseCorrectnessEvent(correct bool) Event {
	return Event{
		Type:        EventTypePoseCorrectnessChanged,
		PoseCorrect: correct,
	}
}
