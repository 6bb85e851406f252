package pose

// Landmark is a single tracked body point, as delivered by the external
// pose detector. Coordinates are normalized image coordinates (y grows
// downwards), Z is a rough depth estimate, and Visibility is the detector
// confidence in [0,1].
type Landmark struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Z          float64 `json:"z"`
	Visibility float64 `json:"visibility"`
}

// Landmark indices, fixed detector convention (33 landmarks per person).
// The adapter below relies on these and never reorders them.
const (
	IndexLeftShoulder  = 11
	IndexRightShoulder = 12
	IndexLeftElbow     = 13
	IndexRightElbow    = 14
	IndexLeftWrist     = 15
	IndexRightWrist    = 16
	IndexLeftHip       = 23
	IndexRightHip      = 24
	IndexLeftKnee      = 25
	IndexRightKnee     = 26
	IndexLeftAnkle     = 27
	IndexRightAnkle    = 28

	LandmarksTotal = 33
)

// Joints is the named subset of landmarks the exercise analyzers care
// about. Any field can be nil when the detector did not produce that
// landmark for the frame.
type Joints struct {
	LeftShoulder  *Landmark
	RightShoulder *Landmark
	LeftElbow     *Landmark
	RightElbow    *Landmark
	LeftWrist     *Landmark
	RightWrist    *Landmark
	LeftHip       *Landmark
	RightHip      *Landmark
	LeftKnee      *Landmark
	RightKnee     *Landmark
	LeftAnkle     *Landmark
	RightAnkle    *Landmark
}

// FromLandmarks builds the named joint set from a raw per-frame landmark
// slice by fixed-index lookup. Short or nil slices yield nil joints, never
// a panic.
func FromLandmarks(landmarks []*Landmark) Joints {
	at := func(i int) *Landmark {
		if i >= len(landmarks) {
			return nil
		}
		return landmarks[i]
	}
	return Joints{
		LeftShoulder:  at(IndexLeftShoulder),
		RightShoulder: at(IndexRightShoulder),
		LeftElbow:     at(IndexLeftElbow),
		RightElbow:    at(IndexRightElbow),
		LeftWrist:     at(IndexLeftWrist),
		RightWrist:    at(IndexRightWrist),
		LeftHip:       at(IndexLeftHip),
		RightHip:      at(IndexRightHip),
		LeftKnee:      at(IndexLeftKnee),
		RightKnee:     at(IndexRightKnee),
		LeftAnkle:     at(IndexLeftAnkle),
		RightAnkle:    at(IndexRightAnkle),
	}
}

// Visible reports whether all given landmarks are present and at or above
// the given visibility threshold.
func Visible(threshold float64, landmarks ...*Landmark) bool {
	for _, lm := range landmarks {
		if lm == nil || lm.Visibility < threshold {
			return false
		}
	}
	return true
}
