package exercise

import "errors"

// Thresholds are the tunable angle and ratio limits driving the state
// machines. Defaults below work well for a camera roughly at chest height;
// per-exercise overrides can be stored in the database (see Repo) so form
// tuning does not need a redeploy.
type Thresholds struct {
	// VisibilityMin is the minimum landmark confidence below which a frame
	// is treated as unreliable and no state transition happens.
	VisibilityMin float64 `json:"visibilityMin"`

	// strength (bicep curl)
	CurlExtendedAngle float64 `json:"curlExtendedAngle"`
	CurlFlexedAngle   float64 `json:"curlFlexedAngle"`

	// cardio (jumping jack)
	JackLegSpreadRatio float64 `json:"jackLegSpreadRatio"`

	// yoga (warrior hold)
	HoldArmMinAngle  float64 `json:"holdArmMinAngle"`
	HoldKneeMinAngle float64 `json:"holdKneeMinAngle"`
	HoldKneeMaxAngle float64 `json:"holdKneeMaxAngle"`

	// running form
	TorsoUprightMinAngle float64 `json:"torsoUprightMinAngle"`
}

// Validate rejects override sets that would wedge a state machine, e.g.
// a curl flexed angle above the extended angle means no rep can ever
// complete.
func (t Thresholds) Validate() error {
	if t.VisibilityMin <= 0 || t.VisibilityMin > 1 {
		return errors.New("visibilityMin must be in (0, 1]")
	}
	if t.CurlFlexedAngle >= t.CurlExtendedAngle {
		return errors.New("curlFlexedAngle must be below curlExtendedAngle")
	}
	if t.JackLegSpreadRatio <= 0 {
		return errors.New("jackLegSpreadRatio must be positive")
	}
	if t.HoldKneeMinAngle >= t.HoldKneeMaxAngle {
		return errors.New("holdKneeMinAngle must be below holdKneeMaxAngle")
	}
	if t.HoldArmMinAngle <= 0 || t.HoldArmMinAngle >= 180 {
		return errors.New("holdArmMinAngle must be in (0, 180)")
	}
	if t.TorsoUprightMinAngle <= 0 || t.TorsoUprightMinAngle >= 180 {
		return errors.New("torsoUprightMinAngle must be in (0, 180)")
	}
	return nil
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		VisibilityMin:        0.7,
		CurlExtendedAngle:    160,
		CurlFlexedAngle:      40,
		JackLegSpreadRatio:   1.2,
		HoldArmMinAngle:      160,
		HoldKneeMinAngle:     85,
		HoldKneeMaxAngle:     110,
		TorsoUprightMinAngle: 165,
	}
}
