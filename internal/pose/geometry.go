package pose

import (
	"fmt"
	"math"
)

// AngleAt computes the angle in degrees subtended at vertex b between the
// rays b->a and b->c, always folded to the non-reflex range [0,180].
//
// If any of the three landmarks is missing it returns 0. Note that 0 is
// also a legitimate (if extreme) angle, so callers must gate on landmark
// visibility before trusting the result.
func AngleAt(a, b, c *Landmark) float64 {
	if a == nil || b == nil || c == nil {
		return 0
	}

	radians := math.Atan2(c.Y-b.Y, c.X-b.X) - math.Atan2(a.Y-b.Y, a.X-b.X)
	angle := math.Abs(radians * 180 / math.Pi)
	if angle > 180 {
		angle = 360 - angle
	}
	return angle
}

// Summary renders the four primary joint angles of a frame as a short
// human readable string. It is handed to the coaching service as context
// and carries no meaning inside the analyzers.
func Summary(j Joints) string {
	leftArm := AngleAt(j.LeftShoulder, j.LeftElbow, j.LeftWrist)
	rightArm := AngleAt(j.RightShoulder, j.RightElbow, j.RightWrist)
	leftLeg := AngleAt(j.LeftHip, j.LeftKnee, j.LeftAnkle)
	rightLeg := AngleAt(j.RightHip, j.RightKnee, j.RightAnkle)
	return fmt.Sprintf(
		"Key Angles: L-Arm(%d°), R-Arm(%d°), L-Leg(%d°), R-Leg(%d°)",
		int(math.Round(leftArm)),
		int(math.Round(rightArm)),
		int(math.Round(leftLeg)),
		int(math.Round(rightLeg)),
	)
}
