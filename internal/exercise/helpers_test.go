package exercise_test

import (
	"github.com/formsight/formsight/internal/pose"
)

func visibleLandmark(x, y float64) *pose.Landmark {
	return &pose.Landmark{X: x, Y: y, Visibility: 1}
}

// curlJoints builds a left arm with the given elbow angle (0, 90 or
// straight-ish values are enough for the curl machine).
func curlJoints(shoulder, elbow, wrist *pose.Landmark) pose.Joints {
	return pose.Joints{
		LeftShoulder: shoulder,
		LeftElbow:    elbow,
		LeftWrist:    wrist,
	}
}

// armAtAngle returns shoulder/elbow/wrist landmarks forming the given
// elbow angle in degrees via simple right-triangle layouts.
func armAtAngle(angle float64) pose.Joints {
	switch {
	case angle >= 170:
		// straight line: 180°
		return curlJoints(visibleLandmark(0, 0), visibleLandmark(0, 1), visibleLandmark(0, 2))
	case angle >= 90:
		// right angle: 90°
		return curlJoints(visibleLandmark(0, 0), visibleLandmark(0, 1), visibleLandmark(1, 1))
	default:
		// tightly flexed: wrist back up next to the shoulder, ~14°
		return curlJoints(visibleLandmark(0, 0), visibleLandmark(0, 1), visibleLandmark(0.25, 0.03))
	}
}

// jackJoints builds a full body for the jumping jack machine.
func jackJoints(legsApart, armsUp bool) pose.Joints {
	j := pose.Joints{
		LeftShoulder:  visibleLandmark(-0.2, 0.3),
		RightShoulder: visibleLandmark(0.2, 0.3),
		LeftHip:       visibleLandmark(-0.15, 0.6),
		RightHip:      visibleLandmark(0.15, 0.6),
	}
	if armsUp {
		j.LeftWrist = visibleLandmark(-0.3, 0.1)
		j.RightWrist = visibleLandmark(0.3, 0.1)
	} else {
		j.LeftWrist = visibleLandmark(-0.25, 0.55)
		j.RightWrist = visibleLandmark(0.25, 0.55)
	}
	if legsApart {
		j.LeftAnkle = visibleLandmark(-0.4, 0.95)
		j.RightAnkle = visibleLandmark(0.4, 0.95)
	} else {
		j.LeftAnkle = visibleLandmark(-0.1, 0.95)
		j.RightAnkle = visibleLandmark(0.1, 0.95)
	}
	return j
}

// holdJoints builds a left arm and left leg with the given elbow and knee
// angles for the hold pose machine.
func holdJoints(armStraight bool, kneeAngle float64) pose.Joints {
	j := pose.Joints{}

	if armStraight {
		j.LeftShoulder = visibleLandmark(0, 0.3)
		j.LeftElbow = visibleLandmark(0.2, 0.3)
		j.LeftWrist = visibleLandmark(0.4, 0.3)
	} else {
		j.LeftShoulder = visibleLandmark(0, 0.3)
		j.LeftElbow = visibleLandmark(0.2, 0.3)
		j.LeftWrist = visibleLandmark(0.2, 0.1)
	}

	// hip above the knee, ankle placed to form the requested knee angle
	j.LeftHip = visibleLandmark(0, 0.5)
	j.LeftKnee = visibleLandmark(0, 0.8)
	switch {
	case kneeAngle < 85:
		// heel pulled far back under the hip: very bent
		j.LeftAnkle = visibleLandmark(0.1, 0.65)
	case kneeAngle < 110:
		// shin angled forward: ~100°
		j.LeftAnkle = visibleLandmark(0.29, 0.85)
	default:
		// nearly straight leg
		j.LeftAnkle = visibleLandmark(0, 1.1)
	}
	return j
}

// kneesJoints builds hips and knees for the high knees machine.
func kneesJoints(leftUp, rightUp bool) pose.Joints {
	j := pose.Joints{
		LeftHip:  visibleLandmark(-0.15, 0.6),
		RightHip: visibleLandmark(0.15, 0.6),
	}
	if leftUp {
		j.LeftKnee = visibleLandmark(-0.15, 0.5)
	} else {
		j.LeftKnee = visibleLandmark(-0.15, 0.8)
	}
	if rightUp {
		j.RightKnee = visibleLandmark(0.15, 0.5)
	} else {
		j.RightKnee = visibleLandmark(0.15, 0.8)
	}
	return j
}

// torsoJoints builds shoulder-hip-knee with the given torso angle.
func torsoJoints(upright bool) pose.Joints {
	j := pose.Joints{
		LeftHip:  visibleLandmark(0, 0.5),
		LeftKnee: visibleLandmark(0, 0.8),
	}
	if upright {
		j.LeftShoulder = visibleLandmark(0, 0.1)
	} else {
		// leaning forward: clearly bent at the hip
		j.LeftShoulder = visibleLandmark(0.3, 0.3)
	}
	return j
}
