package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/formsight/formsight/internal/exercise"
	"github.com/formsight/formsight/internal/pose"
	"github.com/formsight/formsight/internal/telemetry/metrics"
	"github.com/formsight/formsight/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const feedbackNoPerson = "No person detected. Step into the camera view."

var ErrNoActiveExercise = errors.New("no active exercise")

// triggerPolicy decides when to ask the external coach for a comment and
// hands back comments as they arrive.
type triggerPolicy interface {
	Evaluate(state *exercise.State, detectedIssue, poseSummary string)
	TakeComment() string
}

// thresholdsProvider loads the tunable limits for an exercise.
type thresholdsProvider interface {
	ThresholdsOrDefault(ctx context.Context, t exercise.Type) (exercise.Thresholds, error)
}

// Snapshot is what the client renders after every frame.
type Snapshot struct {
	Exercise    exercise.Type `json:"exercise"`
	Feedback    string        `json:"feedback"`
	RepCount    int           `json:"repCount"`
	HoldSeconds int           `json:"holdSeconds"`
	PoseCorrect bool          `json:"poseCorrect"`
	Coaching    string        `json:"coaching,omitempty"`
}

// Manager owns the single active exercise session. Two writers mutate the
// session state - the frame path and the one second hold timer - so every
// entry point takes the mutex; an exercise switch replaces the whole
// state under the same lock and can never be observed half done.
type Manager struct {
	mu         sync.Mutex
	state      *exercise.State
	analyzer   exercise.Analyzer
	policy     triggerPolicy
	thresholds thresholdsProvider
	instr      *metrics.Manager

	// context from the most recent analyzed frame, so a coaching request
	// fired from the hold timer still carries the detected issue and the
	// key-angles summary
	lastFeedback    string
	lastPoseSummary string
}

func NewManager(policy triggerPolicy, thresholds thresholdsProvider, instr *metrics.Manager) *Manager {
	return &Manager{
		policy:     policy,
		thresholds: thresholds,
		instr:      instr,
	}
}

// SwitchExercise makes the given exercise active, discarding all previous
// session state. Counters, stage and the coaching trigger mark start from
// scratch - there is no carry-over between exercises.
func (m *Manager) SwitchExercise(ctx context.Context, t exercise.Type) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "session.switchExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise", t.String()))

	if !t.IsValid() {
		return fmt.Errorf("invalid exercise type: %s", t)
	}

	thresholds, err := m.thresholds.ThresholdsOrDefault(ctx, t)
	if err != nil {
		return fmt.Errorf("load thresholds: %w", err)
	}
	analyzer, err := exercise.ForType(t, thresholds)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = exercise.NewState(t)
	m.analyzer = analyzer
	m.lastFeedback = ""
	m.lastPoseSummary = ""

	log.Debugf("session switched to exercise: %s", t)
	return nil
}

// ProcessFrame runs one frame through the active analyzer and returns
// what the client should render. An empty landmark slice means no person
// was detected: fixed feedback, state untouched, no analyzer call.
func (m *Manager) ProcessFrame(ctx context.Context, landmarks []*pose.Landmark) (_ Snapshot, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "session.processFrame")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == nil {
		return Snapshot{}, ErrNoActiveExercise
	}

	if len(landmarks) == 0 {
		m.instr.CounterNoPersonFrames.Inc()
		span.SetAttributes(attribute.Bool("no_person", true))
		return m.snapshotLocked(feedbackNoPerson, ""), nil
	}

	startedAt := time.Now()
	joints := pose.FromLandmarks(landmarks)
	result := m.analyzer.Analyze(joints, m.state)
	m.instr.HistFrameAnalysisDuration.Observe(time.Since(startedAt).Seconds())
	m.instr.CounterFramesAnalyzed.WithLabelValues(m.state.Exercise.String()).Inc()

	for _, event := range result.Events {
		switch event.Type {
		case exercise.EventTypeRepCompleted:
			m.instr.CounterReps.WithLabelValues(m.state.Exercise.String()).Inc()
		case exercise.EventTypePoseCorrectnessChanged:
			// the hold timer resets the instant correctness is lost
			if !event.PoseCorrect {
				m.state.HoldSeconds = 0
			}
		}
	}

	m.lastFeedback = result.Feedback
	m.lastPoseSummary = pose.Summary(joints)
	m.policy.Evaluate(m.state, m.lastFeedback, m.lastPoseSummary)

	return m.snapshotLocked(result.Feedback, m.policy.TakeComment()), nil
}

// Tick advances the hold timer by one second. It only counts while the
// active exercise is hold-type and the pose is currently correct; losing
// correctness snaps the timer back to zero, it never pauses.
func (m *Manager) Tick() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == nil || !m.state.Exercise.IsHoldType() {
		return
	}

	if !m.state.PoseCorrect {
		m.state.HoldSeconds = 0
		return
	}

	m.state.HoldSeconds++
	m.policy.Evaluate(m.state, m.lastFeedback, m.lastPoseSummary)
}

// Run drives the hold timer at one tick per second until ctx is done.
func (m *Manager) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Tick()
		}
	}
}

// Status returns the current session snapshot without processing a frame.
func (m *Manager) Status() (Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == nil {
		return Snapshot{}, ErrNoActiveExercise
	}
	return m.snapshotLocked("", ""), nil
}

func (m *Manager) snapshotLocked(feedback, coaching string) Snapshot {
	return Snapshot{
		Exercise:    m.state.Exercise,
		Feedback:    feedback,
		RepCount:    m.state.RepCount,
		HoldSeconds: m.state.HoldSeconds,
		PoseCorrect: m.state.PoseCorrect,
		Coaching:    coaching,
	}
}
