package coaching

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/formsight/formsight/internal/exercise"
	"github.com/formsight/formsight/internal/telemetry/metrics"

	log "github.com/sirupsen/logrus"
)

const (
	repMilestone      = 5  // rep-counted exercises: comment every 5 reps
	yogaBucketSeconds = 10 // yoga hold: comment every 10 seconds
	runBucketSeconds  = 30 // running form: comment every 30 seconds
	requestTimeout    = 20 * time.Second
)

// Coach produces a short coaching comment for a workout moment, or an
// error when none is available.
type Coach interface {
	Comment(ctx context.Context, request Request) (string, error)
}

// Policy decides when a workout moment deserves an external coaching
// comment and enforces at most one outstanding request at a time.
// Triggers arriving while a request is in flight are dropped, never
// queued. Comments arrive asynchronously and are picked up by the next
// frame via TakeComment.
type Policy struct {
	coach    Coach
	instr    *metrics.Manager
	inFlight atomic.Bool

	mu      sync.Mutex
	comment string

	// wg is used by Wait, so tests and shutdown can sync with dispatches
	wg sync.WaitGroup
}

func NewPolicy(coach Coach, instr *metrics.Manager) *Policy {
	return &Policy{
		coach: coach,
		instr: instr,
	}
}

// milestoneMark returns the trigger mark for the current counters and
// whether the counters sit exactly on a milestone.
func milestoneMark(state *exercise.State) (int, bool) {
	if state.Exercise.IsHoldType() {
		bucket := yogaBucketSeconds
		if state.Exercise == exercise.TypeRunning {
			bucket = runBucketSeconds
		}
		if state.HoldSeconds > 0 && state.HoldSeconds%bucket == 0 {
			return state.HoldSeconds / bucket, true
		}
		return 0, false
	}

	if state.RepCount > 0 && state.RepCount%repMilestone == 0 {
		return state.RepCount, true
	}
	return 0, false
}

// Evaluate checks whether the session just hit a new coaching milestone
// and, if so, dispatches a request. The state's trigger mark is consumed
// either way: a milestone dropped because another request is in flight is
// lost, not retried, and the next milestone fires normally.
func (p *Policy) Evaluate(state *exercise.State, detectedIssue, poseSummary string) {
	mark, onMilestone := milestoneMark(state)
	if !onMilestone || mark == state.LastTriggerMark {
		return
	}
	state.LastTriggerMark = mark

	if !p.inFlight.CompareAndSwap(false, true) {
		log.Debugf("coaching trigger at mark %d dropped, request in flight", mark)
		p.instr.CounterCoachingDropped.Inc()
		return
	}

	request := Request{
		Exercise:      state.Exercise,
		Reps:          state.RepCount,
		HoldSeconds:   state.HoldSeconds,
		DetectedIssue: detectedIssue,
		PoseSummary:   poseSummary,
	}

	p.instr.CounterCoachingTriggers.Inc()
	p.instr.GaugeCoachingInFlight.Set(1)
	p.wg.Add(1)

	// fire and forget: the frame loop never waits on the coach
	go func() {
		defer p.wg.Done()
		defer p.instr.GaugeCoachingInFlight.Set(0)
		defer p.inFlight.Store(false)

		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		startedAt := time.Now()
		comment, err := p.coach.Comment(ctx, request)
		p.instr.HistCoachingDuration.Observe(time.Since(startedAt).Seconds())
		if err != nil {
			// coaching unavailable: empty comment, no retry
			log.Errorf("coaching request for %s failed: %s", request.Exercise, err)
			p.instr.CounterCoachingFailed.Inc()
			return
		}

		p.mu.Lock()
		p.comment = comment
		p.mu.Unlock()
	}()
}

// TakeComment returns the latest coaching comment and clears it, so a
// comment is delivered to the client exactly once. Empty string means no
// new comment.
func (p *Policy) TakeComment() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	comment := p.comment
	p.comment = ""
	return comment
}

// Wait blocks until no coaching request is outstanding.
func (p *Policy) Wait() {
	p.wg.Wait()
}
