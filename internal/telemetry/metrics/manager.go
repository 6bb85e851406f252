package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterRequests            *prometheus.CounterVec
	CounterFramesAnalyzed      *prometheus.CounterVec
	CounterNoPersonFrames      prometheus.Counter
	CounterReps                *prometheus.CounterVec
	CounterCoachingTriggers    prometheus.Counter
	CounterCoachingDropped     prometheus.Counter
	CounterCoachingFailed      prometheus.Counter
	CounterHandleRequestPanic  prometheus.Counter
	CounterRateLimitedRequests prometheus.Counter

	// gauges
	GaugeRequests         prometheus.Gauge
	GaugeLifeSignal       prometheus.Gauge
	GaugeCoachingInFlight prometheus.Gauge

	// histograms
	HistRequestDuration       prometheus.Histogram
	HistFrameAnalysisDuration prometheus.Histogram
	HistCoachingDuration      prometheus.Histogram
}

func NewTestManager() *Manager {
	return NewManager("formsight", "test_server", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("formsight", "test_server", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterRequests := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request",
		Help:      "The total number of incoming requests",
	}, []string{"method", "status"})
	counterFramesAnalyzed := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "frames_analyzed",
		Help:      "The total number of pose frames run through an exercise analyzer",
	}, []string{"exercise"})
	counterNoPersonFrames := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "frames_no_person",
		Help:      "The total number of frames where no person was detected",
	})
	counterReps := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "reps_completed",
		Help:      "The total number of completed repetitions",
	}, []string{"exercise"})
	counterCoachingTriggers := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "coaching_triggers",
		Help:      "The total number of coaching requests dispatched",
	})
	counterCoachingDropped := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "coaching_dropped",
		Help:      "Coaching triggers dropped because a request was already in flight",
	})
	counterCoachingFailed := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "coaching_failed",
		Help:      "Coaching requests that failed or timed out",
	})
	counterHandleRequestPanic := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "handle_request_panic",
		Help:      "The total number of serve request panics",
	})
	counterRateLimitedRequests := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "rate_limited_requests",
		Help:      "The total number of rate limited requests",
	})

	gaugeRequests := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "current_requests",
		Help:      "Current number of requests served",
	})
	gaugeLifeSignal := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "life_signal",
		Help:      "Shows whether the service is alive",
	})
	gaugeCoachingInFlight := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "coaching_in_flight",
		Help:      "Whether a coaching request is currently outstanding (0 or 1)",
	})

	histReqDuration := factory.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			Name:      "request_duration_seconds",
			Help:      "Total duration of requests in seconds",
		},
	)
	histFrameAnalysisDuration := factory.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Buckets: []float64{
				0.0000025, 0.000005, 0.00001, 0.000025, 0.00005,
				0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01,
			},
			Name: "frame_analysis_duration_seconds",
			Help: "Duration of a single frame analysis pass in seconds",
		},
	)
	histCoachingDuration := factory.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
			Name:      "coaching_duration_seconds",
			Help:      "Roundtrip duration of an external coaching request in seconds",
		},
	)

	return &Manager{
		CounterRequests:            counterRequests,
		CounterFramesAnalyzed:      counterFramesAnalyzed,
		CounterNoPersonFrames:      counterNoPersonFrames,
		CounterReps:                counterReps,
		CounterCoachingTriggers:    counterCoachingTriggers,
		CounterCoachingDropped:     counterCoachingDropped,
		CounterCoachingFailed:      counterCoachingFailed,
		CounterHandleRequestPanic:  counterHandleRequestPanic,
		CounterRateLimitedRequests: counterRateLimitedRequests,
		GaugeRequests:              gaugeRequests,
		GaugeLifeSignal:            gaugeLifeSignal,
		GaugeCoachingInFlight:      gaugeCoachingInFlight,
		HistRequestDuration:        histReqDuration,
		HistFrameAnalysisDuration:  histFrameAnalysisDuration,
		HistCoachingDuration:       histCoachingDuration,
	}
}
