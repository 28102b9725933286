// Package urlrisk turns a URL into a single risk verdict by running a local
// heuristic followed by up to three external reputation signals. Stages run
// sequentially because each one is conditioned on what the previous ones
// found.
package urlrisk

import (
	"context"
	"fmt"
	"strings"
	"time"

	"lifeguard/pkg/domain"
	"lifeguard/pkg/logger"
	"lifeguard/pkg/metrics"
	"lifeguard/pkg/urlscanner"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const instrumentationName = "lifeguard/internal/urlrisk"

// Details reported by Finalize.
const (
	DetailsSafe            = "URL appears to be safe"
	DetailsPotentialThreat = "Potential threat detected"
	ThreatScanFailed       = "scan failed"
)

// DefaultTimeout bounds every external call when Options.Timeout is unset.
const DefaultTimeout = 5 * time.Second

// Deps are the optional external signals. A nil signal is skipped.
type Deps struct {
	Threats    urlscanner.ThreatMatcher
	Reputation urlscanner.DomainReputation
	Engines    urlscanner.MultiEngineScanner
}

// Options configures an Aggregator.
type Options struct {
	// Timeout bounds each external call. Expiry counts as a failed signal.
	Timeout time.Duration
}

// Aggregator is stateless between calls and safe for concurrent use.
type Aggregator struct {
	stages  []Stage
	timeout time.Duration

	tracer        trace.Tracer
	stageDuration metric.Float64Histogram
	assessments   metric.Int64Counter
}

// New builds the default pipeline over deps.
func New(deps Deps, opts Options) (*Aggregator, error) {
	return NewWithStages(opts,
		HeuristicStage(),
		ThreatMatchStage(deps.Threats),
		ReputationStage(deps.Reputation),
		MultiEngineStage(deps.Engines),
	)
}

// NewWithStages builds an Aggregator running stages in the given order.
func NewWithStages(opts Options, stages ...Stage) (*Aggregator, error) {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}

	meter := otel.Meter(instrumentationName)
	stageDuration, err := meter.Float64Histogram("lifeguard.urlrisk.stage.duration",
		metric.WithDescription("Duration of URL risk pipeline stages."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.UpstreamBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create stage duration histogram: %w", err)
	}
	assessments, err := meter.Int64Counter("lifeguard.urlrisk.assessments",
		metric.WithDescription("URL assessments by final risk level."))
	if err != nil {
		return nil, fmt.Errorf("could not create assessments counter: %w", err)
	}

	return &Aggregator{
		stages:        stages,
		timeout:       opts.Timeout,
		tracer:        otel.Tracer(instrumentationName),
		stageDuration: stageDuration,
		assessments:   assessments,
	}, nil
}

// Assess runs the pipeline over rawURL. It never fails: stage errors are
// logged and ignored, and an unexpected panic yields the maximal-risk
// Fallback.
func (ag *Aggregator) Assess(ctx context.Context, rawURL string) (out domain.URLAssessment) {
	ctx, span := ag.tracer.Start(ctx, "urlrisk.Assess")
	defer span.End()

	ctx = logger.WithFields(ctx, zap.String("url", rawURL))

	defer func() {
		if r := recover(); r != nil {
			logger.Error(ctx, "url assessment panicked", zap.Any("panic", r), zap.Stack("stack"))
			span.SetStatus(codes.Error, "panic")
			out = Fallback(rawURL)
		}

		span.SetAttributes(attribute.String("risk_level", string(out.RiskLevel)), attribute.Bool("safe", out.Safe))
		ag.assessments.Add(ctx, 1, metric.WithAttributes(
			attribute.String("risk_level", string(out.RiskLevel)),
			attribute.Bool("safe", out.Safe)))
	}()

	in := NewInput(rawURL)
	a := domain.NewURLAssessment(rawURL)
	for _, st := range ag.stages {
		a.Signals = append(a.Signals, domain.Signal{Stage: st.Name, Status: ag.runStage(ctx, st, in, &a)})
	}

	Finalize(&a)
	a.CheckedAt = time.Now().UTC()

	return a
}

func (ag *Aggregator) runStage(ctx context.Context, st Stage, in Input, a *domain.URLAssessment) domain.SignalStatus {
	if st.Skip != nil && st.Skip(in, a) {
		logger.Debug(ctx, "stage skipped", zap.String("stage", st.Name))

		return domain.SignalSkipped
	}

	ctx, span := ag.tracer.Start(ctx, "urlrisk."+st.Name)
	defer span.End()

	if st.External {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, ag.timeout)
		defer cancel()
	}

	start := time.Now()
	err := st.Run(ctx, in, a)

	status := domain.SignalRan
	if err != nil {
		status = domain.SignalFailed
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.Warn(ctx, "stage failed, continuing without its signal",
			zap.String("stage", st.Name), zap.Error(err))
	}

	ag.stageDuration.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(
		attribute.String("stage", st.Name),
		attribute.String("status", string(status))))

	return status
}

// Finalize writes the human-readable summary.
func Finalize(a *domain.URLAssessment) {
	switch {
	case a.Safe:
		a.Details = DetailsSafe
	case len(a.ThreatTypes) > 0:
		a.Details = strings.Join(a.ThreatTypes, ", ")
	default:
		a.Details = DetailsPotentialThreat
	}
}

// Fallback is the verdict reported when the pipeline itself failed.
func Fallback(rawURL string) domain.URLAssessment {
	a := domain.NewURLAssessment(rawURL)
	a.MarkUnsafe(domain.RiskLevelHigh, ThreatScanFailed)
	a.RiskScore = 100
	Finalize(&a)
	a.CheckedAt = time.Now().UTC()

	return a
}
