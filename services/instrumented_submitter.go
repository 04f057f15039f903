package services

import (
	"context"
	"time"

	"binarybyte_site/models"
	"binarybyte_site/services/intake"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const intakeTracerName = "binarybyte.services.intake"

// InstrumentedSubmitter records a span and metrics around another Submitter
type InstrumentedSubmitter struct {
	next    intake.Submitter
	driver  string
	metrics *IntakeMetrics
	tracer  trace.Tracer
}

// NewInstrumentedSubmitter traces through the global provider, so SetupTracing
// must run first for spans to be exported
func NewInstrumentedSubmitter(next intake.Submitter, driver string, metrics *IntakeMetrics) *InstrumentedSubmitter {
	return &InstrumentedSubmitter{
		next:    next,
		driver:  driver,
		metrics: metrics,
		tracer:  otel.Tracer(intakeTracerName),
	}
}

// WithTracerProvider swaps the provider spans are recorded with
func (s *InstrumentedSubmitter) WithTracerProvider(tp trace.TracerProvider) *InstrumentedSubmitter {
	s.tracer = tp.Tracer(intakeTracerName)
	return s
}

func (s *InstrumentedSubmitter) SubmitLead(ctx context.Context, lead models.LeadSubmission) (intake.Ack, error) {
	ctx, span := s.tracer.Start(ctx, "intake.submit_lead", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(
		attribute.String("binarybyte.intake.driver", s.driver),
		attribute.String("binarybyte.intake.budget", string(lead.Budget)),
		attribute.Bool("binarybyte.intake.has_company_url", lead.CompanyURL != ""),
	)

	start := time.Now()
	ack, err := s.next.SubmitLead(ctx, lead)
	elapsed := time.Since(start).Seconds()

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "submit lead failed")
		s.metrics.ObserveSubmission(s.driver, "error", elapsed)
		return ack, err
	}
	span.SetAttributes(attribute.String("binarybyte.intake.reference", ack.Reference))
	s.metrics.ObserveSubmission(s.driver, "ok", elapsed)
	return ack, nil
}
