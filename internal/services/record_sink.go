package services

import (
	"context"
	"errors"
	"fmt"

	"premiumcalc/internal/models/db_models"
	"premiumcalc/internal/repositories"
	"premiumcalc/pkg/metrics"
	"premiumcalc/pkg/utils"
)

// RecordSink is an append-only destination for premium records.
type RecordSink interface {
	Name() string
	Append(ctx context.Context, record db_models.PremiumRecord) error
}

// MultiSink appends to every sink, even after a failure, and reports all
// failures together. There is no rollback.
type MultiSink struct {
	sinks []RecordSink
}

func NewMultiSink(sinks ...RecordSink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

func (m *MultiSink) Name() string { return "multi" }

func (m *MultiSink) Len() int { return len(m.sinks) }

func (m *MultiSink) Append(ctx context.Context, record db_models.PremiumRecord) error {
	var (
		failed []string
		errs   []error
	)
	for _, sink := range m.sinks {
		if err := sink.Append(ctx, record); err != nil {
			metrics.RecordAppendsTotal.WithLabelValues(sink.Name(), metrics.OutcomeError).Inc()
			failed = append(failed, sink.Name())
			errs = append(errs, fmt.Errorf("%s: %w", sink.Name(), err))
			continue
		}
		metrics.RecordAppendsTotal.WithLabelValues(sink.Name(), metrics.OutcomeSuccess).Inc()
	}
	if len(errs) == 0 {
		return nil
	}
	return &utils.RecordSinkError{Sinks: failed, Err: errors.Join(errs...)}
}

// PostgresRecordSink stores records in the premium_records table.
type PostgresRecordSink struct {
	repo repositories.PremiumRecordRepositoryInterface
}

func NewPostgresRecordSink(repo repositories.PremiumRecordRepositoryInterface) *PostgresRecordSink {
	return &PostgresRecordSink{repo: repo}
}

func (s *PostgresRecordSink) Name() string { return "postgres" }

func (s *PostgresRecordSink) Append(ctx context.Context, record db_models.PremiumRecord) error {
	if err := s.repo.Append(ctx, &record); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return nil
}
