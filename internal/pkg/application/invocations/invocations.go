package invocations

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/meli-challenge/ip-trace/internal/pkg/application/distance"
	"github.com/meli-challenge/ip-trace/internal/pkg/infrastructure/logging"
	"github.com/meli-challenge/ip-trace/internal/pkg/infrastructure/metrics"
	repository "github.com/meli-challenge/ip-trace/internal/pkg/infrastructure/repositories/database/invocations"
)

//go:generate moq -rm -out invocations_mock.go . InvocationService

var ErrNoInvocations = fmt.Errorf("no invocations recorded")
var ErrInvalidDistance = fmt.Errorf("distance is not a finite number")

type Summary struct {
	Farthest        repository.Invocation
	Nearest         repository.Invocation
	Average         float64
	AverageDistance string
}

type InvocationService interface {
	RecordInvocation(ctx context.Context, country string, distanceKm float64) (repository.Invocation, error)
	ListOrderedByDistanceDesc(ctx context.Context) ([]repository.Invocation, error)
	Statistics(ctx context.Context) (Summary, error)
}

type invocationService struct {
	repo repository.InvocationRepository
}

func New(repo repository.InvocationRepository) InvocationService {
	return &invocationService{
		repo: repo,
	}
}

// RecordInvocation counts one more request for country. The distance is only
// stored when the country is seen for the first time. Concurrent calls for the
// same unseen country may both create a record.
func (s *invocationService) RecordInvocation(ctx context.Context, country string, distanceKm float64) (repository.Invocation, error) {
	logger := logging.GetLoggerFromContext(ctx)

	if math.IsNaN(distanceKm) || math.IsInf(distanceKm, 0) {
		metrics.InvocationsRecorded.WithLabelValues("rejected").Inc()
		return repository.Invocation{}, fmt.Errorf("%w: %v km to %s", ErrInvalidDistance, distanceKm, country)
	}

	existing, err := s.repo.GetByCountry(ctx, country)
	if err != nil && !errors.Is(err, repository.ErrInvocationNotFound) {
		return repository.Invocation{}, fmt.Errorf("could not look up invocation for %s: %w", country, err)
	}

	if errors.Is(err, repository.ErrInvocationNotFound) {
		created, err := s.repo.Create(ctx, country, distanceKm)
		if err != nil {
			return repository.Invocation{}, fmt.Errorf("could not create invocation for %s: %w", country, err)
		}

		metrics.InvocationsRecorded.WithLabelValues("created").Inc()
		logger.Debug().Str("country", country).Msg("first invocation recorded")

		return created, nil
	}

	updated, err := s.repo.IncrementRequests(ctx, existing.ID)
	if err != nil {
		return repository.Invocation{}, fmt.Errorf("could not update invocation for %s: %w", country, err)
	}

	metrics.InvocationsRecorded.WithLabelValues("incremented").Inc()

	return updated, nil
}

func (s *invocationService) ListOrderedByDistanceDesc(ctx context.Context) ([]repository.Invocation, error) {
	return s.repo.GetAllOrderedByDistanceDesc(ctx)
}

func (s *invocationService) Statistics(ctx context.Context) (Summary, error) {
	records, err := s.ListOrderedByDistanceDesc(ctx)
	if err != nil {
		return Summary{}, err
	}

	return Summarize(records)
}

// Summarize expects records sorted by distance, farthest first. The average
// is weighted by each record's request count.
func Summarize(records []repository.Invocation) (Summary, error) {
	if len(records) == 0 {
		return Summary{}, ErrNoInvocations
	}

	var weighted, requests float64
	for _, r := range records {
		weighted += r.Distance * r.NumberRequests
		requests += r.NumberRequests
	}

	if requests == 0 {
		return Summary{}, ErrNoInvocations
	}

	average := weighted / requests

	return Summary{
		Farthest:        records[0],
		Nearest:         records[len(records)-1],
		Average:         average,
		AverageDistance: distance.FormatKm(average),
	}, nil
}
