package invocations

import (
	"context"
	"errors"
	"fmt"

	"github.com/meli-challenge/ip-trace/internal/pkg/infrastructure/logging"
	. "github.com/meli-challenge/ip-trace/internal/pkg/infrastructure/repositories/database"
	"gorm.io/gorm"
)

//go:generate moq -rm -out invocationrepository_mock.go . InvocationRepository

var ErrInvocationNotFound = fmt.Errorf("invocation not found")
var ErrRepositoryError = fmt.Errorf("could not fetch data from repository")

type InvocationRepository interface {
	GetByCountry(ctx context.Context, country string) (Invocation, error)
	GetAllOrderedByDistanceDesc(ctx context.Context) ([]Invocation, error)
	Create(ctx context.Context, country string, distance float64) (Invocation, error)
	IncrementRequests(ctx context.Context, id uint) (Invocation, error)
}

type invocationRepository struct {
	db *gorm.DB
}

func NewInvocationRepository(connect ConnectorFunc) (InvocationRepository, error) {
	impl, _, err := connect()
	if err != nil {
		return nil, err
	}

	err = impl.AutoMigrate(&Invocation{})
	if err != nil {
		return nil, err
	}

	return &invocationRepository{
		db: impl,
	}, nil
}

func (r *invocationRepository) GetByCountry(ctx context.Context, country string) (Invocation, error) {
	logger := logging.GetLoggerFromContext(ctx)

	i := Invocation{}

	result := r.db.WithContext(ctx).
		Where("country = ?", country).
		Order("id").
		First(&i)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Invocation{}, ErrInvocationNotFound
		}

		logger.Error().Err(result.Error).Msg("gorm error")

		return Invocation{}, fmt.Errorf("%w: %s", ErrRepositoryError, result.Error.Error())
	}

	return i, nil
}

func (r *invocationRepository) GetAllOrderedByDistanceDesc(ctx context.Context) ([]Invocation, error) {
	invocations := []Invocation{}

	err := r.db.WithContext(ctx).
		Order("distance desc").
		Order("id").
		Find(&invocations).
		Error
	if err != nil {
		return []Invocation{}, fmt.Errorf("%w: %s", ErrRepositoryError, err.Error())
	}

	return invocations, nil
}

func (r *invocationRepository) Create(ctx context.Context, country string, distance float64) (Invocation, error) {
	logger := logging.GetLoggerFromContext(ctx)
	logger.Debug().Msgf("add new invocation, country: %s, distance: %.0f", country, distance)

	i := Invocation{
		Country:        country,
		Distance:       distance,
		NumberRequests: 1.0,
	}

	err := r.db.WithContext(ctx).Create(&i).Error
	if err != nil {
		return Invocation{}, err
	}

	return i, nil
}

// IncrementRequests adds one to the request count in a single UPDATE statement,
// leaving the stored distance untouched.
func (r *invocationRepository) IncrementRequests(ctx context.Context, id uint) (Invocation, error) {
	result := r.db.WithContext(ctx).
		Model(&Invocation{}).
		Where("id = ?", id).
		Update("number_requests", gorm.Expr("number_requests + ?", 1.0))

	if result.Error != nil {
		return Invocation{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Invocation{}, ErrInvocationNotFound
	}

	i := Invocation{}
	err := r.db.WithContext(ctx).First(&i, id).Error
	if err != nil {
		return Invocation{}, err
	}

	return i, nil
}
