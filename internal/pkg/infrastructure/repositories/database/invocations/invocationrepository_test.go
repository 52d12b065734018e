package invocations

import (
	"context"
	"errors"
	"testing"

	"github.com/matryer/is"
	. "github.com/meli-challenge/ip-trace/internal/pkg/infrastructure/repositories/database"
	"github.com/rs/zerolog"
)

func TestCreateInvocation(t *testing.T) {
	is, ctx, r := testSetupInvocationRepository(t)

	i, err := r.Create(ctx, "Spain", 10046)
	is.NoErr(err)
	is.True(i.ID > 0)
	is.Equal(i.NumberRequests, 1.0)
	is.Equal(i.Distance, 10046.0)
}

func TestGetByCountry(t *testing.T) {
	is, ctx, r := testSetupInvocationRepository(t)

	_, err := r.Create(ctx, "Spain", 10046)
	is.NoErr(err)

	i, err := r.GetByCountry(ctx, "Spain")
	is.NoErr(err)
	is.Equal(i.Country, "Spain")
}

func TestGetByUnknownCountryReturnsNotFound(t *testing.T) {
	is, ctx, r := testSetupInvocationRepository(t)

	_, err := r.GetByCountry(ctx, "Atlantis")
	is.True(errors.Is(err, ErrInvocationNotFound))
}

func TestIncrementRequestsKeepsDistance(t *testing.T) {
	is, ctx, r := testSetupInvocationRepository(t)

	created, err := r.Create(ctx, "Brazil", 2862)
	is.NoErr(err)

	updated, err := r.IncrementRequests(ctx, created.ID)
	is.NoErr(err)
	is.Equal(updated.NumberRequests, 2.0)
	is.Equal(updated.Distance, 2862.0)
}

func TestIncrementUnknownIDReturnsNotFound(t *testing.T) {
	is, ctx, r := testSetupInvocationRepository(t)

	_, err := r.IncrementRequests(ctx, 4711)
	is.True(errors.Is(err, ErrInvocationNotFound))
}

func TestGetAllOrderedByDistanceDesc(t *testing.T) {
	is, ctx, r := testSetupInvocationRepository(t)

	all, err := r.GetAllOrderedByDistanceDesc(ctx)
	is.NoErr(err)
	is.Equal(len(all), 0)

	_, err = r.Create(ctx, "Uruguay", 206)
	is.NoErr(err)
	_, err = r.Create(ctx, "Japan", 18365)
	is.NoErr(err)
	_, err = r.Create(ctx, "Spain", 10046)
	is.NoErr(err)

	all, err = r.GetAllOrderedByDistanceDesc(ctx)
	is.NoErr(err)
	is.Equal(len(all), 3)
	is.Equal(all[0].Country, "Japan")
	is.Equal(all[1].Country, "Spain")
	is.Equal(all[2].Country, "Uruguay")
}

func TestStorageFailureIsNotReportedAsNotFound(t *testing.T) {
	is, ctx, conn := setup(t)

	db, _, err := conn()
	is.NoErr(err)

	// no migration, so the table does not exist
	r := &invocationRepository{db: db}

	_, err = r.GetByCountry(ctx, "Spain")
	is.True(err != nil)
	is.True(!errors.Is(err, ErrInvocationNotFound))
	is.True(errors.Is(err, ErrRepositoryError))
}

func testSetupInvocationRepository(t *testing.T) (*is.I, context.Context, InvocationRepository) {
	is, ctx, conn := setup(t)

	r, err := NewInvocationRepository(conn)
	is.NoErr(err)

	return is, ctx, r
}

func setup(t *testing.T) (*is.I, context.Context, ConnectorFunc) {
	is := is.New(t)
	ctx := context.Background()
	conn := NewSQLiteConnector(zerolog.Nop())

	return is, ctx, conn
}
