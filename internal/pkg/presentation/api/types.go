package api

import (
	"github.com/meli-challenge/ip-trace/internal/pkg/application/invocations"
	"github.com/meli-challenge/ip-trace/internal/pkg/application/trace"
	repository "github.com/meli-challenge/ip-trace/internal/pkg/infrastructure/repositories/database/invocations"
	"github.com/meli-challenge/ip-trace/pkg/types"
)

func toTraceResponse(r trace.Result) types.TraceResponse {
	return types.TraceResponse{
		IP:                r.IP,
		Country:           r.Country,
		CountryISOCode:    r.CountryISOCode,
		Languages:         nonNil(r.Languages),
		Times:             nonNil(r.Times),
		EstimatedDistance: r.EstimatedDistance,
		Currency:          r.Currency,
	}
}

func toStatisticsResponse(s invocations.Summary) types.StatisticsResponse {
	return types.StatisticsResponse{
		FarthestCountry: toInvocation(s.Farthest),
		NearbyCountry:   toInvocation(s.Nearest),
		AverageDistance: s.AverageDistance,
	}
}

func toInvocation(i repository.Invocation) types.Invocation {
	return types.Invocation{
		ID:             i.ID,
		Country:        i.Country,
		Distance:       i.Distance,
		NumberRequests: i.NumberRequests,
	}
}

// nonNil keeps empty lists as [] instead of null in responses.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
