package client

//go:generate mockgen -source=service.go -package=client -destination=mock_service.go

import (
	"context"

	"github.com/bioinfo/elmdb/elmapi"
)

// Service is the set of remote operations of the ELM database.
// Every operation returns its records in document order; no records means nothing matched.
type Service interface {
	GetELMByIdentifier(ctx context.Context, identifier string) ([]elmapi.ELM, error)
	GetELM(ctx context.Context, accession string) ([]elmapi.ELM, error)
	GetELMsByTextSearch(ctx context.Context, query string) ([]elmapi.ELM, error)
	GetAllELMs(ctx context.Context) ([]elmapi.ELM, error)

	GetELMInstance(ctx context.Context, accession string) ([]elmapi.Instance, error)
	GetAllELMInstances(ctx context.Context) ([]elmapi.Instance, error)

	GetFunctionalSite(ctx context.Context, accession string) ([]elmapi.FunctionalSite, error)
	GetFunctionalSitesByTextSearch(ctx context.Context, query string) ([]elmapi.FunctionalSite, error)
	GetAllFunctionalSites(ctx context.Context) ([]elmapi.FunctionalSite, error)

	Close() error
}
