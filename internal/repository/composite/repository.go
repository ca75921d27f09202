package composite

import (
	"github.com/kingrain94/vehicle-assess-api/internal/config"
	"github.com/kingrain94/vehicle-assess-api/internal/repository"
	"github.com/kingrain94/vehicle-assess-api/internal/repository/opensearch"
	"github.com/kingrain94/vehicle-assess-api/internal/repository/postgres"
	opensearchclient "github.com/opensearch-project/opensearch-go/v2"
)

type compositeRepository struct {
	repository.PostgresRepository
	searchRepo repository.BookingSearchRepository
}

func NewCompositeRepository(dbConnections *config.DatabaseConnections, osClient *opensearchclient.Client, osConfig *config.OpenSearchConfig) repository.Repository {
	return &compositeRepository{
		PostgresRepository: postgres.NewPostgresRepository(dbConnections),
		searchRepo:         opensearch.NewRepository(osClient, osConfig),
	}
}

func (r *compositeRepository) BookingSearch() repository.BookingSearchRepository {
	return r.searchRepo
}
