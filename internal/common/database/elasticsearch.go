// internal/common/database/elasticsearch.go
package database

import (
	"context"
	"fmt"

	"skillpath-workers/internal/common/config"
	"skillpath-workers/internal/common/errors"

	"github.com/elastic/go-elasticsearch/v8"
)

// ElasticsearchClient wraps the career search cluster client.
type ElasticsearchClient struct {
	Client *elasticsearch.Client
}

func NewElasticsearch(cfg config.ElasticsearchConfig) (*ElasticsearchClient, error) {
	// The career index is small and read-heavy; retry gateway errors and
	// throttling a few times before the search worker sees a failure.
	esCfg := elasticsearch.Config{
		Addresses:     cfg.Addresses,
		MaxRetries:    3,
		RetryOnStatus: []int{429, 502, 503, 504},
	}
	if cfg.Username != "" {
		esCfg.Username = cfg.Username
		esCfg.Password = cfg.Password
	}

	es, err := elasticsearch.NewClient(esCfg)
	if err != nil {
		return nil, errors.NewElasticsearchConnectionFailedError(err)
	}
	return &ElasticsearchClient{Client: es}, nil
}

func (c *ElasticsearchClient) Ping(ctx context.Context) error {
	res, err := c.Client.Ping(c.Client.Ping.WithContext(ctx))
	if err != nil {
		return errors.NewElasticsearchConnectionFailedError(err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return errors.NewElasticsearchConnectionFailedError(fmt.Errorf("ping: %s", res.Status()))
	}
	return nil
}
