// cmd/worker-manager/infra.go
package main

import (
	"context"

	"skillpath-workers/internal/catalog"
	"skillpath-workers/internal/common/aws"
	"skillpath-workers/internal/common/camunda"
	"skillpath-workers/internal/common/config"
	"skillpath-workers/internal/common/database"
	"skillpath-workers/internal/common/logger"
	"skillpath-workers/internal/search"
	"skillpath-workers/internal/store"
)

// infrastructure holds the optional backends. A nil field means the backend
// is disabled in config.
type infrastructure struct {
	postgres *database.PostgresClient
	redis    *database.RedisClient
	elastic  *database.ElasticsearchClient
	store    *store.AssessmentStore
	index    *search.CareerIndex
	ses      *aws.SESClient
	sns      *aws.SNSClient
}

// connectInfra dials every enabled backend with retry. A backend that stays
// unreachable is logged and left disabled so unrelated workers still run.
func connectInfra(ctx context.Context, cfg *config.Config, cat *catalog.Catalog, log logger.Logger) *infrastructure {
	infra := &infrastructure{}
	retry := camunda.DefaultRetryConfig

	if cfg.Database.Postgres.Enabled {
		pg, err := database.NewPostgres(cfg.Database.Postgres)
		if err == nil {
			err = camunda.Retry(ctx, retry, log, "PostgreSQL connection", pg.Ping)
		}
		if err == nil {
			err = store.New(pg.DB).EnsureSchema(ctx)
		}
		if err != nil {
			log.Error("PostgreSQL unavailable, assessments will not be saved", map[string]interface{}{"error": err})
			if pg != nil {
				pg.Close()
			}
		} else {
			infra.postgres = pg
			infra.store = store.New(pg.DB)
			log.Info("PostgreSQL connected successfully", nil)
		}
	}

	if cfg.Database.Redis.Enabled {
		rc := database.NewRedis(cfg.Database.Redis)
		if err := camunda.Retry(ctx, retry, log, "Redis connection", rc.Ping); err != nil {
			log.Error("Redis unavailable, score cache disabled", map[string]interface{}{"error": err})
			rc.Close()
		} else {
			infra.redis = rc
			log.Info("Redis connected successfully", nil)
		}
	}

	if cfg.Database.Elasticsearch.Enabled {
		es, err := database.NewElasticsearch(cfg.Database.Elasticsearch)
		if err == nil {
			err = camunda.Retry(ctx, retry, log, "Elasticsearch connection", es.Ping)
		}
		if err != nil {
			log.Error("Elasticsearch unavailable, career search disabled", map[string]interface{}{"error": err})
		} else {
			infra.elastic = es
			infra.index = search.NewCareerIndex(es.Client, cfg.Search.Index)
			n, err := infra.index.IndexCatalog(ctx, cat)
			if err != nil {
				log.Error("career index refresh failed", map[string]interface{}{"error": err})
			} else {
				log.Info("career index refreshed", map[string]interface{}{"index": infra.index.Name(), "documents": n})
			}
		}
	}

	region := cfg.Notifications.AWS.Region
	if cfg.Notifications.SES.Enabled {
		ses, err := aws.NewSESClient(ctx, region, cfg.Notifications.SES.FromEmail)
		if err != nil {
			log.Error("SES client setup failed, email delivery disabled", map[string]interface{}{"error": err})
		} else {
			infra.ses = ses
		}
	}
	if cfg.Notifications.SNS.Enabled {
		sns, err := aws.NewSNSClient(ctx, region, cfg.Notifications.SNS.SenderID)
		if err != nil {
			log.Error("SNS client setup failed, SMS delivery disabled", map[string]interface{}{"error": err})
		} else {
			infra.sns = sns
		}
	}

	return infra
}

// readiness returns a check per enabled backend.
func (i *infrastructure) readiness() map[string]func(context.Context) error {
	checks := map[string]func(context.Context) error{}
	if i.postgres != nil {
		checks["postgres"] = i.postgres.Ping
	}
	if i.redis != nil {
		checks["redis"] = i.redis.Ping
	}
	if i.elastic != nil {
		checks["elasticsearch"] = i.elastic.Ping
	}
	return checks
}

func (i *infrastructure) Close() {
	if i.postgres != nil {
		i.postgres.Close()
	}
	if i.redis != nil {
		i.redis.Close()
	}
}
