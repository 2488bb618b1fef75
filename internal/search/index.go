// Package search keeps an Elasticsearch index of the career catalog and runs
// free-text career searches against it.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"skillpath-workers/internal/catalog"
	"skillpath-workers/internal/common/errors"
	"skillpath-workers/internal/models"
)

const (
	DefaultIndex = "careers"
	DefaultSize  = 10
	MaxSize      = 50
)

// Hit is one matching career.
type Hit struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

type careerDocument struct {
	Name                  string   `json:"name"`
	RelatedInterests      []string `json:"related_interests"`
	RequiredSkills        []string `json:"required_skills"`
	PersonalityFit        []string `json:"personality_fit"`
	EducationRequirements []string `json:"education_requirements"`
	Salary                string   `json:"salary"`
	Growth                string   `json:"growth"`
}

func newCareerDocument(c models.CareerRecord) careerDocument {
	return careerDocument{
		Name:                  c.Name,
		RelatedInterests:      c.RelatedInterests,
		RequiredSkills:        c.RequiredSkills,
		PersonalityFit:        c.PersonalityFit,
		EducationRequirements: c.EducationRequirements,
		Salary:                c.SalaryRange,
		Growth:                c.GrowthPotential,
	}
}

type CareerIndex struct {
	client *elasticsearch.Client
	index  string
}

func NewCareerIndex(client *elasticsearch.Client, index string) *CareerIndex {
	if index == "" {
		index = DefaultIndex
	}
	return &CareerIndex{client: client, index: index}
}

func (i *CareerIndex) Name() string {
	return i.index
}

// IndexCatalog upserts every career of c, keyed by career name, and returns
// the number of documents sent.
func (i *CareerIndex) IndexCatalog(ctx context.Context, c *catalog.Catalog) (int, error) {
	if len(c.Careers) == 0 {
		return 0, nil
	}

	var body bytes.Buffer
	enc := json.NewEncoder(&body)
	for _, career := range c.Careers {
		meta := map[string]interface{}{"index": map[string]interface{}{"_id": career.Name}}
		if err := enc.Encode(meta); err != nil {
			return 0, errors.NewSearchQueryFailedError("bulk_index", err)
		}
		if err := enc.Encode(newCareerDocument(career)); err != nil {
			return 0, errors.NewSearchQueryFailedError("bulk_index", err)
		}
	}

	res, err := i.client.Bulk(
		bytes.NewReader(body.Bytes()),
		i.client.Bulk.WithContext(ctx),
		i.client.Bulk.WithIndex(i.index),
		i.client.Bulk.WithRefresh("true"),
	)
	if err != nil {
		return 0, errors.NewElasticsearchConnectionFailedError(err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return 0, errors.NewSearchQueryFailedError("bulk_index", fmt.Errorf("status %s", res.Status()))
	}

	var bulk struct {
		Errors bool `json:"errors"`
	}
	if err := json.NewDecoder(res.Body).Decode(&bulk); err != nil {
		return 0, errors.NewSearchQueryFailedError("bulk_index", err)
	}
	if bulk.Errors {
		return 0, errors.NewSearchQueryFailedError("bulk_index", fmt.Errorf("bulk response reported item errors"))
	}
	return len(c.Careers), nil
}

type searchResponse struct {
	Hits struct {
		Hits []struct {
			Score  float64 `json:"_score"`
			Source struct {
				Name string `json:"name"`
			} `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

// Search returns careers matching text, best first. An empty text lists the
// index. size is clamped to [1, MaxSize]; 0 means DefaultSize.
func (i *CareerIndex) Search(ctx context.Context, text string, size int) ([]Hit, error) {
	switch {
	case size <= 0:
		size = DefaultSize
	case size > MaxSize:
		size = MaxSize
	}

	body, err := json.Marshal(buildCareerQuery(strings.TrimSpace(text), size))
	if err != nil {
		return nil, errors.NewSearchQueryFailedError("career_search", err)
	}

	req := esapi.SearchRequest{
		Index: []string{i.index},
		Body:  bytes.NewReader(body),
	}
	res, err := req.Do(ctx, i.client)
	if err != nil {
		return nil, errors.NewElasticsearchConnectionFailedError(err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return nil, errors.NewIndexNotFoundError(i.index)
	}
	if res.IsError() {
		return nil, errors.NewSearchQueryFailedError("career_search", fmt.Errorf("status %s", res.Status()))
	}

	var parsed searchResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, errors.NewSearchQueryFailedError("career_search", err)
	}

	hits := make([]Hit, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		hits = append(hits, Hit{Name: h.Source.Name, Score: h.Score})
	}
	return hits, nil
}
