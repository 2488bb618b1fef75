// internal/search/index_test.go
package search

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillpath-workers/internal/catalog"
	"skillpath-workers/internal/common/errors"
)

// fakeNode answers like a single Elasticsearch node and records requests.
type fakeNode struct {
	paths  []string
	bodies []string
	status int
	reply  string
}

func (f *fakeNode) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	f.paths = append(f.paths, r.URL.Path)
	f.bodies = append(f.bodies, string(body))

	w.Header().Set("X-Elastic-Product", "Elasticsearch")
	w.Header().Set("Content-Type", "application/json")
	status := f.status
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)
	_, _ = w.Write([]byte(f.reply))
}

func newTestIndex(t *testing.T, node *fakeNode) *CareerIndex {
	t.Helper()
	srv := httptest.NewServer(node)
	t.Cleanup(srv.Close)

	client, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{srv.URL}})
	require.NoError(t, err)
	return NewCareerIndex(client, "")
}

// ==========================
// Indexing Tests
// ==========================

func TestIndexCatalog(t *testing.T) {
	node := &fakeNode{reply: `{"took":3,"errors":false,"items":[]}`}
	idx := newTestIndex(t, node)

	n, err := idx.IndexCatalog(context.Background(), catalog.Default())
	require.NoError(t, err)
	assert.Equal(t, 15, n)

	require.Len(t, node.paths, 1)
	assert.Equal(t, "/careers/_bulk", node.paths[0])

	var lines []string
	scanner := bufio.NewScanner(strings.NewReader(node.bodies[0]))
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	require.Len(t, lines, 30)

	var meta map[string]map[string]string
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &meta))
	assert.Equal(t, "Software Engineer", meta["index"]["_id"])

	var doc careerDocument
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &doc))
	assert.Equal(t, "Software Engineer", doc.Name)
	assert.NotEmpty(t, doc.RequiredSkills)
}

func TestIndexCatalog_ItemErrors(t *testing.T) {
	node := &fakeNode{reply: `{"took":3,"errors":true,"items":[]}`}
	idx := newTestIndex(t, node)

	_, err := idx.IndexCatalog(context.Background(), catalog.Default())
	assert.True(t, errors.HasCode(err, errors.ErrCodeSearchQueryFailed))
}

func TestIndexCatalog_EmptyCatalogSendsNothing(t *testing.T) {
	node := &fakeNode{}
	idx := newTestIndex(t, node)
	c, err := catalog.New(nil, nil, nil, nil)
	require.NoError(t, err)

	n, err := idx.IndexCatalog(context.Background(), c)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, node.paths)
}

// ==========================
// Search Tests
// ==========================

func TestSearch(t *testing.T) {
	tests := []struct {
		name           string
		node           *fakeNode
		text           string
		size           int
		validateOutput func(t *testing.T, node *fakeNode, hits []Hit, err error)
	}{
		{
			name: "hits in order",
			node: &fakeNode{reply: `{"hits":{"hits":[
				{"_score":4.2,"_source":{"name":"Data Scientist"}},
				{"_score":1.5,"_source":{"name":"Data Analyst"}}]}}`},
			text: " data ",
			validateOutput: func(t *testing.T, node *fakeNode, hits []Hit, err error) {
				require.NoError(t, err)
				assert.Equal(t, []Hit{{"Data Scientist", 4.2}, {"Data Analyst", 1.5}}, hits)
				assert.Equal(t, "/careers/_search", node.paths[0])

				var body map[string]interface{}
				require.NoError(t, json.Unmarshal([]byte(node.bodies[0]), &body))
				assert.EqualValues(t, DefaultSize, body["size"])
				mm := body["query"].(map[string]interface{})["multi_match"].(map[string]interface{})
				assert.Equal(t, "data", mm["query"])
			},
		},
		{
			name: "empty text matches all and size is clamped",
			node: &fakeNode{reply: `{"hits":{"hits":[]}}`},
			size: 500,
			validateOutput: func(t *testing.T, node *fakeNode, hits []Hit, err error) {
				require.NoError(t, err)
				assert.Empty(t, hits)

				var body map[string]interface{}
				require.NoError(t, json.Unmarshal([]byte(node.bodies[0]), &body))
				assert.EqualValues(t, MaxSize, body["size"])
				assert.Contains(t, body["query"], "match_all")
			},
		},
		{
			name: "missing index",
			node: &fakeNode{status: http.StatusNotFound, reply: `{"error":{"type":"index_not_found_exception"}}`},
			text: "design",
			validateOutput: func(t *testing.T, _ *fakeNode, _ []Hit, err error) {
				assert.True(t, errors.HasCode(err, errors.ErrCodeIndexNotFound))
			},
		},
		{
			name: "bad request",
			node: &fakeNode{status: http.StatusBadRequest, reply: `{"error":{"type":"parsing_exception"}}`},
			text: "design",
			validateOutput: func(t *testing.T, _ *fakeNode, _ []Hit, err error) {
				assert.True(t, errors.HasCode(err, errors.ErrCodeSearchQueryFailed))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx := newTestIndex(t, tt.node)
			hits, err := idx.Search(context.Background(), tt.text, tt.size)
			tt.validateOutput(t, tt.node, hits, err)
		})
	}
}
