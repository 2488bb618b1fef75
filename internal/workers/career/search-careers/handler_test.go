// internal/workers/career/search-careers/handler_test.go
package searchcareers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillpath-workers/internal/common/config"
	apperrors "skillpath-workers/internal/common/errors"
	"skillpath-workers/internal/common/logger"
	"skillpath-workers/internal/search"
)

// ==========================
// Test Helper Functions
// ==========================

type fakeSearcher struct {
	hits      []search.Hit
	err       error
	gotQuery  string
	gotSize   int
	callCount int
}

func (f *fakeSearcher) Search(_ context.Context, text string, size int) ([]search.Hit, error) {
	f.callCount++
	f.gotQuery = text
	f.gotSize = size
	return f.hits, f.err
}

func intPtr(v int) *int { return &v }

// ==========================
// Configuration Tests
// ==========================

func TestLoadConfig(t *testing.T) {
	cfg := LoadConfig(config.WorkerConfig{})
	assert.Equal(t, search.DefaultSize, cfg.DefaultSize)
	assert.Equal(t, search.MaxSize, cfg.MaxSize)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
}

// ==========================
// Core Functionality Tests
// ==========================

func TestExecute(t *testing.T) {
	tests := []struct {
		name           string
		input          *Input
		validateOutput func(t *testing.T, f *fakeSearcher, out *Output)
	}{
		{
			name:  "default size and trimmed query",
			input: &Input{Query: "  data science  "},
			validateOutput: func(t *testing.T, f *fakeSearcher, out *Output) {
				assert.Equal(t, "data science", f.gotQuery)
				assert.Equal(t, search.DefaultSize, f.gotSize)
				assert.Len(t, out.Careers, 2)
			},
		},
		{
			name:  "size is capped",
			input: &Input{Query: "design", Size: intPtr(1000)},
			validateOutput: func(t *testing.T, f *fakeSearcher, out *Output) {
				assert.Equal(t, search.MaxSize, f.gotSize)
			},
		},
		{
			name:  "explicit size",
			input: &Input{Size: intPtr(3)},
			validateOutput: func(t *testing.T, f *fakeSearcher, out *Output) {
				assert.Equal(t, "", f.gotQuery)
				assert.Equal(t, 3, f.gotSize)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakeSearcher{hits: []search.Hit{
				{Name: "Data Scientist", Score: 3.2},
				{Name: "Data Analyst", Score: 2.9},
			}}
			h := NewHandler(LoadConfig(config.WorkerConfig{}), f, logger.NewTestLogger(t))

			out, err := h.Execute(context.Background(), tt.input)

			require.NoError(t, err)
			tt.validateOutput(t, f, out)
		})
	}
}

func TestExecute_NoHitsIsEmptyList(t *testing.T) {
	h := NewHandler(LoadConfig(config.WorkerConfig{}), &fakeSearcher{}, logger.NewNoOpLogger())

	out, err := h.Execute(context.Background(), &Input{Query: "astronaut"})

	require.NoError(t, err)
	assert.NotNil(t, out.Careers)
	assert.Empty(t, out.Careers)
}

// ==========================
// Error Handling Tests
// ==========================

func TestExecute_Errors(t *testing.T) {
	f := &fakeSearcher{err: apperrors.NewIndexNotFoundError("careers")}
	h := NewHandler(LoadConfig(config.WorkerConfig{}), f, logger.NewNoOpLogger())

	_, err := h.Execute(context.Background(), &Input{Query: "x"})
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeIndexNotFound))

	_, err = h.Execute(context.Background(), &Input{Size: intPtr(-1)})
	assert.ErrorIs(t, err, ErrInvalidSize)
	assert.Equal(t, 1, f.callCount)
}
