// cmd/tools/worker-generator/templates.go
package main

const configTemplate = `// internal/workers/{{ .Category }}/{{ .TaskType }}/config.go
package {{ .PackageName }}

import (
	"time"

	"skillpath-workers/internal/common/config"
)

type Config struct {
	Timeout time.Duration
}

func LoadConfig(wc config.WorkerConfig) *Config {
	timeout := config.GetDuration(wc.Timeout)
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Config{Timeout: timeout}
}
`

const modelsTemplate = `// internal/workers/{{ .Category }}/{{ .TaskType }}/models.go
package {{ .PackageName }}

type Input struct {
{{- range .InputFields }}
	{{ .Name }} {{ .Type }} ` + "`json:\"{{ .JSONTag }}\"`" + `
{{- end }}
}

type Output struct {
{{- range .OutputFields }}
	{{ .Name }} {{ .Type }} ` + "`json:\"{{ .JSONTag }}\"`" + `
{{- end }}
}
`

const handlerTemplate = `// internal/workers/{{ .Category }}/{{ .TaskType }}/handler.go
package {{ .PackageName }}

import (
	"context"
	"encoding/json"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"go.opentelemetry.io/otel/attribute"

	"skillpath-workers/internal/common/camunda"
	apperrors "skillpath-workers/internal/common/errors"
	"skillpath-workers/internal/common/logger"
	"skillpath-workers/internal/common/metrics"
	"skillpath-workers/internal/common/observability"
)

const (
	TaskType = "{{ .TaskType }}"
)

type Handler struct {
	config *Config
	logger logger.Logger
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		logger: log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	done := metrics.JobStarted(ctx, TaskType)
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	ctx, span := observability.StartSpan(ctx, TaskType, attribute.Int64("jobKey", job.Key))
	defer span.End()

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		done(camunda.FailJob(ctx, client, job, apperrors.NewParseError(err), h.logger))
		return
	}

	output, err := h.Execute(ctx, &input)
	if err != nil {
		done(camunda.FailJob(ctx, client, job, err, h.logger))
		return
	}

	done("")
	camunda.CompleteJob(ctx, client, job, output, h.logger)
}

// Execute: {{ .Description }}
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	// TODO: implement {{ .Name }}
	return &Output{}, nil
}
`

const handlerTestTemplate = `// internal/workers/{{ .Category }}/{{ .TaskType }}/handler_test.go
package {{ .PackageName }}

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"skillpath-workers/internal/common/config"
	"skillpath-workers/internal/common/logger"
)

func createTestHandler(t *testing.T) *Handler {
	return NewHandler(LoadConfig(config.WorkerConfig{}), logger.NewTestLogger(t))
}

func TestExecute(t *testing.T) {
	h := createTestHandler(t)

	out, err := h.Execute(context.Background(), &Input{})
	require.NoError(t, err)
	require.NotNil(t, out)
}
`
