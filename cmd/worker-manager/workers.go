// cmd/worker-manager/workers.go
package main

import (
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"

	"skillpath-workers/internal/advisor"
	"skillpath-workers/internal/catalog"
	"skillpath-workers/internal/common/camunda"
	"skillpath-workers/internal/common/config"
	"skillpath-workers/internal/common/logger"
	"skillpath-workers/internal/courses"
	"skillpath-workers/internal/report"
	"skillpath-workers/internal/roadmap"
	"skillpath-workers/internal/scoring"
	"skillpath-workers/pkg/registry"

	// Assessment Workers (1)
	vp "skillpath-workers/internal/workers/assessment/validate-profile"

	// Career Workers (3)
	rc "skillpath-workers/internal/workers/career/rank-careers"
	sc "skillpath-workers/internal/workers/career/score-careers"
	src "skillpath-workers/internal/workers/career/search-careers"

	// Learning Workers (2)
	gr "skillpath-workers/internal/workers/learning/generate-roadmap"
	scs "skillpath-workers/internal/workers/learning/select-courses"

	// Report Workers (3)
	br "skillpath-workers/internal/workers/report/build-report"
	dr "skillpath-workers/internal/workers/report/deliver-report"
	sa "skillpath-workers/internal/workers/report/save-assessment"
)

// registerWorkers opens one job worker per enabled task type. Workers whose
// backend is disabled are skipped.
func registerWorkers(client zbc.Client, cfg *config.Config, cat *catalog.Catalog, infra *infrastructure, log logger.Logger) ([]worker.JobWorker, error) {
	engine := scoring.NewEngine(cat, cfg.Assessment.TopN)
	selector := courses.NewSelector(cat)
	generator := roadmap.NewGenerator(cat)
	adv := advisor.New(cat, advisor.Config{
		TopN:          cfg.Assessment.TopN,
		SkillGapLimit: cfg.Assessment.ReportSkillGap,
	})
	renderer, err := report.NewRenderer(
		report.WithTopCareers(cfg.Assessment.ReportTopCareers),
		report.WithTopCourses(cfg.Assessment.ReportTopCourses),
	)
	if err != nil {
		return nil, err
	}

	var scoreCache sc.ScoreCache
	if infra.redis != nil {
		scoreCache = infra.redis
	}
	var email dr.EmailSender
	if infra.ses != nil {
		email = infra.ses
	}
	var sms dr.SMSSender
	if infra.sns != nil {
		sms = infra.sns
	}

	handlers := map[string]camunda.JobHandler{
		vp.TaskType: vp.NewHandler(vp.LoadConfig(config.GetWorkerConfig(cfg, vp.TaskType)), log),
		sc.TaskType: sc.NewHandler(
			sc.LoadConfig(config.GetWorkerConfig(cfg, sc.TaskType), cfg.Assessment),
			engine, scoreCache, log,
		),
		rc.TaskType: rc.NewHandler(
			rc.LoadConfig(config.GetWorkerConfig(cfg, rc.TaskType), cfg.Assessment),
			engine, log,
		),
		scs.TaskType: scs.NewHandler(scs.LoadConfig(config.GetWorkerConfig(cfg, scs.TaskType)), selector, log),
		gr.TaskType:  gr.NewHandler(gr.LoadConfig(config.GetWorkerConfig(cfg, gr.TaskType)), generator, log),
		br.TaskType:  br.NewHandler(br.LoadConfig(config.GetWorkerConfig(cfg, br.TaskType)), adv, renderer, log),
		dr.TaskType:  dr.NewHandler(dr.LoadConfig(config.GetWorkerConfig(cfg, dr.TaskType)), email, sms, log),
	}

	if infra.store != nil {
		handlers[sa.TaskType] = sa.NewHandler(sa.LoadConfig(config.GetWorkerConfig(cfg, sa.TaskType)), infra.store, log)
	} else {
		log.Warn("worker skipped, PostgreSQL disabled", map[string]interface{}{"taskType": sa.TaskType})
	}
	if infra.index != nil {
		handlers[src.TaskType] = src.NewHandler(src.LoadConfig(config.GetWorkerConfig(cfg, src.TaskType)), infra.index, log)
	} else {
		log.Warn("worker skipped, Elasticsearch disabled", map[string]interface{}{"taskType": src.TaskType})
	}

	checkRegistry(cfg.App.RegistryPath, handlers, log)

	var opened []worker.JobWorker
	for taskType, handler := range handlers {
		if !config.IsWorkerEnabled(cfg, taskType) {
			log.Info("worker disabled", map[string]interface{}{"taskType": taskType})
			continue
		}
		wcfg := config.GetWorkerConfig(cfg, taskType)
		opened = append(opened, camunda.OpenWorker(client, taskType, wcfg, handler))
		log.Info("worker started", map[string]interface{}{
			"taskType":      taskType,
			"maxJobsActive": wcfg.MaxJobsActive,
			"timeout_ms":    wcfg.Timeout,
		})
	}
	return opened, nil
}

// checkRegistry warns about running task types that the activity registry
// does not document. A missing or invalid registry is only logged.
func checkRegistry(path string, handlers map[string]camunda.JobHandler, log logger.Logger) {
	reg, err := registry.LoadRegistry(path)
	if err != nil {
		log.Warn("activity registry not loaded", map[string]interface{}{"path": path, "error": err.Error()})
		return
	}
	if err := reg.Validate(); err != nil {
		log.Warn("activity registry invalid", map[string]interface{}{"path": path, "error": err.Error()})
		return
	}

	running := make([]string, 0, len(handlers))
	for taskType := range handlers {
		running = append(running, taskType)
	}
	for _, taskType := range reg.Unregistered(running) {
		log.Warn("task type missing from activity registry", map[string]interface{}{"taskType": taskType})
	}
}
