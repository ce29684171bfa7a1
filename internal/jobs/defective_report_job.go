package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"packaging/internal/core/application/usecases/queries"
	"packaging/internal/core/ports"
	"packaging/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// DefectiveReportJob renders the defective orders report for the trailing
// thirty days on a schedule and drops the PDF into the output directory.
type DefectiveReportJob struct {
	handler   queries.GetDefectiveOrdersQueryHandler
	renderer  ports.ReportRenderer
	schedule  string
	outputDir string
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewDefectiveReportJob creates the scheduled report job. The schedule is a
// six field cron expression with seconds.
func NewDefectiveReportJob(
	handler queries.GetDefectiveOrdersQueryHandler,
	renderer ports.ReportRenderer,
	schedule string,
	outputDir string,
	logger *slog.Logger,
) *DefectiveReportJob {
	return &DefectiveReportJob{
		handler:   handler,
		renderer:  renderer,
		schedule:  schedule,
		outputDir: outputDir,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "defective_report_job"),
	}
}

// Start schedules the report job.
func (j *DefectiveReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Defective report job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(),
		"Defective report job started", "schedule", j.schedule)
	return nil
}

// Stop stops the report job.
func (j *DefectiveReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Defective report job stopped")
}

// Run builds one report covering the default trailing window and writes it
// to the output directory. A period without defective orders is not an
// error, the run is skipped.
func (j *DefectiveReportJob) Run(ctx context.Context) error {
	query, err := queries.NewGetDefectiveOrdersQuery(time.Time{}, time.Time{}, "", true)
	if err != nil {
		return err
	}

	rows, err := j.handler.Handle(ctx, query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			j.logger.InfoContext(ctx, "No defective orders in the report window, skipping")
			return nil
		}

		return err
	}

	document, err := j.renderer.RenderDefectiveOrdersReport(
		rows,
		query.DateFrom().Format("2006-01-02"),
		query.DateTo().Add(-time.Second).Format("2006-01-02"),
		query.Responsible(),
	)
	if err != nil {
		return err
	}

	if err = os.MkdirAll(j.outputDir, 0o755); err != nil {
		return err
	}

	filename := fmt.Sprintf("defective_orders_report_%s.pdf", time.Now().Format("2006-01-02"))
	path := filepath.Join(j.outputDir, filename)
	if err = os.WriteFile(path, document, 0o644); err != nil {
		return err
	}

	j.logger.InfoContext(ctx, "Defective report written",
		"path", path, "orders", len(rows))
	return nil
}
