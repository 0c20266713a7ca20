package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/kurochkinivan/doc_intelligence/internal/config"
	v1 "github.com/kurochkinivan/doc_intelligence/internal/controller/http/v1"
	"github.com/kurochkinivan/doc_intelligence/internal/domain"
	"github.com/kurochkinivan/doc_intelligence/internal/llm"
	"github.com/kurochkinivan/doc_intelligence/internal/llm/openai"
	"github.com/kurochkinivan/doc_intelligence/internal/llm/vertex"
	"github.com/kurochkinivan/doc_intelligence/internal/ocr/mineru"
	"github.com/kurochkinivan/doc_intelligence/internal/pipeline"
	"github.com/kurochkinivan/doc_intelligence/internal/queue"
	"github.com/kurochkinivan/doc_intelligence/internal/report"
	"github.com/kurochkinivan/doc_intelligence/internal/repository/postgresql"
	"github.com/kurochkinivan/doc_intelligence/internal/retry"
	"github.com/kurochkinivan/doc_intelligence/internal/storage"
	"golang.org/x/sync/errgroup"
)

const (
	reportsBuffer   = 100
	shutdownTimeout = 5 * time.Second
)

type App struct {
	log *slog.Logger
	cfg *config.Config
}

func New(log *slog.Logger, cfg *config.Config) *App {
	return &App{
		log: log,
		cfg: cfg,
	}
}

type repositories struct {
	documents *postgresql.DocumentsRepository
	benefits  *postgresql.BenefitsRepository
	testCases *postgresql.TestCasesRepository
}

func (a *App) Run(ctx context.Context) error {
	a.log.InfoContext(ctx, "starting app",
		slog.String("reports_dir", a.cfg.App.ReportsDirectory),
		slog.Duration("poll_interval", a.cfg.App.PollInterval),
		slog.Duration("dwell_time", a.cfg.App.DwellTime),
		slog.Int("workers", a.cfg.App.Workers),
		slog.String("llm_provider", a.cfg.LLM.Provider),
	)

	a.log.InfoContext(ctx, "establishing postgresql connection",
		slog.String("postgresql_host", a.cfg.PostgreSQL.Host),
		slog.String("postgresql_port", a.cfg.PostgreSQL.Port),
		slog.String("postgresql_dbname", a.cfg.PostgreSQL.DBName),
	)

	pool, err := postgresql.NewConnection(ctx, a.log, a.cfg.PostgreSQL)
	if err != nil {
		return fmt.Errorf("failed to create db connection: %w", err)
	}
	defer pool.Close()

	txManager := postgresql.NewTxManager(pool)
	repos := repositories{
		documents: postgresql.NewDocumentsRepository(pool),
		benefits:  postgresql.NewBenefitsRepository(pool, txManager),
		testCases: postgresql.NewTestCasesRepository(pool, txManager),
	}

	failed, err := repos.documents.FailAbandoned(ctx)
	if err != nil {
		return fmt.Errorf("failed to fail abandoned documents: %w", err)
	}
	if failed > 0 {
		a.log.WarnContext(ctx, "documents left in processing marked as failed", slog.Int64("count", failed))
	}

	files, err := storage.NewMinioStorage(a.cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to create storage: %w", err)
	}

	if err := files.EnsureBucket(ctx); err != nil {
		return fmt.Errorf("failed to ensure bucket: %w", err)
	}

	model, closeModel, err := a.newModel(ctx)
	if err != nil {
		return fmt.Errorf("failed to create llm client: %w", err)
	}
	defer closeModel()

	if err := os.MkdirAll(a.cfg.App.ReportsDirectory, 0o755); err != nil {
		return fmt.Errorf("failed to create reports directory: %w", err)
	}

	return a.startPipeline(ctx, repos, files, model)
}

func (a *App) newModel(ctx context.Context) (llm.Model, func(), error) {
	switch a.cfg.LLM.Provider {
	case config.LLMProviderVertex:
		client, err := vertex.New(ctx, a.cfg.LLM.Vertex)
		if err != nil {
			return nil, nil, err
		}

		return client, func() {
			if err := client.Close(); err != nil {
				a.log.Error("failed to close vertex client", slog.String("err", err.Error()))
			}
		}, nil
	case config.LLMProviderOpenAI:
		return openai.New(a.log, a.cfg.LLM.OpenAI), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown llm provider %q", a.cfg.LLM.Provider)
	}
}

func (a *App) startPipeline(
	ctx context.Context,
	repos repositories,
	files *storage.MinioStorage,
	model llm.Model,
) error {
	results := make(chan *domain.AnalysisResult, reportsBuffer)

	workQueue := queue.New(a.cfg.App.QueueCapacity, a.cfg.App.DequeueGrace)
	ocr := mineru.New(a.log, a.cfg.OCR, files)
	analyzer := llm.NewAnalyzer(a.log, model, retry.Exponential(a.cfg.LLM.MaxRetries, a.cfg.LLM.RetryBaseDelay))
	reportGenerator := report.New()

	extractor := pipeline.NewExtractor(
		a.log,
		repos.documents,
		ocr,
		analyzer,
		repos.benefits,
		repos.testCases,
		a.cfg.LLM.SegmentSize,
	)
	monitor := pipeline.NewMonitor(
		a.log,
		a.cfg.App.PollInterval,
		a.cfg.App.DwellTime,
		a.cfg.App.MaxConsecutiveErrors,
		repos.documents,
		repos.documents,
		workQueue,
	)
	dispatcher := pipeline.NewDispatcher(
		a.log,
		a.cfg.App.Workers,
		a.cfg.App.PollInterval,
		repos.documents,
		workQueue,
		extractor,
		results,
	)
	reporter := pipeline.NewReporter(a.log, a.cfg.App.ReportsDirectory, results, reportGenerator)

	handler := v1.NewDocumentsHandler(
		a.log,
		a.cfg.HTTP.MaxUploadSize,
		repos.documents,
		repos.benefits,
		repos.testCases,
		files,
		reportGenerator,
	)
	server := v1.NewServer(a.cfg.HTTP, handler)

	a.log.InfoContext(ctx, "work queue created", slog.Int("capacity", workQueue.Cap()))

	erg, ctx := errgroup.WithContext(ctx)

	erg.Go(func() error {
		a.log.InfoContext(ctx, "monitor started")
		return monitor.Run(ctx)
	})

	erg.Go(func() error {
		a.log.InfoContext(ctx, "dispatcher started")
		return dispatcher.Run(ctx)
	})

	erg.Go(func() error {
		a.log.InfoContext(ctx, "reporter started")
		return reporter.Run(ctx)
	})

	erg.Go(func() error {
		a.log.InfoContext(ctx, "starting http server",
			slog.String("addr", net.JoinHostPort(a.cfg.HTTP.Host, a.cfg.HTTP.Port)),
		)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}

		return nil
	})

	erg.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	a.log.InfoContext(ctx, "all components started")

	err := erg.Wait()

	// Оставшиеся в памяти документы остаются queued в бд и будут поставлены в очередь при следующем старте
	if pending := workQueue.Len(); pending > 0 {
		a.log.WarnContext(ctx, "work queue not drained", slog.Int("pending", pending))
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		a.log.ErrorContext(ctx, "pipeline stopped with error", slog.String("err", err.Error()))

		return err
	}

	a.log.InfoContext(ctx, "pipeline stopped gracefully")

	return nil
}
