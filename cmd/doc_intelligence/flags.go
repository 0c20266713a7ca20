package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kurochkinivan/doc_intelligence/internal/app"
	"github.com/kurochkinivan/doc_intelligence/internal/config"
	altsrc "github.com/urfave/cli-altsrc/v3"
	"github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

var version = "dev"

func cmd() *cli.Command {
	return &cli.Command{
		Name:    "doc_intelligence",
		Usage:   "benefit document intelligence worker",
		Version: version,
		Flags:   flags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log := newLogger(cmd.String("log-level"), cmd.String("log-format"))

			cfg := config.Load(cmd)

			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			return app.New(log, cfg).Run(ctx)
		},
	}
}

func flags() []cli.Flag {
	var configPath string

	src := func(key string) cli.ValueSourceChain {
		return cli.NewValueSourceChain(yaml.YAML(key, altsrc.NewStringPtrSourcer(&configPath)))
	}

	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Validator:   validateConfig,
			Usage:       "Load configuration from `FILE`",
			Destination: &configPath,
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "Set log level (debug, info, warn, error)",
			Value:   "debug",
			Sources: src("log.level"),
		},
		&cli.StringFlag{
			Name:    "log-format",
			Usage:   "Set log format (text, json)",
			Value:   "text",
			Sources: src("log.format"),
		},

		// app
		&cli.DurationFlag{
			Name:    "poll-interval",
			Aliases: []string{"p"},
			Usage:   "Set metadata store poll interval",
			Value:   3 * time.Second,
			Sources: src("app.poll_interval"),
		},
		&cli.DurationFlag{
			Name:    "dwell-time",
			Usage:   "Set minimum document age before it is queued",
			Value:   1 * time.Minute,
			Sources: src("app.dwell_time"),
		},
		&cli.IntFlag{
			Name:    "queue-capacity",
			Usage:   "Set work queue capacity",
			Value:   100,
			Sources: src("app.queue_capacity"),
		},
		&cli.DurationFlag{
			Name:    "dequeue-grace",
			Usage:   "Set how long a worker waits on an empty queue",
			Value:   5 * time.Second,
			Sources: src("app.dequeue_grace"),
		},
		&cli.IntFlag{
			Name:    "workers",
			Aliases: []string{"w"},
			Usage:   "Set number of pipeline workers",
			Value:   1,
			Sources: src("app.workers"),
		},
		&cli.IntFlag{
			Name:    "max-consecutive-errors",
			Usage:   "Set how many failing monitor ticks in a row stop the service (1 stops on the first failure, 0 never stops)",
			Value:   5,
			Sources: src("app.max_consecutive_errors"),
		},
		&cli.StringFlag{
			Name:    "reports-dir",
			Aliases: []string{"r"},
			Usage:   "Set directory to write reports to",
			Value:   "reports",
			Sources: src("app.reports_dir"),
		},

		// postgresql
		&cli.StringFlag{
			Name:     "pg-host",
			Usage:    "Set PostgreSQL host",
			Value:    "localhost",
			Sources:  src("postgresql.host"),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-port",
			Usage:    "Set PostgreSQL port",
			Value:    "5432",
			Sources:  src("postgresql.port"),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-username",
			Usage:    "Set PostgreSQL username",
			Sources:  src("postgresql.username"),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-password",
			Usage:    "Set PostgreSQL password",
			Sources:  src("postgresql.password"),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-dbname",
			Usage:    "Set PostgreSQL database name",
			Value:    "doc_intelligence",
			Sources:  src("postgresql.dbname"),
			Required: true,
		},

		// http
		&cli.StringFlag{
			Name:    "http-host",
			Usage:   "Set HTTP server host",
			Value:   "localhost",
			Sources: src("http.host"),
		},
		&cli.StringFlag{
			Name:    "http-port",
			Usage:   "Set HTTP server port",
			Value:   "8080",
			Sources: src("http.port"),
		},
		&cli.DurationFlag{
			Name:    "http-idle-timeout",
			Usage:   "Set HTTP server idle timeout",
			Value:   1 * time.Minute,
			Sources: src("http.idle_timeout"),
		},
		&cli.DurationFlag{
			Name:    "http-read-timeout",
			Usage:   "Set HTTP server read timeout",
			Value:   30 * time.Second,
			Sources: src("http.read_timeout"),
		},
		&cli.DurationFlag{
			Name:    "http-write-timeout",
			Usage:   "Set HTTP server write timeout",
			Value:   30 * time.Second,
			Sources: src("http.write_timeout"),
		},
		&cli.IntFlag{
			Name:    "http-max-upload-mb",
			Usage:   "Set maximum upload size in megabytes",
			Value:   50,
			Sources: src("http.max_upload_mb"),
		},

		// storage
		&cli.StringFlag{
			Name:     "storage-endpoint",
			Usage:    "Set S3-compatible storage endpoint",
			Value:    "localhost:9000",
			Sources:  src("storage.endpoint"),
			Required: true,
		},
		&cli.StringFlag{
			Name:    "storage-access-key",
			Usage:   "Set storage access key",
			Sources: src("storage.access_key"),
		},
		&cli.StringFlag{
			Name:    "storage-secret-key",
			Usage:   "Set storage secret key",
			Sources: src("storage.secret_key"),
		},
		&cli.StringFlag{
			Name:    "storage-bucket",
			Usage:   "Set bucket for uploaded documents",
			Value:   "documents",
			Sources: src("storage.bucket"),
		},
		&cli.BoolFlag{
			Name:    "storage-use-ssl",
			Usage:   "Use TLS for storage connections",
			Sources: src("storage.use_ssl"),
		},
		&cli.DurationFlag{
			Name:    "storage-url-expiry",
			Usage:   "Set lifetime of presigned document URLs",
			Value:   1 * time.Hour,
			Sources: src("storage.url_expiry"),
		},

		// ocr
		&cli.StringFlag{
			Name:     "ocr-api-url",
			Usage:    "Set OCR service base URL",
			Sources:  src("ocr.api_url"),
			Required: true,
		},
		&cli.StringFlag{
			Name:    "ocr-api-token",
			Usage:   "Set OCR service token",
			Sources: src("ocr.api_token"),
		},
		&cli.StringFlag{
			Name:    "ocr-model-version",
			Usage:   "Set OCR model version",
			Value:   "vlm",
			Sources: src("ocr.model_version"),
		},
		&cli.DurationFlag{
			Name:    "ocr-poll-interval",
			Usage:   "Set OCR task poll interval",
			Value:   5 * time.Second,
			Sources: src("ocr.poll_interval"),
		},
		&cli.IntFlag{
			Name:    "ocr-max-polls",
			Usage:   "Set maximum number of OCR task polls",
			Value:   360,
			Sources: src("ocr.max_polls"),
		},
		&cli.DurationFlag{
			Name:    "ocr-http-timeout",
			Usage:   "Set OCR HTTP request timeout",
			Value:   60 * time.Second,
			Sources: src("ocr.http_timeout"),
		},

		// llm
		&cli.StringFlag{
			Name:    "llm-provider",
			Usage:   "Set language model provider (vertex, openai)",
			Value:   config.LLMProviderVertex,
			Sources: src("llm.provider"),
		},
		&cli.IntFlag{
			Name:    "llm-max-retries",
			Usage:   "Set number of retries for a failed model call",
			Value:   5,
			Sources: src("llm.max_retries"),
		},
		&cli.DurationFlag{
			Name:    "llm-retry-base-delay",
			Usage:   "Set delay before the first model call retry",
			Value:   2 * time.Minute,
			Sources: src("llm.retry_base_delay"),
		},
		&cli.IntFlag{
			Name:    "llm-segment-size",
			Usage:   "Set max number of characters sent to the model per benefit discovery call",
			Value:   60000,
			Sources: src("llm.segment_size"),
		},
		&cli.StringFlag{
			Name:    "vertex-project",
			Usage:   "Set Google Cloud project for Vertex AI",
			Sources: src("llm.vertex.project"),
		},
		&cli.StringFlag{
			Name:    "vertex-region",
			Usage:   "Set Vertex AI region",
			Value:   "us-central1",
			Sources: src("llm.vertex.region"),
		},
		&cli.StringFlag{
			Name:    "vertex-model",
			Usage:   "Set Vertex AI model name",
			Value:   "gemini-1.5-pro",
			Sources: src("llm.vertex.model"),
		},
		&cli.StringFlag{
			Name:    "openai-base-url",
			Usage:   "Set OpenAI-compatible API base URL",
			Value:   "https://api.openai.com/v1",
			Sources: src("llm.openai.base_url"),
		},
		&cli.StringFlag{
			Name:    "openai-api-key",
			Usage:   "Set OpenAI API key",
			Sources: src("llm.openai.api_key"),
		},
		&cli.StringFlag{
			Name:    "openai-model",
			Usage:   "Set OpenAI model name",
			Value:   "gpt-4o-mini",
			Sources: src("llm.openai.model"),
		},
		&cli.DurationFlag{
			Name:    "openai-timeout",
			Usage:   "Set OpenAI request timeout",
			Value:   60 * time.Second,
			Sources: src("llm.openai.timeout"),
		},
	}
}

func validateConfig(config string) error {
	info, err := os.Stat(config)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", config)
		}
		return fmt.Errorf("failed to stat %q: %w", config, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%q is a directory, not a file", config)
	}

	ext := filepath.Ext(info.Name())
	if ext != ".yml" && ext != ".yaml" {
		return fmt.Errorf("invalid extension %q", config)
	}

	return nil
}
