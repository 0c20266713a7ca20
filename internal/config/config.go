package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"
)

const (
	LLMProviderVertex = "vertex"
	LLMProviderOpenAI = "openai"
)

type Config struct {
	App
	PostgreSQL
	HTTP
	Storage
	OCR
	LLM
}

type App struct {
	PollInterval         time.Duration
	DwellTime            time.Duration
	QueueCapacity        int
	DequeueGrace         time.Duration
	Workers              int
	MaxConsecutiveErrors int
	ReportsDirectory     string
}

type PostgreSQL struct {
	Host     string
	Port     string
	Username string
	Password string
	DBName   string
}

type HTTP struct {
	Host          string
	Port          string
	IdleTimeout   time.Duration
	ReadTimeout   time.Duration
	WriteTimeout  time.Duration
	MaxUploadSize int64
}

type Storage struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	URLExpiry time.Duration
}

type OCR struct {
	APIURL       string
	APIToken     string
	ModelVersion string
	PollInterval time.Duration
	MaxPolls     int
	Timeout      time.Duration
}

type LLM struct {
	Provider       string
	MaxRetries     int
	RetryBaseDelay time.Duration
	SegmentSize    int
	Vertex         Vertex
	OpenAI         OpenAI
}

type Vertex struct {
	ProjectID string
	Region    string
	Model     string
}

type OpenAI struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

func Load(cmd *cli.Command) *Config {
	return &Config{
		App: App{
			PollInterval:         cmd.Duration("poll-interval"),
			DwellTime:            cmd.Duration("dwell-time"),
			QueueCapacity:        cmd.Int("queue-capacity"),
			DequeueGrace:         cmd.Duration("dequeue-grace"),
			Workers:              cmd.Int("workers"),
			MaxConsecutiveErrors: cmd.Int("max-consecutive-errors"),
			ReportsDirectory:     cmd.String("reports-dir"),
		},
		PostgreSQL: PostgreSQL{
			Host:     cmd.String("pg-host"),
			Port:     cmd.String("pg-port"),
			Username: cmd.String("pg-username"),
			Password: cmd.String("pg-password"),
			DBName:   cmd.String("pg-dbname"),
		},
		HTTP: HTTP{
			Host:          cmd.String("http-host"),
			Port:          cmd.String("http-port"),
			IdleTimeout:   cmd.Duration("http-idle-timeout"),
			ReadTimeout:   cmd.Duration("http-read-timeout"),
			WriteTimeout:  cmd.Duration("http-write-timeout"),
			MaxUploadSize: int64(cmd.Int("http-max-upload-mb")) << 20,
		},
		Storage: Storage{
			Endpoint:  cmd.String("storage-endpoint"),
			AccessKey: cmd.String("storage-access-key"),
			SecretKey: cmd.String("storage-secret-key"),
			Bucket:    cmd.String("storage-bucket"),
			UseSSL:    cmd.Bool("storage-use-ssl"),
			URLExpiry: cmd.Duration("storage-url-expiry"),
		},
		OCR: OCR{
			APIURL:       cmd.String("ocr-api-url"),
			APIToken:     cmd.String("ocr-api-token"),
			ModelVersion: cmd.String("ocr-model-version"),
			PollInterval: cmd.Duration("ocr-poll-interval"),
			MaxPolls:     cmd.Int("ocr-max-polls"),
			Timeout:      cmd.Duration("ocr-http-timeout"),
		},
		LLM: LLM{
			Provider:       cmd.String("llm-provider"),
			MaxRetries:     cmd.Int("llm-max-retries"),
			RetryBaseDelay: cmd.Duration("llm-retry-base-delay"),
			SegmentSize:    cmd.Int("llm-segment-size"),
			Vertex: Vertex{
				ProjectID: cmd.String("vertex-project"),
				Region:    cmd.String("vertex-region"),
				Model:     cmd.String("vertex-model"),
			},
			OpenAI: OpenAI{
				BaseURL: cmd.String("openai-base-url"),
				APIKey:  cmd.String("openai-api-key"),
				Model:   cmd.String("openai-model"),
				Timeout: cmd.Duration("openai-timeout"),
			},
		},
	}
}

func (c *Config) Validate() error {
	var errs []error

	if c.App.PollInterval <= 0 {
		errs = append(errs, errors.New("poll interval must be positive"))
	}
	if c.App.DwellTime < 0 {
		errs = append(errs, errors.New("dwell time must not be negative"))
	}
	if c.App.QueueCapacity < 1 {
		errs = append(errs, errors.New("queue capacity must be at least 1"))
	}
	if c.App.Workers < 1 {
		errs = append(errs, errors.New("workers must be at least 1"))
	}
	if c.OCR.MaxPolls < 1 {
		errs = append(errs, errors.New("ocr max polls must be at least 1"))
	}
	if c.LLM.MaxRetries < 0 {
		errs = append(errs, errors.New("llm max retries must not be negative"))
	}
	if c.LLM.SegmentSize < 1 {
		errs = append(errs, errors.New("llm segment size must be at least 1"))
	}

	switch c.LLM.Provider {
	case LLMProviderVertex:
		if c.LLM.Vertex.ProjectID == "" {
			errs = append(errs, errors.New("vertex project is required"))
		}
	case LLMProviderOpenAI:
		if c.LLM.OpenAI.APIKey == "" || c.LLM.OpenAI.Model == "" {
			errs = append(errs, errors.New("openai api key and model are required"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown llm provider %q", c.LLM.Provider))
	}

	return errors.Join(errs...)
}
