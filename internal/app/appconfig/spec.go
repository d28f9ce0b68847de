package appconfig

import (
	"time"

	"github.com/marquee-live/backoffice/internal/app/appcontext"
)

type ConfigSpec struct {
	// ServiceAddress is the listen address the back office serves requests on.
	ServiceAddress string `split_words:"true" default:"localhost:9280"`

	// LogJsonStdout is whether to log JSON logs (instead of pretty-print logs)
	// to stdout for the ease of log collection.
	LogJsonStdout bool `split_words:"true" default:"false"`

	// TrustedProxies is a list of proxies trusted to report a real IP via the
	// X-Forwarded-For header. The tenant gateway always sits in front of this
	// service, so the defaults cover intra-cluster ranges only.
	TrustedProxies []string `required:"true" split_words:"true" default:"::1,127.0.0.1,10.0.0.0/8"`

	// DevMode enables verbose logging, pprof endpoints and contextual panic
	// messages. Never enable in production.
	DevMode bool `split_words:"true"`

	// PostgresDSN is the data source name for the PostgreSQL database. See
	// https://bun.uptrace.dev/postgres/#pgdriver for details on how to
	// construct a PostgreSQL DSN.
	PostgresDSN string `required:"true" split_words:"true"`

	PostgresMaxOpenConns    int           `split_words:"true" default:"10"`
	PostgresMaxIdleConns    int           `split_words:"true" default:"2"`
	PostgresConnMaxLifeTime time.Duration `split_words:"true" default:"5m"`
	PostgresConnMaxIdleTime time.Duration `split_words:"true" default:"5m"`

	BunDebugVerbose bool `split_words:"true"`

	// NatsURL is the URL of the NATS server carrying the calendar change feed.
	NatsURL string `required:"true" split_words:"true" default:"nats://127.0.0.1:4222"`

	// RedisURL is the URL of the Redis server backing the catalog caches.
	RedisURL string `required:"true" split_words:"true" default:"redis://127.0.0.1:6379/2"`

	// SentryDSN is the DSN of the Sentry server. Leave empty to disable.
	SentryDSN string `split_words:"true"`

	// HTTPServerShutdownTimeout is the timeout for the HTTP server to shut
	// down gracefully.
	HTTPServerShutdownTimeout time.Duration `required:"true" split_words:"true" default:"60s"`

	// WorkerEnabled turns on the horizon worker, which periodically extends
	// the materialized window of every weekly event. Safe to run on multiple
	// replicas since materialization is idempotent.
	WorkerEnabled bool `split_words:"true"`

	// WorkerInterval is the wait between horizon worker batches.
	WorkerInterval time.Duration `split_words:"true" default:"6h"`

	// WorkerHorizonDays is how far ahead of today the worker materializes.
	WorkerHorizonDays int `split_words:"true" default:"90"`
}

type Config struct {
	ConfigSpec

	AppContext appcontext.Ctx
}
