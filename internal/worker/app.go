// Package worker runs the compute side of the pipeline: it subscribes to
// bucket notifications and analyzes each uploaded document, performing the
// job's terminal transition.
package worker

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/nats-io/nats.go"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/avolkovs/benfordapp/internal/logging"
	"github.com/avolkovs/benfordapp/internal/pdfx"
	"github.com/avolkovs/benfordapp/internal/server/blob"
	"github.com/avolkovs/benfordapp/internal/server/config"
	"github.com/avolkovs/benfordapp/internal/server/events"
	"github.com/avolkovs/benfordapp/internal/server/repositories/repomanager"
	"github.com/avolkovs/benfordapp/internal/server/services"
)

type App struct {
	config     *config.Config
	logger     logging.Logger
	db         *sql.DB
	jobService *services.JobService
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()

	gateway, err := blob.NewGateway(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("object store init error: %w", err)
	}

	jobService := services.NewJobService(db, rm, gateway, pdfx.NewReader(), logger)

	return &App{config: cfg, logger: logger, db: db, jobService: jobService}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// handleNotification processes every created object announced by one
// bucket-notification message. Delivery is at-least-once: the conditional
// status update makes a redelivered object a logged no-op failure rather
// than a second result.
func (app *App) handleNotification(ctx context.Context, payload []byte) {
	keys, err := events.CreatedObjectKeys(payload)
	if err != nil {
		app.logger.Error(ctx, "dropping undecodable notification", "error", err.Error())
		return
	}

	for _, key := range keys {
		if err := app.jobService.Process(ctx, key); err != nil {
			app.logger.Error(ctx, "processing failed", "document_key", key, "error", err.Error())
		}
	}
}

func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting worker...")

	app.initSignalHandler(cancelFunc)

	nc, err := nats.Connect(app.config.NATSUrl)
	if err != nil {
		return fmt.Errorf("nats connect error: %w", err)
	}

	sub, err := nc.Subscribe(app.config.NATSSubject, func(msg *nats.Msg) {
		app.handleNotification(ctx, msg.Data)
	})
	if err != nil {
		nc.Close()
		return fmt.Errorf("nats subscribe error: %w", err)
	}

	app.logger.Info(ctx, "subscribed", "subject", app.config.NATSSubject)

	<-ctx.Done()

	// Drain lets in-flight handlers finish before the connection closes.
	if err := sub.Drain(); err != nil {
		app.logger.Error(ctx, "nats drain error", "error", err.Error())
	}
	if err := nc.Drain(); err != nil {
		app.logger.Error(ctx, "nats drain error", "error", err.Error())
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err.Error())
	}

	return nil
}
