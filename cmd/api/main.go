// @title           Systrack API
// @version         1.0
// @description     Tracks hardware parts, the systems they are composed into and the employees those systems are assigned to.
// @BasePath        /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	gomongo "go.mongodb.org/mongo-driver/mongo"

	"github.com/systrack/systrack-api/internal/api"
	"github.com/systrack/systrack-api/internal/core/domain"
	"github.com/systrack/systrack-api/internal/core/ports"
	"github.com/systrack/systrack-api/internal/core/service"
	"github.com/systrack/systrack-api/internal/infrastructure/db/memory"
	"github.com/systrack/systrack-api/internal/infrastructure/db/mongo"
	"github.com/systrack/systrack-api/internal/infrastructure/db/redis"
	"github.com/systrack/systrack-api/internal/infrastructure/lock"
	"github.com/systrack/systrack-api/internal/infrastructure/queue"
	"github.com/systrack/systrack-api/internal/pkg/config"
	"github.com/systrack/systrack-api/pkg/logger"
)

const (
	shutdownTimeout = 10 * time.Second
	devJWTSecret    = "systrack-dev-secret"
)

// repositories groups one backend's implementation of every storage port.
type repositories struct {
	parts     ports.PartRepository
	systems   ports.SystemRepository
	employees ports.EmployeeRepository
	audit     ports.AuditRepository
	users     ports.AuthRepository
	tx        ports.Transactor
}

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "systrack-api",
	})

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.JWTSecret == "" {
		log.Warn().Msg("JWT_SECRET not set, using the development secret")
		cfg.JWTSecret = devJWTSecret
	}

	// --- Storage ---
	var (
		repos repositories
		db    *gomongo.Database
	)
	switch cfg.Store {
	case config.StoreMongo:
		client, database, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return err
		}
		defer func() {
			dctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			_ = client.Disconnect(dctx)
		}()
		if cfg.Mongo.Transactions {
			if err := mongo.CheckTransactions(ctx, client); err != nil {
				return fmt.Errorf("%w; set MONGO_TRANSACTIONS=false to run without atomic multi-entity writes", err)
			}
		} else {
			log.Warn().Msg("mongo transactions disabled, a failed multi-entity write may be left half applied")
		}
		if err := mongo.EnsureIndexes(ctx, database); err != nil {
			return err
		}
		db = database
		repos = repositories{
			parts:     mongo.NewPartRepository(database),
			systems:   mongo.NewSystemRepository(database),
			employees: mongo.NewEmployeeRepository(database),
			audit:     mongo.NewAuditRepository(database),
			users:     mongo.NewAuthRepository(database),
			tx:        mongo.NewTransactor(client, cfg.Mongo.Transactions),
		}
		log.Info().Str("database", cfg.Mongo.Database).Bool("transactions", cfg.Mongo.Transactions).Msg("using mongo store")
	default:
		store := memory.New()
		repos = repositories{
			parts:     memory.NewPartRepository(store),
			systems:   memory.NewSystemRepository(store),
			employees: memory.NewEmployeeRepository(store),
			audit:     memory.NewAuditRepository(store),
			users:     memory.NewAuthRepository(store),
			tx:        store,
		}
		log.Warn().Msg("using in-memory store, data is lost on restart")
	}

	// --- Locks ---
	var (
		locker ports.Locker
		rdb    *goredis.Client
	)
	switch cfg.Lock.Backend {
	case config.LockRedis:
		client, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err != nil {
			return err
		}
		defer client.Close()
		rdb = client
		locker = redis.NewLocker(client, cfg.Lock.TTL)
	default:
		locker = lock.NewStriped(0)
	}
	locker = lock.WithTimeout(locker, cfg.Lock.Timeout)

	// --- Core ---
	types := domain.PartTypesFromFlags(cfg.PartTypes)

	auditService := service.NewAuditService(repos.audit, repos.parts, repos.systems, repos.employees, repos.users,
		logger.Component("audit"))
	dispatcher := queue.NewAuditDispatcher(cfg.AuditWorkers, auditService, logger.Component("audit-dispatcher"))
	dispatcher.Start()
	// Runs after the server has drained, so every accepted mutation is recorded.
	defer dispatcher.Close()

	assignments := service.NewAssignmentService(repos.parts, repos.systems, repos.employees, repos.tx, locker,
		dispatcher, logger.Component("assignments"))

	e := api.NewRouter(api.Deps{
		Parts: service.NewPartService(repos.parts, repos.systems, repos.tx, locker, dispatcher, types,
			logger.Component("parts")),
		Systems: service.NewSystemService(repos.parts, repos.systems, repos.employees, repos.tx, locker, dispatcher, types,
			logger.Component("systems")),
		Assignments: assignments,
		Employees: service.NewEmployeeService(repos.parts, repos.systems, repos.employees, repos.tx, locker, assignments,
			dispatcher, logger.Component("employees")),
		Audit:     auditService,
		Stats:     service.NewStatsService(repos.parts, repos.systems, repos.employees),
		Auth:      service.NewAuthService(repos.users, cfg.JWTSecret, cfg.TokenTTL),
		JWTSecret: cfg.JWTSecret,
		Log:       logger.Component("http"),
		Mongo:     db,
		Redis:     rdb,
	})

	// --- Serve ---
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("store", cfg.Store).Str("lock", cfg.Lock.Backend).
			Strs("part_types", types.Names()).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(sctx)
}
