package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/2beens/trainprogress/internal/auth"
	"github.com/2beens/trainprogress/internal/config"
	"github.com/2beens/trainprogress/internal/db"
	"github.com/2beens/trainprogress/internal/middleware"
	"github.com/2beens/trainprogress/internal/program"
	"github.com/2beens/trainprogress/internal/progression"
	"github.com/2beens/trainprogress/internal/telemetry/metrics"
	"github.com/2beens/trainprogress/internal/telemetry/tracing"
	"github.com/2beens/trainprogress/internal/workouts"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config      *config.Config
	dbPool      *pgxpool.Pool
	redisClient *redis.Client
	rateLimiter middleware.RequestRateLimiter
	authChecker auth.Checker
	service     *progression.Service

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	PostgresPassword        string
	RedisPassword           string
	APISecretHash           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config

	var (
		dbPool          *pgxpool.Pool
		extraCollectors []prometheus.Collector
	)
	if cfg.StorageBackend == config.StorageBackendPostgres {
		dbParams := db.NewDBPoolParams{
			DBHost:         cfg.PostgresHost,
			DBPort:         cfg.PostgresPort,
			DBName:         cfg.PostgresDBName,
			DBUser:         cfg.PostgresUser,
			DBPassword:     params.PostgresPassword,
			TracingEnabled: params.HoneycombTracingEnabled,
		}

		if cfg.RunMigrations {
			if err := db.Migrate(dbParams.ConnString()); err != nil {
				return nil, fmt.Errorf("migrate db: %w", err)
			}
			log.Debugln("db migrations applied")
		}

		var err error
		dbPool, err = db.NewDBPool(ctx, dbParams)
		if err != nil {
			return nil, fmt.Errorf("new db pool: %w", err)
		}

		extraCollectors = append(extraCollectors, pgxpoolprometheus.NewCollector(
			dbPool,
			map[string]string{"db_name": cfg.PostgresDBName},
		))
	}

	promRegistry := metrics.SetupPrometheus(extraCollectors...)
	metricsManager := metrics.NewManager("trainprogress", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "trainprogress-backend", rdb)
	if err != nil {
		return nil, err
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	s := &Server{
		config:         cfg,
		dbPool:         dbPool,
		redisClient:    rdb,
		rateLimiter:    redis_rate.NewLimiter(rdb),
		authChecker:    auth.NewSecretChecker(params.APISecretHash),
		versionInfo:    params.VersionInfo,
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}
	s.service = s.newProgressionService(progression.NewCalendar(loc, nil))

	return s, nil
}

func (s *Server) newProgressionService(calendar *progression.Calendar) *progression.Service {
	var locker progression.Locker = progression.NewLocalLocker()
	if s.config.Locker == config.LockerRedis {
		locker = progression.NewRedisLocker(s.redisClient, s.config.LockTTL(), progression.DefaultLockWait)
	}

	params := progression.ServiceParams{
		Locker:              locker,
		Calendar:            calendar,
		MetricsManager:      s.metricsManager,
		DegradeOnStoreError: s.config.DegradeOnStoreError,
	}

	if s.dbPool != nil {
		programsRepo := program.NewRepo(s.dbPool)
		params.Programs = programsRepo
		params.Templates = program.NewCachedTemplates(programsRepo, s.config.TemplateCacheSizeMB)
		params.Workouts = workouts.NewRepo(s.dbPool)
	} else {
		log.Warnln("using in-memory storage, data will not survive a restart")
		programsRepo := program.NewMemoryRepo()
		params.Programs = programsRepo
		params.Templates = program.NewCachedTemplates(programsRepo, s.config.TemplateCacheSizeMB)
		params.Workouts = workouts.NewMemoryRepo()
	}

	return progression.NewService(params)
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	r.HandleFunc("/", s.handleRoot).Methods("GET").Name("root")
	r.HandleFunc("/health", s.handleHealth).Methods("GET").Name("health")

	handler := progression.NewHandler(s.service)
	r.HandleFunc("/programs", handler.HandleAssignProgram).Methods("POST", "OPTIONS").Name("assign-program")
	r.HandleFunc("/programs/active", handler.HandleActiveProgram).Methods("GET", "OPTIONS").Name("active-program")
	r.HandleFunc("/progress", handler.HandleProgress).Methods("GET", "OPTIONS").Name("progress")
	r.HandleFunc("/progress/slots/{week}/{slot}", handler.HandleSlotCompleted).Methods("GET", "OPTIONS").Name("slot-completed")
	r.Handle(
		"/workouts",
		middleware.RateLimit(
			s.rateLimiter,
			s.metricsManager,
			"record-workout",
			s.config.WorkoutsRateLimitPerMin,
		)(http.HandlerFunc(handler.HandleRecordCompletion)),
	).Methods("POST", "OPTIONS").Name("record-workout")
	r.HandleFunc("/workouts/recent/{limit}", handler.HandleRecentWorkouts).Methods("GET", "OPTIONS").Name("recent-workouts")
	r.HandleFunc("/stats/summary", handler.HandleSummary).Methods("GET", "OPTIONS").Name("stats-summary")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.authChecker)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	_, _ = fmt.Fprintf(w, "trainprogress %s", s.versionInfo)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.dbPool != nil {
		if err := s.dbPool.Ping(r.Context()); err != nil {
			log.Errorf("health: ping db: %s", err)
			http.Error(w, "db unavailable", http.StatusServiceUnavailable)
			return
		}
	}
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) Serve(host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", otelhttp.NewHandler(
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
		"metrics",
	))
	metricsAddr := net.JoinHostPort(s.config.MetricsHost, s.config.MetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
}
