package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/2beens/trainprogress/internal"
	"github.com/2beens/trainprogress/internal/config"
	"github.com/2beens/trainprogress/internal/logging"
	"github.com/2beens/trainprogress/pkg"

	log "github.com/sirupsen/logrus"
)

func main() {
	fmt.Println("starting ...")

	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	flag.Parse()

	log.Warnf("---->> running in [%s] environment", *env)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	sentryDSN := os.Getenv("SENTRY_DSN")
	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    cfg.LogFormatJSON,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        sentryDSN,
		SentryServerName: "trainprogress-service",
	})

	log.Debugf("using port: %d", cfg.Port)
	log.Debugf("using server logs path: [%s]", cfg.LogsPath)
	log.Debugf("storage: [%s], locker: [%s], timezone: [%s]", cfg.StorageBackend, cfg.Locker, cfg.Timezone)

	versionInfo, err := tryGetLastCommitHash()
	if err != nil {
		log.Tracef("failed to get last commit hash / version info: %s", err)
	} else {
		log.Tracef("running version: %s", versionInfo)
	}

	secrets := loadSecrets(cfg)
	honeycombEnabled := tracingEnabled()

	chOsInterrupt := make(chan os.Signal, 1)
	signal.Notify(chOsInterrupt, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	server, err := internal.NewServer(
		ctx,
		internal.NewServerParams{
			Config:                  cfg,
			VersionInfo:             versionInfo,
			PostgresPassword:        secrets.postgresPassword,
			RedisPassword:           secrets.redisPassword,
			APISecretHash:           secrets.apiSecretHash,
			HoneycombTracingEnabled: honeycombEnabled,
		},
	)
	if err != nil {
		log.Fatalf("new server: %s", err)
	}

	server.Serve(cfg.Host, cfg.Port)

	receivedSig := <-chOsInterrupt
	log.Warnf("signal [%s] received, killing everything ...", receivedSig)
	cancel()

	// go to sleep 🥱
	server.GracefulShutdown()
}

type envSecrets struct {
	postgresPassword string
	redisPassword    string
	apiSecretHash    string
}

func loadSecrets(cfg *config.Config) envSecrets {
	secrets := envSecrets{
		postgresPassword: os.Getenv("TRAIN_PG_PASSWORD"),
		redisPassword:    os.Getenv("TRAIN_REDIS_PASS"),
		apiSecretHash:    os.Getenv("TRAIN_API_SECRET_HASH"),
	}

	if secrets.postgresPassword == "" && cfg.StorageBackend == config.StorageBackendPostgres {
		log.Warnln("postgres password not set. use TRAIN_PG_PASSWORD")
	}
	if secrets.redisPassword == "" {
		log.Errorf("redis password not set. use TRAIN_REDIS_PASS")
	}
	if secrets.apiSecretHash == "" {
		log.Errorf("api secret hash not set, all authenticated requests will be refused. use TRAIN_API_SECRET_HASH")
	}

	return secrets
}

func tracingEnabled() bool {
	if otelServiceName := os.Getenv("OTEL_SERVICE_NAME"); otelServiceName == "" {
		log.Warnln("OTEL_SERVICE_NAME env var not set")
	}

	if os.Getenv("HONEYCOMB_ENABLED") != "true" {
		log.Debugln("honeycomb tracing disabled")
		return false
	}
	if honeycombApiKey := os.Getenv("HONEYCOMB_API_KEY"); honeycombApiKey == "" {
		log.Warnln("HONEYCOMB_API_KEY env var not set")
	}
	return true
}

// tryGetLastCommitHash will try to get the last commit hash
// assumes that the built main executable is in project root
func tryGetLastCommitHash() (string, error) {
	cmd := exec.Command("/usr/bin/git", "rev-parse", "HEAD")
	stdout, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return pkg.BytesToString(stdout), nil
}
