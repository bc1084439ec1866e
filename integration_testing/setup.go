//go:build integration_test || all_tests

package integration_testing

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/2beens/trainprogress/internal"
	"github.com/2beens/trainprogress/internal/config"
	"github.com/2beens/trainprogress/internal/db"
	"github.com/2beens/trainprogress/pkg"

	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
)

const (
	serverPort = 9000
	serverHost = "localhost"

	testDBName     = "trainprogress"
	testDBPassword = "postgres"
	testAPISecret  = "integration-test-secret"
)

var serverEndpoint = fmt.Sprintf("http://%s:%d", serverHost, serverPort)

type Suite struct {
	DB         *sql.DB
	dbParams   db.NewDBPoolParams
	dockerPool *dockertest.Pool
	server     *internal.Server
	teardown   []func()
}

func newSuite(ctx context.Context) (_ *Suite) {
	var err error
	suite := &Suite{
		teardown: make([]func(), 0),
	}

	// uses a sensible default on windows (tcp/http) and linux/osx (socket)
	suite.dockerPool, err = dockertest.NewPool("")
	if err != nil {
		log.Fatalf("could not create new dockertest pool: %s", err)
	}
	suite.dockerPool.MaxWait = time.Minute

	// uses pool to try to connect to Docker
	if err = suite.dockerPool.Client.Ping(); err != nil {
		log.Fatalf("could not ping dockertest pool: %s", err)
	}

	redisPort, err := suite.redisSetup()
	if err != nil {
		suite.cleanup()
		log.Fatalf("failed to setup redis: %s", err.Error())
	}

	pgPort, err := suite.postgresSetup()
	if err != nil {
		suite.cleanup()
		log.Fatalf("failed to setup postgres: %s", err)
	}

	secretHash, err := pkg.HashPassword(testAPISecret)
	if err != nil {
		suite.cleanup()
		log.Fatalf("hash api secret: %s", err)
	}

	cfg := getTestConfig(redisPort, pgPort)
	suite.server, err = internal.NewServer(
		ctx,
		internal.NewServerParams{
			Config:                  cfg,
			VersionInfo:             "test-version-info",
			PostgresPassword:        testDBPassword,
			RedisPassword:           "",
			APISecretHash:           secretHash,
			HoneycombTracingEnabled: false,
		},
	)
	if err != nil {
		suite.cleanup()
		log.Fatalf("new server: %s", err)
	}

	suite.server.Serve(cfg.Host, cfg.Port)

	return suite
}

func (s *Suite) cleanup() {
	if s.server != nil {
		s.server.GracefulShutdown()
	}
	if s.DB != nil {
		s.DB.Close()
	}
	for _, teardown := range s.teardown {
		teardown()
	}
}

func getTestConfig(redisPort, postgresPort string) *config.Config {
	return &config.Config{
		Environment:             "test",
		Host:                    serverHost,
		Port:                    serverPort,
		MetricsHost:             serverHost,
		MetricsPort:             "2113",
		LogLevel:                "debug",
		StorageBackend:          config.StorageBackendPostgres,
		RedisHost:               "localhost",
		RedisPort:               redisPort,
		PostgresPort:            postgresPort,
		PostgresHost:            "localhost",
		PostgresDBName:          testDBName,
		RunMigrations:           false, // done in postgresSetup
		Locker:                  config.LockerRedis,
		LockTTLSeconds:          5,
		WorkoutsRateLimitPerMin: 100,
		Timezone:                "UTC",
		TemplateCacheSizeMB:     1,
	}
}

func (s *Suite) redisSetup() (string, error) {
	redisResource, err := s.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "6.2",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
	})
	if err != nil {
		return "", fmt.Errorf("run redis: %s", err)
	}

	s.teardown = append(s.teardown, func() {
		redisResource.Close()
	})

	redisPort := redisResource.GetPort("6379/tcp")
	return redisPort, nil
}

func (s *Suite) postgresSetup() (string, error) {
	pgResource, err := s.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16",
		Env: []string{
			"POSTGRES_USER=postgres",
			"POSTGRES_PASSWORD=" + testDBPassword,
			"POSTGRES_DB=" + testDBName,
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	if err != nil {
		return "", fmt.Errorf("dockerpool run postgres: %s", err)
	}

	s.teardown = append(s.teardown, func() {
		pgResource.Close()
	})

	pgPort := pgResource.GetPort("5432/tcp")
	s.dbParams = db.NewDBPoolParams{
		DBHost:     "localhost",
		DBPort:     pgPort,
		DBName:     testDBName,
		DBUser:     "postgres",
		DBPassword: testDBPassword,
	}

	if err := s.dockerPool.Retry(func() error {
		conn, err := sql.Open("postgres", s.dbParams.ConnString()+"?sslmode=disable")
		if err != nil {
			return err
		}
		if err := conn.Ping(); err != nil {
			_ = conn.Close()
			return err
		}
		s.DB = conn
		return nil
	}); err != nil {
		return "", fmt.Errorf("wait for postgres: %s", err)
	}

	if err := db.Migrate(s.dbParams.ConnString()); err != nil {
		return "", fmt.Errorf("migrate: %s", err)
	}

	log.Printf("postgres ready on port: %s\n", pgPort)

	return pgPort, nil
}
