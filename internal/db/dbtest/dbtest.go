//go:build integration_test

// Package dbtest starts throwaway postgres and redis containers for integration tests.
package dbtest

import (
	"context"
	"database/sql"
	"fmt"
	"net"

	"github.com/2beens/liftlog/internal/db"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
)

const (
	postgresDBName   = "liftlog_test"
	postgresPassword = "postgres"
	// containers are killed by docker even if the test binary dies
	containerExpireSeconds = 300
)

type Postgres struct {
	Pool   *pgxpool.Pool
	Params db.NewDBPoolParams

	dockerPool *dockertest.Pool
	resource   *dockertest.Resource
}

func newDockerPool() (*dockertest.Pool, error) {
	// uses a sensible default on windows (tcp/http) and linux/osx (socket)
	dockerPool, err := dockertest.NewPool("")
	if err != nil {
		return nil, fmt.Errorf("create dockertest pool: %w", err)
	}
	if err := dockerPool.Client.Ping(); err != nil {
		return nil, fmt.Errorf("ping docker: %w", err)
	}
	return dockerPool, nil
}

// StartPostgres runs a postgres container with the schema migrated.
func StartPostgres(ctx context.Context) (*Postgres, error) {
	dockerPool, err := newDockerPool()
	if err != nil {
		return nil, err
	}

	resource, err := dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16",
		Env: []string{
			"POSTGRES_USER=postgres",
			"POSTGRES_PASSWORD=" + postgresPassword,
			"POSTGRES_DB=" + postgresDBName,
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	if err != nil {
		return nil, fmt.Errorf("dockerpool run postgres: %w", err)
	}
	_ = resource.Expire(containerExpireSeconds)

	pg := &Postgres{
		Params: db.NewDBPoolParams{
			DBHost:     "localhost",
			DBPort:     resource.GetPort("5432/tcp"),
			DBName:     postgresDBName,
			DBUser:     "postgres",
			DBPassword: postgresPassword,
		},
		dockerPool: dockerPool,
		resource:   resource,
	}

	connString := db.ConnString(pg.Params)
	if err := dockerPool.Retry(func() error {
		sqlDB, err := sql.Open("postgres", connString)
		if err != nil {
			return err
		}
		defer sqlDB.Close()
		return sqlDB.Ping()
	}); err != nil {
		pg.Close()
		return nil, fmt.Errorf("connect to db: %w", err)
	}

	if err := db.Migrate(connString); err != nil {
		pg.Close()
		return nil, err
	}

	pg.Pool, err = db.NewDBPool(ctx, pg.Params)
	if err != nil {
		pg.Close()
		return nil, err
	}

	return pg, nil
}

func (p *Postgres) Close() {
	if p.Pool != nil {
		p.Pool.Close()
	}
	if err := p.dockerPool.Purge(p.resource); err != nil {
		fmt.Printf("postgres teardown: %s\n", err)
	}
}

// Reset empties every table and restarts the id sequences.
func (p *Postgres) Reset(ctx context.Context) error {
	_, err := p.Pool.Exec(ctx, `
		TRUNCATE users, exercises, workouts, workout_exercises, routines, routine_workouts,
			workout_sessions, session_exercises, session_sets
		RESTART IDENTITY CASCADE`)
	return err
}

// AddUser inserts a user directly, for tests that only need an owner id.
func (p *Postgres) AddUser(ctx context.Context, email string) (int, error) {
	var id int
	err := p.Pool.QueryRow(
		ctx,
		`INSERT INTO users (name, email, password_hash) VALUES ($1, $2, 'not-a-hash') RETURNING id`,
		email, email,
	).Scan(&id)
	return id, err
}

type Redis struct {
	Addr string

	dockerPool *dockertest.Pool
	resource   *dockertest.Resource
}

func StartRedis() (*Redis, error) {
	dockerPool, err := newDockerPool()
	if err != nil {
		return nil, err
	}

	resource, err := dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "7",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
	})
	if err != nil {
		return nil, fmt.Errorf("run redis: %w", err)
	}
	_ = resource.Expire(containerExpireSeconds)

	return &Redis{
		Addr:       net.JoinHostPort("localhost", resource.GetPort("6379/tcp")),
		dockerPool: dockerPool,
		resource:   resource,
	}, nil
}

func (r *Redis) Port() string {
	return r.resource.GetPort("6379/tcp")
}

func (r *Redis) Close() {
	if err := r.dockerPool.Purge(r.resource); err != nil {
		fmt.Printf("redis teardown: %s\n", err)
	}
}
