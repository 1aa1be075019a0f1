package protocal

import (
	"context"
	"fmt"
	"time"

	"todo-api/configs"
	httpAdapter "todo-api/internal/adapters/input/http"
	kafkaAdapter "todo-api/internal/adapters/output/kafka"
	"todo-api/internal/adapters/output/memory"
	"todo-api/internal/adapters/output/postgres"
	redisAdapter "todo-api/internal/adapters/output/redis"
	"todo-api/internal/ports/output"
	"todo-api/pkg/database_driver/gorm"

	"github.com/sirupsen/logrus"
)

// dependencies holds the output adapters chosen by configuration
type dependencies struct {
	todos     output.TodoRepository
	labels    output.LabelRepository
	pinger    httpAdapter.Pinger
	publisher output.EventPublisher

	closers []func()
}

func newDependencies(ctx context.Context, conf *configs.Config) (*dependencies, error) {
	deps := &dependencies{}

	switch conf.App.Storage {
	case configs.StoragePostgres:
		dbConGorm, err := gorm.ConnectToPostgreSQL(gorm.PostgresOptions{
			Host:         conf.Postgres.Host,
			Port:         conf.Postgres.Port,
			Username:     conf.Postgres.Username,
			Password:     conf.Postgres.Password,
			DbName:       conf.Postgres.DbName,
			SSLMode:      conf.Postgres.SSLMode,
			MaxOpenConns: conf.Postgres.MaxOpenConns,
			MaxIdleConns: conf.Postgres.MaxIdleConns,
			Debug:        conf.App.Debug,
		})
		if err != nil {
			return nil, err
		}
		deps.closers = append(deps.closers, func() { gorm.DisconnectPostgres(dbConGorm.Postgres) })
		if conf.Postgres.AutoMigrate {
			if err := postgres.MigrateDatabase(dbConGorm.Postgres); err != nil {
				deps.Close()
				return nil, err
			}
		}
		todos := postgres.NewTodoRepository(dbConGorm.Postgres)
		deps.todos = todos
		deps.pinger = todos
		deps.labels = postgres.NewLabelRepository(dbConGorm.Postgres)
	case configs.StorageMemory:
		todos := memory.NewTodoRepository()
		deps.todos = todos
		deps.pinger = todos
		deps.labels = memory.NewLabelRepository()
	default:
		return nil, fmt.Errorf("unknown storage %q", conf.App.Storage)
	}

	if conf.Redis.Enabled {
		client, err := redisAdapter.NewClient(ctx, conf.Redis.URL)
		if err != nil {
			deps.Close()
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		deps.closers = append(deps.closers, func() {
			if err := client.Close(); err != nil {
				logrus.Errorln(err)
			}
		})
		deps.todos = redisAdapter.NewCachedTodoRepository(deps.todos, client, time.Duration(conf.Redis.TTL)*time.Second)
	}

	if conf.Kafka.Enabled {
		publisher := kafkaAdapter.NewEventPublisher(conf.Kafka.Brokers, conf.Kafka.Topic)
		deps.closers = append(deps.closers, func() {
			if err := publisher.Close(); err != nil {
				logrus.Errorln(err)
			}
		})
		deps.publisher = publisher
	}

	return deps, nil
}

// Close releases connections in reverse order of creation
func (d *dependencies) Close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		d.closers[i]()
	}
	d.closers = nil
}
