package gorm

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB struct
type DB struct {
	Postgres *gorm.DB
}

// PostgresOptions struct - Connection and pool settings
type PostgresOptions struct {
	Host         string
	Port         string
	Username     string
	Password     string
	DbName       string
	SSLMode      bool
	MaxOpenConns int
	MaxIdleConns int
	Debug        bool
}

// DSN func - Builds the key/value connection string
func (o PostgresOptions) DSN() string {
	sslmode := "disable"
	if o.SSLMode {
		sslmode = "require"
	}
	return fmt.Sprintf("host=%v user=%v password=%v dbname=%v port=%v sslmode=%v connect_timeout=0", o.Host, o.Username, o.Password, o.DbName, o.Port, sslmode)
}

// Config func - gorm settings shared by every connection.
// Unique violations surface as gorm.ErrDuplicatedKey.
func Config(debug bool) *gorm.Config {
	level := logger.Error
	if debug {
		level = logger.Info
	}
	return &gorm.Config{
		DryRun:                 false,
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 logger.Default.LogMode(level),
	}
}

// ConnectToPostgreSQL func
func ConnectToPostgreSQL(opts PostgresOptions) (*DB, error) {
	if opts.Host == "" && opts.Port == "" && opts.DbName == "" {
		return nil, errors.New("cannot estabished the connection")
	}

	pg, err := gorm.Open(postgres.Open(opts.DSN()), Config(opts.Debug))
	if err != nil {
		logrus.Error(err)
		return nil, err
	}
	sqlDB, err := pg.DB()
	if err != nil {
		logrus.Error(err)
		return nil, err
	}
	if opts.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
	}
	sqlDB.SetConnMaxLifetime(2 * time.Hour)

	logrus.WithFields(logrus.Fields{
		"host":     opts.Host,
		"port":     opts.Port,
		"database": opts.DbName,
	}).Info("Connected to postgres")
	return &DB{Postgres: pg}, nil
}

// DisconnectPostgres func
func DisconnectPostgres(db *gorm.DB) {
	sqlDb, err := db.DB()
	if err != nil {
		logrus.Error(err)
		return
	}
	err = sqlDb.Close()
	if err != nil {
		logrus.Error(err)
	}
	logrus.Println("Connected with postgres has closed")
}
