package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

const envPrefix = "OTPAY_"

const (
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

var ErrUnknownBackend = errors.New("unknown storage backend")

type Application struct {
	Listen   string   `koanf:"listen"`
	Frontend Frontend `koanf:"frontend"`
	Storage  Storage  `koanf:"storage"`
	Database Database `koanf:"db"`
}

type Frontend struct {
	Enabled bool   `koanf:"enabled"`
	Dir     string `koanf:"dir"`
}

type Storage struct {
	// Backend is either "sqlite" (local file) or "postgres" (shared store with change notifications).
	Backend string `koanf:"backend"`
	SQLite  SQLite `koanf:"sqlite"`
}

type SQLite struct {
	Path string `koanf:"path"`
}

type Database struct {
	Host   string `koanf:"host"`
	Port   int    `koanf:"port"`
	User   string `koanf:"user"`
	Pass   string `koanf:"pass"`
	Name   string `koanf:"name"`
	Schema string `koanf:"schema"`
}

func Defaults() Application {
	return Application{
		Listen: ":8181",
		Frontend: Frontend{
			Enabled: true,
			Dir:     "./frontend/dist",
		},
		Storage: Storage{
			Backend: BackendSQLite,
			SQLite:  SQLite{Path: "./data/otpay.db"},
		},
		Database: Database{
			Host:   "localhost",
			Port:   5432,
			User:   "otpay",
			Pass:   "",
			Name:   "otpay",
			Schema: "public",
		},
	}
}

// Load layers the configuration: defaults, then the YAML file at path, then OTPAY_* environment
// variables. Variables from a .env file in the working directory are loaded first without
// overriding ones already set.
func Load(path string) (Application, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warnf("could not read .env file: %v", err)
	}

	var k = koanf.New(".")

	if err := k.Load(structs.Provider(Defaults(), "koanf"), nil); err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(k, v string) (string, any) {
			// OTPAY_STORAGE_SQLITE_PATH -> storage.sqlite.path
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, envPrefix)), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}
	if err := app.Validate(); err != nil {
		return Application{}, err
	}
	return app, nil
}

func (a Application) Validate() error {
	switch a.Storage.Backend {
	case BackendSQLite:
		if a.Storage.SQLite.Path == "" {
			return fmt.Errorf("storage.sqlite.path must not be empty")
		}
	case BackendPostgres:
	default:
		return fmt.Errorf("%w: %q (expected %s or %s)", ErrUnknownBackend, a.Storage.Backend, BackendSQLite, BackendPostgres)
	}
	return nil
}
