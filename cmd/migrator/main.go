package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/UnknownOlympus/focuslearn/internal/config"
	"github.com/UnknownOlympus/focuslearn/internal/lib/logger/sl"
	"github.com/UnknownOlympus/focuslearn/internal/lib/version"
	"github.com/UnknownOlympus/focuslearn/internal/repository"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose"
)

var (
	printVersion = flag.Bool("version", false, "Print version information and exit")
	dir          = flag.String("dir", "migrations", "Directory with goose migrations")
)

func main() {
	flag.Parse()
	if *printVersion {
		fmt.Println(version.Info("migrator").String())
		return
	}

	cfg := config.MustLoad()
	if cfg.Backend != config.BackendPostgres {
		log.Fatalf("Migrations need the postgres backend, got %q", cfg.Backend)
	}

	dbpool, dbErr := repository.NewDatabase(sl.New(cfg.Env, os.Stdout),
		cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Dbname)
	if dbErr != nil {
		log.Fatalf("Failed to connect to DB: %v", dbErr)
	}
	defer dbpool.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal(err)
	}

	dtb := stdlib.OpenDBFromPool(dbpool)
	defer dtb.Close()

	if migrationErr := goose.Up(dtb, *dir); migrationErr != nil {
		log.Fatal(migrationErr)
	}

	log.Println("✅ Migrations applied successfully")
}
