package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/UnknownOlympus/focuslearn/internal/config"
	"github.com/UnknownOlympus/focuslearn/internal/lib/logger/sl"
	"github.com/UnknownOlympus/focuslearn/internal/lib/version"
	"github.com/UnknownOlympus/focuslearn/internal/models"
	"github.com/UnknownOlympus/focuslearn/internal/parser"
	"github.com/UnknownOlympus/focuslearn/internal/repository"
	"github.com/UnknownOlympus/focuslearn/internal/services/seed"
)

var (
	printVersion = flag.Bool("version", false, "Print version information and exit")
	roster       = flag.String("roster", "", "HTML training roster to import; the reference rows are used when empty")
	demo         = flag.Int("demo", 0, "Number of generated demo employees to append")
	username     = flag.String("username", "", "Username of the account to create")
	email        = flag.String("email", "", "Email of the account; a random one is generated when empty")
	password     = flag.String("password", "", "Password of the account")
)

func main() {
	flag.Parse()
	if *printVersion {
		fmt.Println(version.Info("seed").String())
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.MustLoad()
	logger := sl.New(cfg.Env, os.Stdout)

	rows := seed.ReferenceEmployees()
	if *roster != "" {
		parsed, err := parser.ParseRosterFile(*roster)
		if err != nil {
			log.Fatalf("Failed to read roster: %v", err)
		}
		rows = parsed
	}
	rows = append(rows, seed.DemoEmployees(*demo)...)

	var accounts []seed.Account
	if *username != "" {
		account, err := seed.NewAccount(logger, *username, *email, *password)
		if err != nil {
			log.Fatalf("Invalid account: %v", err)
		}
		accounts = append(accounts, account)
	}

	dtb, err := repository.NewDatabase(logger,
		cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Dbname)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer dtb.Close()

	err = seed.Postgres(ctx, logger,
		repository.NewUserRepository(dtb, nil), repository.NewEmployeeRepository(dtb, nil), accounts, rows)
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	logger.InfoContext(ctx, "Seed finished", "employees", len(rows), "accounts", len(accounts), "completed", completed(rows))
}

func completed(rows []models.TrainingEmployee) int {
	count := 0
	for _, row := range rows {
		if row.IsCompleted() {
			count++
		}
	}
	return count
}
