package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path"

	"github.com/public-awesome/accounts/client"
	"github.com/public-awesome/accounts/config"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, os.Kill)
	defer cancel()

	log := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	if len(os.Args) < 2 {
		log.Error("usage: accounts <address>")
		os.Exit(1)
	}
	if err := run(ctx, log, os.Args[1]); err != nil {
		log.Error("failed to query account", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, log *slog.Logger, address string) error {
	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}
	store, err := client.NewStore(path.Join(cfg.StorePath, "accounts.db"))
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error("error closing store", "error", err)
		}
	}()

	c := client.New(
		client.WithAPI(cfg.APIEndpoint),
		client.WithAccountPrefix(cfg.AccountPrefix),
		client.WithTimeout(cfg.QueryTimeout),
		client.WithLogger(log),
		client.WithStore(store),
	)
	account, err := c.QueryAccount(ctx, address)
	if err != nil {
		return err
	}
	if account == nil {
		return fmt.Errorf("account %s not found", address)
	}
	fmt.Println(account.String())
	return nil
}
