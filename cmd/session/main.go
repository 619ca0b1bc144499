package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"tg-info-backend/internal/common/logger"
	"tg-info-backend/internal/platform/telegram"
)

func main() {
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "session",
		Usage: "sign in as the bot once and print a SESSION_STRING for the service",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "api-id", EnvVars: []string{"API_ID"}, Required: true},
			&cli.StringFlag{Name: "api-hash", EnvVars: []string{"API_HASH"}, Required: true},
			&cli.StringFlag{Name: "bot-token", EnvVars: []string{"BOT_TOKEN"}, Required: true},
			&cli.StringFlag{Name: "session", EnvVars: []string{"SESSION_STRING"}, Usage: "existing session to refresh"},
			&cli.DurationFlag{Name: "timeout", Value: 60 * time.Second},
			&cli.BoolFlag{Name: "debug", EnvVars: []string{"DEBUG"}},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	logger.InitWithWriter("tg-info-session", c.Bool("debug"), os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := telegram.New(ctx, telegram.Config{
		APIID:         c.Int("api-id"),
		APIHash:       c.String("api-hash"),
		BotToken:      c.String("bot-token"),
		SessionString: c.String("session"),
		StartTimeout:  c.Duration("timeout"),
	}, logger.Component("telegram"))
	if err != nil {
		return err
	}

	if err := client.Start(ctx); err != nil {
		return err
	}
	defer client.Stop()

	session, err := client.SessionString(ctx)
	if err != nil {
		return fmt.Errorf("export session: %w", err)
	}

	fmt.Println(session)
	return nil
}
