package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/BartekS5/seedgen/internal/cli"
	"github.com/BartekS5/seedgen/pkg/logger"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cli.NewRootCmd().ExecuteContext(ctx)
	stop()
	logger.Close()
	if err != nil {
		os.Exit(1)
	}
}
