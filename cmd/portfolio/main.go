// Package main starts the portfolio browser service.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	portfoliocmd "github.com/louisbranch/portfolio/internal/cmd/portfolio"
	"github.com/louisbranch/portfolio/internal/platform/config"
)

func main() {
	log.SetPrefix("[PORTFOLIO] ")
	cfg, err := portfoliocmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := portfoliocmd.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
