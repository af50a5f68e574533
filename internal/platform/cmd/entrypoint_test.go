package cmd

import (
	"context"
	"errors"
	"flag"
	"testing"
)

type testConfig struct {
	Address string `env:"PORTFOLIO_CMD_TEST_ADDRESS" envDefault:"127.0.0.1:8080"`
	DataDir string `env:"PORTFOLIO_CMD_TEST_DATA_DIR" envDefault:"data"`
}

func TestParseConfigReadsEnvAndFlags(t *testing.T) {
	t.Setenv("PORTFOLIO_CMD_TEST_ADDRESS", "env:9000")
	t.Setenv("PORTFOLIO_CMD_TEST_DATA_DIR", "/srv/data")

	cfg := testConfig{}
	if err := ParseConfig(&cfg); err != nil {
		t.Fatalf("load config defaults: %v", err)
	}
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.StringVar(&cfg.Address, "address", cfg.Address, "address")
	fs.StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "data dir")

	if err := ParseArgs(fs, []string{"-address", "flag:9001"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if cfg.Address != "flag:9001" {
		t.Fatalf("Address = %q, want %q", cfg.Address, "flag:9001")
	}
	if cfg.DataDir != "/srv/data" {
		t.Fatalf("DataDir = %q, want %q", cfg.DataDir, "/srv/data")
	}
}

func TestParseConfigFromArgsReadsEnvAndFlags(t *testing.T) {
	t.Setenv("PORTFOLIO_CMD_TEST_DATA_DIR", "env-data")

	cfg := testConfig{}
	fs := flag.NewFlagSet("configargs", flag.ContinueOnError)
	fs.StringVar(&cfg.Address, "address", "", "address")
	if err := ParseConfigFromArgs(&cfg, fs, []string{"-address", "flag:9002"}); err != nil {
		t.Fatalf("parse config and args: %v", err)
	}
	if cfg.Address != "flag:9002" {
		t.Fatalf("Address = %q, want %q", cfg.Address, "flag:9002")
	}
	if cfg.DataDir != "env-data" {
		t.Fatalf("DataDir = %q, want %q", cfg.DataDir, "env-data")
	}
}

func TestParseConfigRejectsNilTarget(t *testing.T) {
	if err := ParseConfig[testConfig](nil); err == nil {
		t.Fatal("expected nil target error")
	}
}

func TestParseArgsRejectsNilParser(t *testing.T) {
	if err := ParseArgs(nil, []string{}); err == nil {
		t.Fatal("expected parse args to reject nil parser")
	}
}

func TestRunWithTelemetryRejectsMissingInputs(t *testing.T) {
	if err := RunWithTelemetry(context.Background(), "", func(context.Context) error { return nil }); err == nil {
		t.Fatal("expected missing service error")
	}
	if err := RunWithTelemetry(context.Background(), ServicePortfolio, nil); err == nil {
		t.Fatal("expected missing run function error")
	}
}

func TestRunWithTelemetryReturnsRunError(t *testing.T) {
	t.Setenv("PORTFOLIO_OTEL_ENDPOINT", "")

	want := errors.New("boom")
	err := RunWithTelemetry(context.Background(), ServicePortfolio, func(context.Context) error { return want })
	if !errors.Is(err, want) {
		t.Fatalf("RunWithTelemetry() error = %v, want %v", err, want)
	}
}
