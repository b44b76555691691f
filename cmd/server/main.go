// Package main provides the entry point for the goServiceKit service.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/chybatronik/goServiceKit/internal/config"
	"github.com/chybatronik/goServiceKit/internal/database"
	"github.com/chybatronik/goServiceKit/internal/health"
	"github.com/chybatronik/goServiceKit/internal/logging"
	"github.com/chybatronik/goServiceKit/internal/metrics"
	"github.com/chybatronik/goServiceKit/internal/processing"
	"github.com/chybatronik/goServiceKit/internal/server"
	"github.com/chybatronik/goServiceKit/pkg/retry"
)

const serviceName = "goServiceKit"

var (
	// Build information (set during build)
	Version   = "dev"
	BuildTime = ""
)

func main() {
	args := os.Args[1:]

	// First non-flag argument selects the subcommand; default is serve
	command := "serve"
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		command = args[0]
		args = args[1:]
	}

	switch command {
	case "serve":
		runServe(args)
	case "health":
		os.Exit(runHealth(args))
	case "process":
		os.Exit(runProcess(args))
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q (expected serve, health, or process)\n", command)
		os.Exit(2)
	}
}

// loadConfig loads configuration honoring the -config flag via CONFIG_FILE.
func loadConfig(configPath string) (*config.Config, error) {
	if configPath != "" {
		os.Setenv(config.EnvConfigFile, configPath)
	}
	return config.Load()
}

// buildChecker assembles the health probes every command shares: config
// re-validation first, then database reachability when enabled.
func buildChecker(cfg *config.Config) *health.Checker {
	checker := health.NewChecker()
	checker.AddCheck("configuration", func() error {
		return cfg.Validate()
	})
	if cfg.Database.ProbeEnabled {
		checker.AddCheck("database", database.Probe(cfg.Database))
	}
	return checker
}

func runServe(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	configPath := fs.String("config", "", "configuration file path")
	host := fs.String("host", "", "server host (overrides configuration)")
	port := fs.Int("port", 0, "server port (overrides configuration)")
	logLevel := fs.String("log-level", "", "log level (overrides configuration)")
	fs.Parse(args)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err)
	}

	// CLI flags win over file and environment
	if *host != "" {
		cfg.Server.Host = *host
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("FATAL: Configuration validation failed: %v", err)
	}

	logger := logging.NewStructuredLogger(cfg.Logging.Level, cfg.Logging.Format, serviceName, Version)
	logStartupEvents(logger, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Verify database reachability before serving; transient failures are
	// retried with backoff since the database may still be starting.
	if cfg.Database.ProbeEnabled {
		logger.Startup("verifying database connectivity...")
		err := retry.Do(ctx, func() error {
			return database.Ping(ctx, cfg.Database.URL, time.Duration(cfg.Database.TimeoutSeconds)*time.Second)
		}, 3, time.Second)
		if err != nil {
			logger.WithError(err).Error("database connectivity check failed")
			log.Fatalf("FATAL: Database connectivity check failed: %v", err)
		}
		logger.Database("connectivity verified")
	}

	collector := metrics.NewCollector()
	checker := buildChecker(cfg)
	srv := server.New(cfg, logger, collector, checker)

	logger.Startup("service starting",
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	if err := srv.ListenAndServe(ctx); err != nil {
		logger.WithError(err).Error("server failed")
		os.Exit(1)
	}

	logger.Startup("service shutdown completed")
}

func runHealth(args []string) int {
	fs := flag.NewFlagSet("health", flag.ExitOnError)
	configPath := fs.String("config", "", "configuration file path")
	fs.Parse(args)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		return 1
	}

	results, healthy := buildChecker(cfg).Report()
	for _, result := range results {
		if result.Err != nil {
			fmt.Printf("FAIL %s: %v\n", result.Name, result.Err)
		} else {
			fmt.Printf("ok   %s\n", result.Name)
		}
	}

	if !healthy {
		return 1
	}
	fmt.Println("all health checks passed")
	return 0
}

func runProcess(args []string) int {
	fs := flag.NewFlagSet("process", flag.ExitOnError)
	input := fs.String("input", "", "input data (reads one line from stdin when omitted)")
	fs.Parse(args)

	data := *input
	if data == "" {
		scanner := bufio.NewScanner(os.Stdin)
		if scanner.Scan() {
			data = strings.TrimSpace(scanner.Text())
		}
	}

	result, err := processing.ProcessData(data)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	fmt.Println(result)
	return 0
}

// logStartupEvents logs comprehensive startup information
func logStartupEvents(logger *logging.Logger, cfg *config.Config) {
	logger.Startup("service starting up", "version", Version)

	logger.Startup("configuration loaded successfully",
		"log_level", cfg.Logging.Level,
		"server_host", cfg.Server.Host,
		"server_port", cfg.Server.Port,
		"max_connections", cfg.Server.MaxConnections,
		"rate_limiting_enabled", cfg.Security.RateLimitingEnabled,
		"rate_limit_rpm", cfg.Security.RateLimitRPM,
		"database_probe_enabled", cfg.Database.ProbeEnabled,
	)
}
