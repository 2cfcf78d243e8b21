// README: Smoke and load runner for a deployed TripBud; executes HTTP/DB/Redis checks and prints results.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"
)

func main() {
	cfg := loadConfig()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	bench := NewRunner(cfg)
	results := bench.RunAll(ctx)

	fmt.Println("\n== Summary ==")
	pass, fail, skipped := 0, 0, 0
	for _, r := range results {
		switch r.Status {
		case "PASS":
			pass++
		case "FAIL":
			fail++
		case "SKIP":
			skipped++
		}
	}
	fmt.Printf("PASS=%d FAIL=%d SKIP=%d\n", pass, fail, skipped)

	if fail > 0 || (cfg.Strict && skipped > 0) {
		os.Exit(1)
	}
}

type Config struct {
	APIURL         string
	WebURL         string
	DSN            string
	RedisAddr      string
	MigrationPath  string
	ApplyMigration bool
	Strict         bool
	Timeout        time.Duration
	Concurrency    int
	Duration       time.Duration
}

func loadConfig() Config {
	var cfg Config
	flag.StringVar(&cfg.APIURL, "api-url", envOrDefault("TRIPBUD_API_URL", "http://localhost:8000"), "Recommendation API base URL")
	flag.StringVar(&cfg.WebURL, "web-url", envOrDefault("TRIPBUD_BENCH_WEB_URL", "http://localhost:3000"), "Planner web base URL")
	flag.StringVar(&cfg.DSN, "dsn", envOrDefault("TRIPBUD_DB_DSN", ""), "Postgres DSN")
	flag.StringVar(&cfg.RedisAddr, "redis", envOrDefault("TRIPBUD_REDIS_ADDR", ""), "Redis address")
	flag.StringVar(&cfg.MigrationPath, "migration", envOrDefault("TRIPBUD_BENCH_MIGRATION", "migrations/0001_cities.sql"), "Migration SQL path")
	flag.BoolVar(&cfg.ApplyMigration, "apply-migration", envOrDefaultBool("TRIPBUD_BENCH_APPLY_MIGRATION", false), "Apply migration SQL before tests")
	flag.BoolVar(&cfg.Strict, "strict", envOrDefaultBool("TRIPBUD_BENCH_STRICT", false), "Fail on skipped tests")
	flag.DurationVar(&cfg.Timeout, "timeout", envOrDefaultDuration("TRIPBUD_BENCH_TIMEOUT", 90*time.Second), "Total timeout")
	flag.IntVar(&cfg.Concurrency, "concurrency", envOrDefaultInt("TRIPBUD_BENCH_CONCURRENCY", 10), "Concurrency for perf tests")
	flag.DurationVar(&cfg.Duration, "duration", envOrDefaultDuration("TRIPBUD_BENCH_DURATION", 10*time.Second), "Duration for perf tests")
	flag.Parse()
	cfg.APIURL = strings.TrimRight(cfg.APIURL, "/")
	cfg.WebURL = strings.TrimRight(cfg.WebURL, "/")
	return cfg
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		v = strings.ToLower(v)
		return v == "1" || v == "true" || v == "yes"
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		var n int
		_, _ = fmt.Sscanf(v, "%d", &n)
		if n > 0 {
			return n
		}
	}
	return def
}

func envOrDefaultDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
