// README: Smoke cases: environment, migration, recommendation API, planner web and throughput.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type Runner struct {
	cfg   Config
	httpc *http.Client
	db    *pgxpool.Pool
	redis *redis.Client
}

type Result struct {
	Name    string
	Status  string
	Latency time.Duration
	Note    string
}

type TestCase struct {
	Name string
	Run  func(ctx context.Context, r *Runner) Result
}

func NewRunner(cfg Config) *Runner {
	return &Runner{
		cfg:   cfg,
		httpc: &http.Client{Timeout: 60 * time.Second},
	}
}

func (r *Runner) RunAll(ctx context.Context) []Result {
	if r.cfg.DSN != "" {
		if db, err := pgxpool.New(ctx, r.cfg.DSN); err == nil {
			r.db = db
		}
	}
	if r.cfg.RedisAddr != "" {
		r.redis = redis.NewClient(&redis.Options{Addr: r.cfg.RedisAddr})
	}

	tests := r.cases()
	results := make([]Result, 0, len(tests))

	for _, tc := range tests {
		res := tc.Run(ctx, r)
		res.Name = tc.Name
		results = append(results, res)
		fmt.Printf("%-5s %s", res.Status, tc.Name)
		if res.Latency > 0 {
			fmt.Printf(" (%s)", res.Latency)
		}
		if res.Note != "" {
			fmt.Printf(" - %s", res.Note)
		}
		fmt.Println()
	}

	if r.db != nil {
		r.db.Close()
	}
	if r.redis != nil {
		_ = r.redis.Close()
	}

	return results
}

func (r *Runner) cases() []TestCase {
	api := r.cfg.APIURL
	paris := map[string]any{
		"city":         "Paris",
		"interests":    []string{"food", "culture"},
		"duration":     3,
		"budget":       "medium",
		"travel_style": "balanced",
	}
	return []TestCase{
		{
			Name: "Env: Postgres connect",
			Run: func(ctx context.Context, r *Runner) Result {
				if r.db == nil {
					return Result{Status: "SKIP", Note: "db not configured"}
				}
				ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
				defer cancel()
				if err := r.db.Ping(ctx); err != nil {
					return Result{Status: "FAIL", Note: err.Error()}
				}
				return Result{Status: "PASS"}
			},
		},
		{
			Name: "Env: Redis connect",
			Run: func(ctx context.Context, r *Runner) Result {
				if r.redis == nil {
					return Result{Status: "SKIP", Note: "redis not configured"}
				}
				ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
				defer cancel()
				if err := r.redis.Ping(ctx).Err(); err != nil {
					return Result{Status: "FAIL", Note: err.Error()}
				}
				return Result{Status: "PASS"}
			},
		},
		{
			Name: "Migration: apply (optional)",
			Run: func(ctx context.Context, r *Runner) Result {
				if !r.cfg.ApplyMigration {
					return Result{Status: "SKIP", Note: "apply-migration=false"}
				}
				if r.db == nil {
					return Result{Status: "FAIL", Note: "db not configured"}
				}
				sql, err := os.ReadFile(r.cfg.MigrationPath)
				if err != nil {
					return Result{Status: "FAIL", Note: err.Error()}
				}
				for _, s := range splitSQL(string(sql)) {
					if _, err := r.db.Exec(ctx, s); err != nil {
						return Result{Status: "FAIL", Note: err.Error()}
					}
				}
				return Result{Status: "PASS"}
			},
		},
		{
			Name: "Migration: tables exist",
			Run: func(ctx context.Context, r *Runner) Result {
				if r.db == nil {
					return Result{Status: "SKIP", Note: "db not configured"}
				}
				tables, err := extractTables(r.cfg.MigrationPath)
				if err != nil {
					return Result{Status: "FAIL", Note: err.Error()}
				}
				for _, t := range tables {
					var exists bool
					err := r.db.QueryRow(ctx,
						"SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name=$1)",
						t,
					).Scan(&exists)
					if err != nil {
						return Result{Status: "FAIL", Note: err.Error()}
					}
					if !exists {
						return Result{Status: "FAIL", Note: "missing table: " + t}
					}
				}
				return Result{Status: "PASS"}
			},
		},

		httpCase("API: health", http.MethodGet, api+"/health", nil, http.StatusOK),
		httpCase("API: index", http.MethodGet, api+"/", nil, http.StatusOK),
		httpCase("API: cities", http.MethodGet, api+"/cities", nil, http.StatusOK),
		httpCase("API: categories", http.MethodGet, api+"/categories", nil, http.StatusOK),
		{
			Name: "API: recommendations (Paris)",
			Run: func(ctx context.Context, r *Runner) Result {
				return recommendParis(ctx, r, api+"/recommendations", paris)
			},
		},
		httpCase("API: recommendations (missing fields -> 400)", http.MethodPost, api+"/recommendations",
			map[string]any{"city": "Paris"}, http.StatusBadRequest),
		httpCase("API: recommendations (duration 31 -> 400)", http.MethodPost, api+"/recommendations",
			map[string]any{"city": "Paris", "interests": []string{"food"}, "duration": 31}, http.StatusBadRequest),

		httpCase("Web: healthz", http.MethodGet, r.cfg.WebURL+"/healthz", nil, http.StatusOK),
		{
			Name: "Web: submit flow",
			Run:  webFlow,
		},

		{
			Name: "Perf: cities throughput",
			Run: func(ctx context.Context, r *Runner) Result {
				return perfLoad(ctx, r, http.MethodGet, api+"/cities", nil)
			},
		},
		{
			Name: "Perf: recommendations throughput",
			Run: func(ctx context.Context, r *Runner) Result {
				return perfLoad(ctx, r, http.MethodPost, api+"/recommendations", paris)
			},
		},
	}
}

func httpCase(name, method, url string, body any, okStatuses ...int) TestCase {
	return TestCase{
		Name: name,
		Run: func(ctx context.Context, r *Runner) Result {
			resp, latency, err := r.send(ctx, method, url, body)
			if err != nil {
				return Result{Status: "FAIL", Note: err.Error()}
			}
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()

			if contains(okStatuses, resp.StatusCode) {
				return Result{Status: "PASS", Latency: latency, Note: fmt.Sprintf("status=%d", resp.StatusCode)}
			}
			return Result{Status: "FAIL", Latency: latency, Note: fmt.Sprintf("status=%d", resp.StatusCode)}
		},
	}
}

func (r *Runner) send(ctx context.Context, method, url string, body any) (*http.Response, time.Duration, error) {
	var reader io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = strings.NewReader(string(b))
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	start := time.Now()
	resp, err := r.httpc.Do(req)
	return resp, time.Since(start), err
}

func recommendParis(ctx context.Context, r *Runner, url string, payload any) Result {
	resp, latency, err := r.send(ctx, http.MethodPost, url, payload)
	if err != nil {
		return Result{Status: "FAIL", Note: err.Error()}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Result{Status: "FAIL", Latency: latency, Note: fmt.Sprintf("status=%d", resp.StatusCode)}
	}
	var out struct {
		City            string            `json:"city"`
		Summary         string            `json:"summary"`
		Recommendations []json.RawMessage `json:"recommendations"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Result{Status: "FAIL", Latency: latency, Note: err.Error()}
	}
	if out.City != "Paris" || out.Summary == "" || len(out.Recommendations) == 0 {
		return Result{Status: "FAIL", Latency: latency, Note: fmt.Sprintf("unexpected body city=%q items=%d", out.City, len(out.Recommendations))}
	}
	return Result{Status: "PASS", Latency: latency, Note: fmt.Sprintf("items=%d", len(out.Recommendations))}
}

// webFlow drives the planner page like a browser: fill, toggle, submit, poll.
func webFlow(ctx context.Context, r *Runner) Result {
	jar, _ := cookiejar.New(nil)
	c := &http.Client{Jar: jar, Timeout: 10 * time.Second}
	base := r.cfg.WebURL
	start := time.Now()

	post := func(path string, form url.Values) error {
		req, _ := http.NewRequestWithContext(ctx, http.MethodPost, base+path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		resp, err := c.Do(req)
		if err != nil {
			return err
		}
		io.Copy(io.Discard, resp.Body)
		return resp.Body.Close()
	}
	fields := url.Values{"city": {"Paris"}, "duration": {"3"}, "budget": {"medium"}, "travel_style": {"balanced"}}

	form := url.Values{"toggle": {"food"}}
	for k, v := range fields {
		form[k] = v
	}
	if err := post("/form", form); err != nil {
		return Result{Status: "FAIL", Note: err.Error()}
	}
	form = url.Values{"action": {"submit"}}
	for k, v := range fields {
		form[k] = v
	}
	if err := post("/form", form); err != nil {
		return Result{Status: "FAIL", Note: err.Error()}
	}

	for {
		req, _ := http.NewRequestWithContext(ctx, http.MethodGet, base+"/", nil)
		resp, err := c.Do(req)
		if err != nil {
			return Result{Status: "FAIL", Note: err.Error()}
		}
		b, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		page := string(b)
		switch {
		case strings.Contains(page, "Your Paris Itinerary"):
			return Result{Status: "PASS", Latency: time.Since(start)}
		case strings.Contains(page, "error-message"):
			return Result{Status: "FAIL", Latency: time.Since(start), Note: "form shows an error"}
		}
		select {
		case <-ctx.Done():
			return Result{Status: "FAIL", Note: ctx.Err().Error()}
		case <-time.After(time.Second):
		}
	}
}

func perfLoad(ctx context.Context, r *Runner, method, url string, payload any) Result {
	end := time.Now().Add(r.cfg.Duration)
	var count int64
	var errCount int64
	var mu sync.Mutex
	wg := sync.WaitGroup{}

	for i := 0; i < r.cfg.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for time.Now().Before(end) && ctx.Err() == nil {
				resp, _, err := r.send(ctx, method, url, payload)
				if err != nil {
					mu.Lock()
					errCount++
					mu.Unlock()
					continue
				}
				io.Copy(io.Discard, resp.Body)
				resp.Body.Close()
				mu.Lock()
				count++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if count == 0 {
		return Result{Status: "FAIL", Note: "no requests completed"}
	}
	rps := float64(count) / r.cfg.Duration.Seconds()
	return Result{Status: "PASS", Note: fmt.Sprintf("rps=%.1f errors=%d", rps, errCount)}
}

func contains(list []int, v int) bool {
	for _, i := range list {
		if i == v {
			return true
		}
	}
	return false
}

func extractTables(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	re := regexp.MustCompile(`(?i)create\s+table\s+if\s+not\s+exists\s+([a-zA-Z0-9_]+)`)
	matches := re.FindAllStringSubmatch(string(b), -1)
	tables := make([]string, 0, len(matches))
	for _, m := range matches {
		tables = append(tables, m[1])
	}
	return tables, nil
}

func splitSQL(sql string) []string {
	lines := strings.Split(sql, "\n")
	filtered := make([]string, 0, len(lines))
	for _, line := range lines {
		l := strings.TrimSpace(line)
		if strings.HasPrefix(l, "--") || l == "" {
			continue
		}
		filtered = append(filtered, line)
	}
	parts := strings.Split(strings.Join(filtered, "\n"), ";")
	stmts := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			stmts = append(stmts, s)
		}
	}
	return stmts
}
