package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

type checkConfig struct {
	BaseURL        string
	DSN            string
	RedisAddr      string
	MigrationPath  string
	ApplyMigration bool
	Strict         bool
	Timeout        time.Duration
}

var checkCfg checkConfig

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run smoke checks against a running API and its backing stores",
	RunE:  runCheck,
}

func init() {
	f := checkCmd.Flags()
	f.StringVar(&checkCfg.BaseURL, "base-url", envOrDefault("TAXIBOOK_CHECK_BASE_URL", "http://localhost:8080"), "API base URL")
	f.StringVar(&checkCfg.DSN, "dsn", os.Getenv("TAXIBOOK_DB_DSN"), "Postgres DSN (optional)")
	f.StringVar(&checkCfg.RedisAddr, "redis", os.Getenv("TAXIBOOK_REDIS_ADDR"), "Redis address (optional)")
	f.StringVar(&checkCfg.MigrationPath, "migration", "migrations/0001_pricing_rates.sql", "Migration SQL path")
	f.BoolVar(&checkCfg.ApplyMigration, "apply-migration", false, "Apply migration SQL before checks")
	f.BoolVar(&checkCfg.Strict, "strict", false, "Fail on pending checks")
	f.DurationVar(&checkCfg.Timeout, "timeout", 60*time.Second, "Total timeout")
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

const (
	statusPass    = "PASS"
	statusFail    = "FAIL"
	statusPending = "PENDING"
	statusSkip    = "SKIP"
)

type checkResult struct {
	Status  string
	Latency time.Duration
	Note    string
}

type checkCase struct {
	Name string
	Run  func(ctx context.Context, r *checkRunner) checkResult
}

type checkRunner struct {
	cfg   checkConfig
	httpc *http.Client
	db    *pgxpool.Pool
	redis *redis.Client
	out   io.Writer
}

func runCheck(cmd *cobra.Command, _ []string) error {
	cfg := checkCfg
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout)
	defer cancel()

	r := &checkRunner{cfg: cfg, httpc: &http.Client{Timeout: 10 * time.Second}, out: cmd.OutOrStdout()}
	counts := r.runAll(ctx)

	fmt.Fprintf(r.out, "\n%s\n%s=%d %s=%d %s=%d %s=%d\n", bold("== Summary =="),
		green(statusPass), counts[statusPass], red(statusFail), counts[statusFail],
		yellow(statusPending), counts[statusPending], statusSkip, counts[statusSkip])

	if counts[statusFail] > 0 || (cfg.Strict && counts[statusPending] > 0) {
		return fmt.Errorf("%d check(s) failed", counts[statusFail]+counts[statusPending])
	}
	return nil
}

func (r *checkRunner) runAll(ctx context.Context) map[string]int {
	if r.cfg.DSN != "" {
		if db, err := pgxpool.New(ctx, r.cfg.DSN); err == nil {
			r.db = db
			defer db.Close()
		}
	}
	if r.cfg.RedisAddr != "" {
		r.redis = redis.NewClient(&redis.Options{Addr: r.cfg.RedisAddr})
		defer func() { _ = r.redis.Close() }()
	}

	counts := map[string]int{}
	for _, tc := range r.cases() {
		res := tc.Run(ctx, r)
		counts[res.Status]++
		fmt.Fprintf(r.out, "%-7s %s", colorStatus(res.Status), tc.Name)
		if res.Latency > 0 {
			fmt.Fprintf(r.out, " (%s)", res.Latency.Round(time.Millisecond))
		}
		if res.Note != "" {
			fmt.Fprintf(r.out, " - %s", res.Note)
		}
		fmt.Fprintln(r.out)
	}
	return counts
}

func colorStatus(s string) string {
	switch s {
	case statusPass:
		return green(s)
	case statusFail:
		return red(s)
	case statusPending:
		return yellow(s)
	default:
		return s
	}
}

func (r *checkRunner) cases() []checkCase {
	base := r.cfg.BaseURL
	trip := map[string]any{
		"departure":   map[string]any{"address": "Gare de Torcy, 77200 Torcy"},
		"destination": map[string]any{"address": "Disneyland Paris, Chessy"},
		"date":        time.Now().AddDate(0, 0, 1).Format("2006-01-02"),
		"time":        "10:00",
	}

	return []checkCase{
		{Name: "Env: Postgres connect", Run: func(ctx context.Context, r *checkRunner) checkResult {
			if r.db == nil {
				return checkResult{Status: statusSkip, Note: "dsn not set"}
			}
			ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
			defer cancel()
			if err := r.db.Ping(ctx); err != nil {
				return checkResult{Status: statusFail, Note: err.Error()}
			}
			return checkResult{Status: statusPass}
		}},
		{Name: "Env: Redis connect", Run: func(ctx context.Context, r *checkRunner) checkResult {
			if r.redis == nil {
				return checkResult{Status: statusSkip, Note: "redis not set"}
			}
			ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
			defer cancel()
			if err := r.redis.Ping(ctx).Err(); err != nil {
				return checkResult{Status: statusFail, Note: err.Error()}
			}
			return checkResult{Status: statusPass}
		}},
		{Name: "Migration: apply (optional)", Run: func(ctx context.Context, r *checkRunner) checkResult {
			if !r.cfg.ApplyMigration {
				return checkResult{Status: statusSkip, Note: "apply-migration=false"}
			}
			if r.db == nil {
				return checkResult{Status: statusFail, Note: "db not configured"}
			}
			sql, err := os.ReadFile(r.cfg.MigrationPath)
			if err != nil {
				return checkResult{Status: statusFail, Note: err.Error()}
			}
			for _, s := range splitSQL(string(sql)) {
				if _, err := r.db.Exec(ctx, s); err != nil {
					return checkResult{Status: statusFail, Note: err.Error()}
				}
			}
			return checkResult{Status: statusPass}
		}},
		{Name: "Migration: tables exist", Run: func(ctx context.Context, r *checkRunner) checkResult {
			if r.db == nil {
				return checkResult{Status: statusSkip, Note: "db not configured"}
			}
			tables, err := extractTables(r.cfg.MigrationPath)
			if err != nil {
				return checkResult{Status: statusFail, Note: err.Error()}
			}
			for _, t := range tables {
				var exists bool
				if err := r.db.QueryRow(ctx, "SELECT to_regclass($1) IS NOT NULL", t).Scan(&exists); err != nil {
					return checkResult{Status: statusFail, Note: err.Error()}
				}
				if !exists {
					return checkResult{Status: statusFail, Note: "missing table: " + t}
				}
			}
			return checkResult{Status: statusPass}
		}},

		httpCheck("API: health", http.MethodGet, base+"/health", nil, []int{200}, nil),
		httpCheck("API: catalog", http.MethodGet, base+"/api/catalog", nil, []int{200}, nil),
		httpCheck("API: messages (en)", http.MethodGet, base+"/api/i18n?lang=en", nil, []int{200}, nil),
		httpCheck("Places: local suggestions", http.MethodGet, base+"/api/places/suggestions?input=torcy", nil, []int{200}, nil),
		httpCheck("Places: autocomplete", http.MethodGet, base+"/api/places/autocomplete?input=Torcy", nil, []int{200}, []int{503}),
		httpCheck("Quote: invalid time -> 400", http.MethodPost, base+"/api/quotes", map[string]any{
			"departure":   map[string]any{"address": "Torcy"},
			"destination": map[string]any{"address": "Chessy"},
			"date":        "2024-03-15",
			"time":        "25:99",
		}, []int{400}, nil),
		httpCheck("Quote: Torcy -> Disneyland", http.MethodPost, base+"/api/quotes", trip, []int{200}, []int{502}),
		httpCheck("Booking: invalid form -> 422", http.MethodPost, base+"/api/bookings", map[string]any{
			"email": "not-an-email",
			"trip":  trip,
		}, []int{422}, nil),
		httpCheck("Booking: receipt PDF", http.MethodPost, base+"/api/bookings/receipt", map[string]any{
			"first_name": "Smoke",
			"last_name":  "Check",
			"email":      "smoke@example.com",
			"phone":      "0600000000",
			"trip":       trip,
		}, []int{200}, []int{502}),
	}
}

// httpCheck passes on ok statuses; pending statuses mean an optional backend is not configured.
func httpCheck(name, method, url string, body any, ok, pending []int) checkCase {
	return checkCase{
		Name: name,
		Run: func(ctx context.Context, r *checkRunner) checkResult {
			var reader io.Reader
			if body != nil {
				b, _ := json.Marshal(body)
				reader = strings.NewReader(string(b))
			}
			req, err := http.NewRequestWithContext(ctx, method, url, reader)
			if err != nil {
				return checkResult{Status: statusFail, Note: err.Error()}
			}
			req.Header.Set("Content-Type", "application/json")

			start := time.Now()
			resp, err := r.httpc.Do(req)
			if err != nil {
				return checkResult{Status: statusFail, Note: err.Error()}
			}
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
			latency := time.Since(start)

			note := fmt.Sprintf("status=%d", resp.StatusCode)
			switch {
			case contains(ok, resp.StatusCode):
				return checkResult{Status: statusPass, Latency: latency, Note: note}
			case contains(pending, resp.StatusCode):
				return checkResult{Status: statusPending, Latency: latency, Note: note}
			default:
				return checkResult{Status: statusFail, Latency: latency, Note: note}
			}
		},
	}
}

func contains(list []int, v int) bool {
	for _, i := range list {
		if i == v {
			return true
		}
	}
	return false
}

var createTable = regexp.MustCompile(`(?i)create\s+table\s+if\s+not\s+exists\s+([a-zA-Z0-9_]+)`)

func extractTables(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	matches := createTable.FindAllStringSubmatch(string(b), -1)
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
