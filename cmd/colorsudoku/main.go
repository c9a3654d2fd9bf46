package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	httpadapter "svw.info/colorsudoku/internal/adapters/http"
	"svw.info/colorsudoku/internal/config"
	"svw.info/colorsudoku/internal/domain"
	"svw.info/colorsudoku/internal/generator"
	"svw.info/colorsudoku/internal/infrastructure/storage"
	"svw.info/colorsudoku/internal/usecase"
	"svw.info/colorsudoku/internal/validator"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	root := &cobra.Command{
		Use:   "colorsudoku",
		Short: "Generate and serve color-constraint sudoku grids",
	}
	root.AddCommand(serveCmd(), generateCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func setLogLevel(level string) {
	lvl := zerolog.InfoLevel
	switch strings.ToLower(level) {
	case "debug":
		lvl = zerolog.DebugLevel
	case "warn":
		lvl = zerolog.WarnLevel
	case "error":
		lvl = zerolog.ErrorLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

// requestLogger logs method, path, status, and duration for every request.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Int("bytes", c.Writer.Size()).
			Dur("dur", time.Since(start).Round(time.Millisecond)).
			Msg("http")
	}
}

func serveCmd() *cobra.Command {
	var (
		cfgPath  string
		addr     string
		dataDir  string
		logLevel string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the JSON API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			if cmd.Flags().Changed("data") {
				cfg.DataDir = dataDir
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			setLogLevel(cfg.LogLevel)
			if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
				return err
			}

			uc := usecase.NewService(validator.New(), storage.NewFS(cfg.DataDir))
			h := httpadapter.New(uc)

			gin.SetMode(gin.ReleaseMode)
			e := gin.New()
			e.Use(requestLogger(), gin.Recovery())
			h.Register(e)
			httpadapter.RegisterMetrics(e)

			srv := &http.Server{
				Addr:              cfg.Addr,
				Handler:           e,
				ReadHeaderTimeout: 5 * time.Second,
			}
			log.Info().Str("addr", cfg.Addr).Str("data", cfg.DataDir).Msg("listening")
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&cfgPath, "config", "", "path to YAML config file")
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&dataDir, "data", "./data", "save directory")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "debug|info|warn|error")
	return cmd
}

func generateCmd() *cobra.Command {
	var (
		size      int
		algorithm string
		seed      int64
		colorsCSV string
		asJSON    bool
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one solved grid and print it",
		RunE: func(cmd *cobra.Command, args []string) error {
			alg, err := domain.ParseAlgorithm(algorithm)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}
			var colors []domain.Color
			if colorsCSV != "" {
				for _, s := range strings.Split(colorsCSV, ",") {
					colors = append(colors, domain.Color(strings.TrimSpace(s)))
				}
			}
			g, st, err := generator.Generate(cmd.Context(), generator.Options{
				Size:      size,
				Algorithm: alg,
				Seed:      seed,
				Colors:    colors,
			})
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(g)
			}
			printGrid(g)
			log.Debug().Int("nodes", st.Nodes).Dur("dur", st.Duration).Msg("generated")
			return nil
		},
	}
	cmd.Flags().IntVar(&size, "size", 9, "grid size (perfect square ≥ 4)")
	cmd.Flags().StringVar(&algorithm, "algorithm", "exactcover", "backtracking|mrv|dsatur|exactcover")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (default: wall clock)")
	cmd.Flags().StringVar(&colorsCSV, "colors", "", "comma-separated color labels, one per value")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a text grid")
	return cmd
}

func printGrid(g *domain.Grid) {
	w := 0
	for r := 0; r < g.Size; r++ {
		for c := 0; c < g.Size; c++ {
			if n := len(g.Cells[r][c]); n > w {
				w = n
			}
		}
	}
	for r := 0; r < g.Size; r++ {
		parts := make([]string, g.Size)
		for c := 0; c < g.Size; c++ {
			parts[c] = fmt.Sprintf("%-*s", w, string(g.Cells[r][c]))
		}
		fmt.Println(strings.Join(parts, " "))
	}
}
