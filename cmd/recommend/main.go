package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"practice-recommender/internal/catalog"
	"practice-recommender/internal/config"
	"practice-recommender/internal/domain"
	"practice-recommender/internal/llm"
	"practice-recommender/internal/service"
)

// recommend lee un perfil JSON (archivo o stdin) e imprime el reporte.
//
//	go run ./cmd/recommend --profile profile.json
//	go run ./cmd/recommend --catalog practices.yaml < profile.json
//	go run ./cmd/recommend practices
//	go run ./cmd/recommend token user-123
func main() {
	_ = godotenv.Load()
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Los logs van a stderr; stdout queda reservado para el JSON.
func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var (
		profilePath string
		catalogPath string
		withInsight bool
	)

	root := &cobra.Command{
		Use:           "recommend",
		Short:         "Rank meditation practices for an assessment profile",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			logger := newLogger(stderr)
			defer logger.Sync()

			c, err := loadCatalog(catalogPath)
			if err != nil {
				return fmt.Errorf("cargar catalogo: %w", err)
			}
			profile, err := readProfile(profilePath, stdin)
			if err != nil {
				return fmt.Errorf("leer perfil: %w", err)
			}
			engine, err := service.NewRecommendationEngine(cfg.Scoring)
			if err != nil {
				return err
			}
			report, err := engine.GenerateReport(c, profile)
			if err != nil {
				return fmt.Errorf("generar reporte: %w", err)
			}

			out := struct {
				Report  domain.RecommendationReport `json:"report"`
				Insight string                      `json:"insight,omitempty"`
			}{Report: report}

			if withInsight {
				if cfg.LLMAPIKey == "" {
					logger.Warn("insight requested but LLM_API_KEY is empty")
				} else {
					client := llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, logger)
					out.Insight = service.NewInsightService(client, nil, logger).Explain(cmd.Context(), "cli", report, profile)
				}
			}
			return writeJSON(stdout, out)
		},
	}
	root.Flags().StringVarP(&profilePath, "profile", "p", "", "profile JSON file (default: stdin)")
	root.PersistentFlags().StringVarP(&catalogPath, "catalog", "c", "", "YAML catalog file (default: built-in catalog)")
	root.Flags().BoolVar(&withInsight, "insight", false, "ask the LLM for a free-text insight (needs LLM_API_KEY)")

	root.AddCommand(&cobra.Command{
		Use:   "practices",
		Short: "Print the catalog in ranking tie-break order",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			c, err := loadCatalog(catalogPath)
			if err != nil {
				return fmt.Errorf("cargar catalogo: %w", err)
			}
			return writeJSON(stdout, c)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "token <user-id>",
		Short: "Print a dev access token for /me routes (needs JWT_SECRET)",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			token, err := service.NewJWTService(cfg.JWTSecret, 0).GenerateAccessToken(args[0])
			if err != nil {
				return fmt.Errorf("generar token: %w", err)
			}
			_, err = fmt.Fprintln(stdout, token)
			return err
		},
	})

	return root
}

func newLogger(w io.Writer) *zap.Logger {
	enc := zapcore.NewJSONEncoder(zapcore.EncoderConfig{
		MessageKey:  "msg",
		LevelKey:    "level",
		NameKey:     "logger",
		EncodeLevel: zapcore.LowercaseLevelEncoder,
	})
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), zap.DebugLevel))
}

func loadCatalog(path string) (*domain.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.LoadFile(path)
}

// readProfile acepta entrada vacia como perfil sin respuestas.
func readProfile(path string, stdin io.Reader) (domain.UserProfile, error) {
	r := stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return domain.UserProfile{}, err
		}
		defer f.Close()
		r = f
	}

	var profile domain.UserProfile
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&profile); err != nil && !errors.Is(err, io.EOF) {
		return domain.UserProfile{}, err
	}
	return profile, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
