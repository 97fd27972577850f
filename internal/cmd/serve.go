package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/ksandoval/mood-mirror/internal/config"
	"github.com/ksandoval/mood-mirror/internal/db"
	"github.com/ksandoval/mood-mirror/internal/engine"
	"github.com/ksandoval/mood-mirror/internal/report"
	"github.com/ksandoval/mood-mirror/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the analysis HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	// Report storage: Postgres when configured, in-memory otherwise.
	var store web.ReportStore = web.NewMemoryReportStore()
	if cfg.DatabaseURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		database, err := db.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer database.Close()

		if err := database.Migrate(ctx); err != nil {
			return fmt.Errorf("migrating database: %w", err)
		}
		store = database.Reports()
		log.Println("Report storage: PostgreSQL")
	} else {
		log.Println("Report storage: in-memory (set DATABASE_URL to persist)")
	}

	mailer, err := report.NewMailer(report.MailerConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.EmailSender,
	})
	switch {
	case errors.Is(err, report.ErrMailerNotConfigured):
		log.Println("Email delivery disabled (set EMAIL_SENDER and EMAIL_PASSWORD)")
		mailer = nil
	case err != nil:
		return fmt.Errorf("creating mailer: %w", err)
	}

	narrator, err := report.NewNarrativeGenerator(report.NarrativeConfig{
		APIKey:  cfg.OpenAIAPIKey,
		BaseURL: cfg.OpenAIBaseURL,
		Model:   cfg.OpenAIModel,
	})
	switch {
	case errors.Is(err, report.ErrNarrativeNotConfigured):
		log.Println("Narrative summaries disabled (set OPENAI_API_KEY)")
		narrator = nil
	case err != nil:
		return fmt.Errorf("creating narrative generator: %w", err)
	}

	server := web.NewServer(web.ServerConfig{
		Addr:     cfg.Addr,
		Engine:   engine.New(engine.DefaultConfig()),
		Store:    store,
		Mailer:   mailer,
		Narrator: narrator,
	})

	return server.Run()
}
