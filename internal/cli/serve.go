package cli

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/joelkehle/trustreply/internal/draft"
	"github.com/joelkehle/trustreply/internal/export"
	"github.com/joelkehle/trustreply/internal/extract"
	"github.com/joelkehle/trustreply/internal/llm"
	"github.com/joelkehle/trustreply/internal/observability"
	"github.com/joelkehle/trustreply/internal/server"
	"github.com/joelkehle/trustreply/internal/store"
	"github.com/joelkehle/trustreply/internal/wizard"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the TrustReply wizard server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default :8087)")
	serveCmd.Flags().String("db", "", "path to the snapshot database")
	_ = viper.BindPFlag("addr", serveCmd.Flags().Lookup("addr"))
	_ = viper.BindPFlag("db_path", serveCmd.Flags().Lookup("db"))
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if shutdown := observability.Init(ctx, observability.Config{
		ServiceName: "trustreply",
		Version:     "v0.1.0",
		Enabled:     cfg.OTelEnabled,
	}); shutdown != nil {
		defer func() {
			shutCtx, shutCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer shutCancel()
			_ = shutdown(shutCtx)
		}()
	}

	client, err := llm.NewClientFromEnv()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		return err
	}
	snapshots, err := store.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer snapshots.Close()

	wiz := wizard.NewController(
		extract.NewService(client),
		draft.NewService(client),
		llm.NewProbe(client),
		snapshots,
	)
	if err := wiz.Restore(ctx); err != nil {
		log.Printf("warning: could not restore previous session: %v", err)
	}

	handler := server.NewServer(wiz, export.NewLetterPDFRenderer())

	log.Printf("trustreply listening on %s (db=%s)", cfg.Addr, cfg.DBPath)
	srv := &http.Server{Addr: cfg.Addr, Handler: handler}
	go func() {
		<-ctx.Done()
		srv.Close()
	}()
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
