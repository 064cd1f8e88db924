package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/usuarios-api/internal/greetings"
	"github.com/ziadkadry99/usuarios-api/internal/server"
	"github.com/ziadkadry99/usuarios-api/internal/users"
)

var serverPort int

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP API",
	Long:  `Starts the HTTP API serving /hola, /saludo/{nombre} and the /usuarios CRUD endpoints.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = serverPort
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		store, closeStore, err := openStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeStore()

		srv := server.New(server.Config{
			Port:           cfg.Port,
			AllowAll:       cfg.AllowAllOrigins,
			RequestTimeout: time.Duration(cfg.RequestTimeoutSeconds) * time.Second,
		})
		registerAllRoutes(srv, store)

		// Graceful shutdown.
		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()

		fmt.Fprintf(os.Stderr, "usuarios %s (storage=%s, id_policy=%s, seed=%t)\n",
			Version, cfg.Storage, cfg.IDPolicy, cfg.Seed)

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

// registerAllRoutes wires up the feature routes.
func registerAllRoutes(srv *server.Server, store users.Store) {
	r := srv.Router()
	greetings.RegisterRoutes(r)
	users.RegisterRoutes(r, store)
}

func init() {
	serverCmd.Flags().IntVar(&serverPort, "port", 3000, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serverCmd)
}
