// gproctl herramientas de operación sobre los datos de la tienda: exportaciones,
// listado del catálogo y borrado total.
//
// Lee la misma configuración que la API (STORE_DRIVER, SQLITE_PATH, DATABASE_URL...).
// Con STORE_DRIVER=memory cada ejecución parte del catálogo inicial.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/gestion-pro/internal/application/state"
	"github.com/jhoicas/gestion-pro/internal/infrastructure/storage"
	"github.com/jhoicas/gestion-pro/pkg/config"
	"github.com/jhoicas/gestion-pro/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "gproctl",
	Short:         "Operación de Gestión Pro desde la terminal",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(productsCmd)
	rootCmd.AddCommand(resetCmd)
}

// env dependencias de un comando ya arrancadas.
type env struct {
	cfg   *config.Config
	log   *logger.Logger
	repo  *storage.Service
	store *state.Store
	close func()
}

// boot carga configuración, abre el almacenamiento y levanta el estado.
func boot(ctx context.Context) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("cargar configuración: %w", err)
	}
	log := logger.New(logger.Config{Env: "development", Level: cfg.App.LogLevel, Output: os.Stderr})

	repo, closeStores, err := storage.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	initial, err := state.Bootstrap(ctx, repo, time.Now())
	if err != nil {
		closeStores()
		return nil, fmt.Errorf("carga inicial de datos: %w", err)
	}
	store := state.New(initial)
	return &env{
		cfg:   cfg,
		log:   log,
		repo:  repo,
		store: store,
		close: func() {
			store.Close()
			closeStores()
		},
	}, nil
}
