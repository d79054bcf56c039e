// seed importa un catálogo CSV (billboard, categoría, talla, color y producto por fila) en una tienda.
//
// Uso: go run ./cmd/seed --owner <user-id> [--store-id <id> | --store-name <nombre>] catalogo.csv
// Usa la misma configuración de base de datos que la API (DB_DRIVER, DB_*, SQLITE_PATH).
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jhoicas/store-admin-api/internal/app"
	"github.com/jhoicas/store-admin-api/internal/application/dto"
	"github.com/jhoicas/store-admin-api/pkg/config"
	"github.com/jhoicas/store-admin-api/pkg/logger"
)

var (
	ownerID   string
	storeID   string
	storeName string
	encoding  string
)

var rootCmd = &cobra.Command{
	Use:          "seed <catalogo.csv>",
	Short:        "Importa un catálogo CSV en una tienda",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&ownerID, "owner", "", "ID del usuario dueño (requerido)")
	rootCmd.Flags().StringVar(&storeID, "store-id", "", "tienda existente del dueño")
	rootCmd.Flags().StringVar(&storeName, "store-name", "", "crea una tienda nueva con este nombre")
	rootCmd.Flags().StringVar(&encoding, "encoding", "utf8", "codificación del CSV: utf8 | latin1")
	_ = rootCmd.MarkFlagRequired("owner")
	rootCmd.MarkFlagsMutuallyExclusive("store-id", "store-name")
	rootCmd.MarkFlagsOneRequired("store-id", "store-name")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "seed: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cargar configuración: %w", err)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).Named("seed")

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("abrir CSV: %w", err)
	}
	defer f.Close()
	rows, err := readCatalog(f, encoding == "latin1")
	if err != nil {
		return err
	}

	db, dialect, closeDB, err := app.OpenDatabase(ctx, cfg.DB, log)
	if err != nil {
		return fmt.Errorf("conexión a la base de datos: %w", err)
	}
	defer closeDB()
	svc := app.NewServices(db, dialect, app.Options{Log: log})

	target := storeID
	if target == "" {
		store, err := svc.Stores.Create(ctx, ownerID, dto.StoreRequest{Name: storeName})
		if err != nil {
			return fmt.Errorf("crear tienda: %w", err)
		}
		target = store.ID
		log.Info().Str("store_id", target).Str("name", store.Name).Msg("tienda creada")
	}

	sum, err := newImporter(svc, ownerID, target, log).run(ctx, rows)
	if err != nil {
		return err
	}
	log.Info().
		Str("store_id", target).
		Int("billboards", sum.Billboards).
		Int("categories", sum.Categories).
		Int("sizes", sum.Sizes).
		Int("colors", sum.Colors).
		Int("products", sum.Products).
		Msg("catálogo importado")
	fmt.Printf("Importados %d productos en la tienda %s\n", sum.Products, target)
	return nil
}
