// import_stock carga un CSV de ítems en la base de datos configurada (DATABASE_URL / DB_*).
// Los SKU existentes se omiten; con -report se escribe además el reporte PDF tras importar.
//
// Uso: go run ./cmd/import_stock [-report salida.pdf] ruta/items.csv
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	appstock "github.com/jhoicas/stockmonitor/internal/application/stock"
	"github.com/jhoicas/stockmonitor/internal/infrastructure/export"
	infrapdf "github.com/jhoicas/stockmonitor/internal/infrastructure/pdf"
	"github.com/jhoicas/stockmonitor/internal/infrastructure/postgres"
	"github.com/jhoicas/stockmonitor/pkg/config"
	"github.com/jhoicas/stockmonitor/pkg/logger"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run devuelve el código de salida; main solo llama a os.Exit cuando los defer ya corrieron.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("import_stock", flag.ContinueOnError)
	fs.SetOutput(stderr)
	reportPath := fs.String("report", "", "ruta del PDF a generar tras la importación")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "uso: import_stock [-report salida.pdf] items.csv")
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Cargar configuración: %v\n", err)
		return 1
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	f, err := os.Open(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "Abrir CSV: %v\n", err)
		return 1
	}
	defer f.Close()

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(stderr, "Conexión a PostgreSQL: %v\n", err)
		return 1
	}
	defer pool.Close()
	if err := postgres.Migrate(ctx, pool); err != nil {
		fmt.Fprintf(stderr, "Migrar esquema: %v\n", err)
		return 1
	}

	codec := export.NewCSVCodec()
	uc := appstock.NewTransferUseCase(
		postgres.NewStockItemRepository(pool), postgres.NewTxRunner(pool),
		codec, codec, export.NewXMLBuilder(), infrapdf.NewMarotoStockReport(cfg.App.Name), log,
	)

	res, err := uc.Import(ctx, f)
	if err != nil {
		fmt.Fprintf(stderr, "Importar: %v\n", err)
		return 1
	}
	fmt.Fprintf(stdout, "Importados: %d, omitidos: %d, fallidos: %d\n", res.Imported, res.Skipped, res.Failed)
	for _, e := range res.Errors {
		fmt.Fprintf(stdout, "  %s\n", e)
	}

	if *reportPath != "" {
		pdf, _, err := uc.ReportPDF(ctx)
		if err != nil {
			fmt.Fprintf(stderr, "Generar reporte: %v\n", err)
			return 1
		}
		if err := os.WriteFile(*reportPath, pdf, 0o644); err != nil {
			fmt.Fprintf(stderr, "Escribir reporte: %v\n", err)
			return 1
		}
		fmt.Fprintf(stdout, "Reporte escrito en %s\n", *reportPath)
	}
	return 0
}
