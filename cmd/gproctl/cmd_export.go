package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/gestion-pro/internal/application/dto"
	"github.com/jhoicas/gestion-pro/internal/application/ports"
	"github.com/jhoicas/gestion-pro/internal/application/usecase"
	infras3 "github.com/jhoicas/gestion-pro/internal/infrastructure/s3"
	"github.com/jhoicas/gestion-pro/pkg/format"
)

var (
	exportOut      string
	exportEncoding string
	exportUpload   bool
	exportFilter   dto.InventoryFilter
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Exportar ventas o inventario a CSV",
}

// gproctl export sales
var exportSalesCmd = &cobra.Command{
	Use:   "sales",
	Short: "Exportar el historial de ventas (ID,Total)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport(cmd, "ventas", func(uc *usecase.ExportUseCase) ([]byte, int, error) {
			return uc.SalesCSV(cmd.Context())
		})
	},
}

// gproctl export inventory
var exportInventoryCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Exportar el inventario filtrado",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport(cmd, "inventario", func(uc *usecase.ExportUseCase) ([]byte, int, error) {
			return uc.InventoryCSV(cmd.Context(), exportFilter)
		})
	},
}

func init() {
	for _, c := range []*cobra.Command{exportSalesCmd, exportInventoryCmd} {
		c.Flags().StringVarP(&exportOut, "out", "o", "", "archivo de salida (por defecto prefijo-fecha.csv; \"-\" = stdout)")
		c.Flags().StringVar(&exportEncoding, "encoding", "utf8", "codificación del archivo: utf8 | latin1")
		c.Flags().BoolVar(&exportUpload, "upload", false, "subir además al bucket EXPORT_S3_BUCKET")
		exportCmd.AddCommand(c)
	}
	exportInventoryCmd.Flags().StringVar(&exportFilter.Search, "search", "", "texto en nombre o código")
	exportInventoryCmd.Flags().StringVar(&exportFilter.Category, "category", "", "categoría (All = todas)")
	exportInventoryCmd.Flags().StringVar(&exportFilter.Stock, "stock", dto.StockFilterAll, "all | low")
}

func runExport(cmd *cobra.Command, prefix string, build func(*usecase.ExportUseCase) ([]byte, int, error)) error {
	if exportEncoding != "utf8" && exportEncoding != "latin1" {
		return fmt.Errorf("encoding inválido: %q", exportEncoding)
	}
	ctx := cmd.Context()
	e, err := boot(ctx)
	if err != nil {
		return err
	}
	defer e.close()

	var uploader ports.ExportUploader
	if exportUpload {
		if !e.cfg.Export.Enabled() {
			return fmt.Errorf("--upload requiere EXPORT_S3_BUCKET")
		}
		u, err := infras3.New(ctx, e.cfg.Export)
		if err != nil {
			return err
		}
		uploader = u
	}
	uc := usecase.NewExportUseCase(e.store, uploader, time.Now)

	data, rows, err := build(uc)
	if err != nil {
		return err
	}
	if exportEncoding == "latin1" {
		if data, err = toWindows1252(data); err != nil {
			return err
		}
	}

	name := exportOut
	if name == "" {
		name = uc.FileName(prefix)
	}
	if err := writeOutput(cmd.OutOrStdout(), name, data); err != nil {
		return err
	}
	e.log.Info().Str("file", name).Int("rows", rows).Msg("exportación generada")

	if exportUpload {
		res, err := uc.Publish(ctx, prefix, data, rows)
		if err != nil {
			return err
		}
		e.log.Info().Str("location", res.Location).Msg("exportación publicada")
	}
	return nil
}

func toWindows1252(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := format.Windows1252Writer(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("convertir a latin1: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("convertir a latin1: %w", err)
	}
	return buf.Bytes(), nil
}

func writeOutput(stdout io.Writer, name string, data []byte) error {
	if name == "-" {
		_, err := stdout.Write(data)
		return err
	}
	return os.WriteFile(name, data, 0o644)
}
