package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/gestion-pro/internal/application/dto"
	"github.com/jhoicas/gestion-pro/internal/application/usecase"
	"github.com/jhoicas/gestion-pro/internal/domain/entity"
	"github.com/jhoicas/gestion-pro/pkg/format"
)

// systemUserID autor de las acciones hechas desde la terminal en la bitácora.
const systemUserID = "sys"

var (
	productsFilter dto.InventoryFilter
	resetYes       bool
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Consultar el catálogo",
}

// gproctl products list
var productsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Listar productos con stock y valor",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		e, err := boot(ctx)
		if err != nil {
			return err
		}
		defer e.close()

		uc := usecase.NewProductUseCase(e.store, e.repo, nil, time.Now)
		out, err := uc.List(ctx, productsFilter)
		if err != nil {
			return err
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "CÓDIGO\tNOMBRE\tCATEGORÍA\tSTOCK\tPRECIO\tVALOR\t")
		for _, p := range out.Items {
			flag := ""
			if p.LowStock {
				flag = " (bajo)"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%d%s\t%s\t%s\t\n",
				p.Code, p.Name, p.Category, p.Stock, flag, format.Currency(p.Price), format.Currency(p.StockValue))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d productos\n", out.Total)
		return nil
	},
}

// gproctl reset --yes
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Borrar productos, ventas y bitácora y volver al catálogo inicial",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetYes {
			return fmt.Errorf("operación destructiva: repite con --yes")
		}
		ctx := cmd.Context()
		e, err := boot(ctx)
		if err != nil {
			return err
		}
		defer e.close()

		activity := usecase.NewActivityUseCase(e.store, e.repo, time.Now, e.log)
		uc := usecase.NewSettingsUseCase(e.store, e.repo, activity, time.Now)
		if err := uc.ClearAllData(ctx, systemUserID, entity.RoleAdmin, true); err != nil {
			return err
		}
		e.log.Info().Msg("datos borrados, catálogo inicial restaurado")
		return nil
	},
}

func init() {
	productsListCmd.Flags().StringVar(&productsFilter.Search, "search", "", "texto en nombre o código")
	productsListCmd.Flags().StringVar(&productsFilter.Category, "category", "", "categoría (All = todas)")
	productsListCmd.Flags().StringVar(&productsFilter.Stock, "stock", dto.StockFilterAll, "all | low")
	productsCmd.AddCommand(productsListCmd)

	resetCmd.Flags().BoolVar(&resetYes, "yes", false, "confirmar el borrado")
}
