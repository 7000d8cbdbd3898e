package cmd

import (
	"fmt"

	"github.com/jrsteele09/go-shop-client/catalog"
	"github.com/jrsteele09/go-shop-client/internal/utils"
	"github.com/spf13/cobra"
)

var (
	productSearch   string
	productCategory string
	productMinPrice float64
	productMaxPrice float64
	productInStock  bool
	productPage     int
	productLimit    int
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Browse the product catalog",
}

var productsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List products",
	RunE: func(cmd *cobra.Command, args []string) error {
		filters := catalog.ProductFilters{
			Search:     productSearch,
			CategoryID: productCategory,
			Page:       productPage,
			Limit:      productLimit,
		}
		if cmd.Flags().Changed("min-price") {
			filters.MinPrice = utils.Ptr(productMinPrice)
		}
		if cmd.Flags().Changed("max-price") {
			filters.MaxPrice = utils.Ptr(productMaxPrice)
		}
		if cmd.Flags().Changed("in-stock") {
			filters.InStock = utils.Ptr(productInStock)
		}

		list, err := shop.Catalog.Products(cmd.Context(), filters)
		if err != nil {
			return err
		}
		for _, p := range list.Products {
			fmt.Printf("%-38s %-30s %8.2f  stock=%d\n", p.ID, p.Name, p.Price, p.StockQuantity)
		}
		if list.Pagination != nil {
			fmt.Printf("page %d/%d (%d products)\n", list.Pagination.Page, list.Pagination.TotalPages, list.Pagination.Total)
		}
		return nil
	},
}

var productsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a single product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		product, err := shop.Catalog.Product(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s\n%s\nSKU: %s\nPrice: %.2f\nStock: %d\n", product.Name, product.Description, product.SKU, product.Price, product.StockQuantity)
		return nil
	},
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List product categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		categories, err := shop.Catalog.Categories(cmd.Context())
		if err != nil {
			return err
		}
		for _, c := range categories {
			fmt.Printf("%-38s %s\n", c.ID, c.Name)
		}
		return nil
	},
}

func init() {
	productsListCmd.Flags().StringVar(&productSearch, "search", "", "search term")
	productsListCmd.Flags().StringVar(&productCategory, "category", "", "category id")
	productsListCmd.Flags().Float64Var(&productMinPrice, "min-price", 0, "minimum price")
	productsListCmd.Flags().Float64Var(&productMaxPrice, "max-price", 0, "maximum price")
	productsListCmd.Flags().BoolVar(&productInStock, "in-stock", false, "only products in stock")
	productsListCmd.Flags().IntVar(&productPage, "page", 0, "page number")
	productsListCmd.Flags().IntVar(&productLimit, "limit", 0, "page size")

	productsCmd.AddCommand(productsListCmd, productsGetCmd)
	rootCmd.AddCommand(productsCmd, categoriesCmd)
}
