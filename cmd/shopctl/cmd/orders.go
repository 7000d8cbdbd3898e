package cmd

import (
	"fmt"

	"github.com/jrsteele09/go-shop-client/orders"
	"github.com/spf13/cobra"
)

var (
	orderStatus string
	orderPage   int
	orderLimit  int

	checkoutAddress    string
	checkoutCity       string
	checkoutCountry    string
	checkoutPostalCode string
	checkoutPayment    string
)

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "List and inspect orders",
}

var ordersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your orders",
	RunE: func(cmd *cobra.Command, args []string) error {
		list, pagination, err := shop.Orders.List(cmd.Context(), orders.Filters{
			Status: orders.Status(orderStatus),
			Page:   orderPage,
			Limit:  orderLimit,
		})
		if err != nil {
			return err
		}
		for _, o := range list {
			fmt.Printf("%-38s %-11s %8.2f  %s\n", o.ID, o.Status, o.TotalAmount, o.CreatedAt)
		}
		if pagination != nil {
			fmt.Printf("page %d/%d (%d orders)\n", pagination.Page, pagination.TotalPages, pagination.Total)
		}
		return nil
	},
}

var ordersGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a single order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		order, err := shop.Orders.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Order %s (%s)\n", order.ID, order.Status)
		for _, item := range order.Items {
			fmt.Printf("  %-30s x%-3d %8.2f\n", item.ProductName, item.Quantity, item.UnitPrice)
		}
		fmt.Printf("Total: %.2f\nShip to: %s, %s, %s %s\n",
			order.TotalAmount, order.ShippingAddress, order.ShippingCity, order.ShippingCountry, order.ShippingPostalCode)
		return nil
	},
}

var ordersCancelCmd = &cobra.Command{
	Use:   "cancel <id>",
	Short: "Cancel an order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		order, err := shop.Orders.Cancel(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Order %s is now %s\n", order.ID, order.Status)
		return nil
	},
}

var checkoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Place an order from the active cart",
	RunE: func(cmd *cobra.Command, args []string) error {
		order, err := shop.Orders.Create(cmd.Context(), orders.CreateOrderData{
			ShippingAddress:    checkoutAddress,
			ShippingCity:       checkoutCity,
			ShippingCountry:    checkoutCountry,
			ShippingPostalCode: checkoutPostalCode,
			PaymentMethod:      checkoutPayment,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Order %s placed, total %.2f\n", order.ID, order.TotalAmount)
		return nil
	},
}

func init() {
	ordersListCmd.Flags().StringVar(&orderStatus, "status", "", "filter by status")
	ordersListCmd.Flags().IntVar(&orderPage, "page", 0, "page number")
	ordersListCmd.Flags().IntVar(&orderLimit, "limit", 0, "page size")

	checkoutCmd.Flags().StringVar(&checkoutAddress, "address", "", "shipping address")
	checkoutCmd.Flags().StringVar(&checkoutCity, "city", "", "shipping city")
	checkoutCmd.Flags().StringVar(&checkoutCountry, "country", "", "shipping country")
	checkoutCmd.Flags().StringVar(&checkoutPostalCode, "postal-code", "", "shipping postal code")
	checkoutCmd.Flags().StringVar(&checkoutPayment, "payment-method", "card", "payment method")
	_ = checkoutCmd.MarkFlagRequired("address")
	_ = checkoutCmd.MarkFlagRequired("city")
	_ = checkoutCmd.MarkFlagRequired("country")
	_ = checkoutCmd.MarkFlagRequired("postal-code")

	ordersCmd.AddCommand(ordersListCmd, ordersGetCmd, ordersCancelCmd)
	rootCmd.AddCommand(ordersCmd, checkoutCmd)
}
