package cmd

import (
	"fmt"

	"github.com/jrsteele09/go-shop-client/cart"
	"github.com/spf13/cobra"
)

var addQuantity int

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Manage your shopping cart",
}

var cartShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the cart contents",
	RunE: func(cmd *cobra.Command, args []string) error {
		current, err := shop.Cart.Get(cmd.Context())
		if err != nil {
			return err
		}
		if len(current.Items) == 0 {
			fmt.Println("Cart is empty")
			return nil
		}
		for _, item := range current.Items {
			fmt.Printf("%-30s x%-3d %8.2f\n", item.Product.Name, item.Quantity, item.PriceAtAddition)
		}
		fmt.Printf("Subtotal: %.2f  Tax: %.2f  Shipping: %.2f  Total: %.2f\n",
			current.Subtotal, current.Tax, current.ShippingCost, current.Total)
		return nil
	},
}

var cartAddCmd = &cobra.Command{
	Use:   "add <product-id>",
	Short: "Add a product to the cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		updated, err := shop.Cart.AddItem(cmd.Context(), cart.AddItemData{
			ProductID: args[0],
			Quantity:  addQuantity,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Cart now holds %d items\n", updated.ItemCount())
		return nil
	},
}

var cartRemoveCmd = &cobra.Command{
	Use:   "remove <item-id>",
	Short: "Remove an item from the cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := shop.Cart.RemoveItem(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println("Item removed")
		return nil
	},
}

var cartClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the cart",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := shop.Cart.Clear(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("Cart cleared")
		return nil
	},
}

func init() {
	cartAddCmd.Flags().IntVarP(&addQuantity, "quantity", "q", 1, "quantity to add")

	cartCmd.AddCommand(cartShowCmd, cartAddCmd, cartRemoveCmd, cartClearCmd)
	rootCmd.AddCommand(cartCmd)
}
