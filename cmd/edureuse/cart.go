package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"edureuse/internal/app/cart"
	"edureuse/internal/restapi"
)

func newCartCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Manage your cart",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List cart items with the running total",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.login(cmd); err != nil {
				return err
			}
			if err := a.cart.Refresh(cmd.Context()); err != nil {
				return err
			}
			items := a.cart.Items()
			if len(items) == 0 {
				fmt.Println("Your cart is empty.")
				return nil
			}
			for _, item := range items {
				fmt.Printf("#%d  %s by %s  x%d", item.ID, item.Book.Name, item.Book.Author, item.Quantity)
				if item.Book.Price.Valid {
					fmt.Printf("  ₹%.2f", item.Book.Price.Amount*float64(item.Quantity))
				}
				fmt.Println()
			}
			fmt.Printf("total: ₹%.2f\n", a.cart.Total())
			return nil
		},
	}

	var quantity int
	add := &cobra.Command{
		Use:   "add <book-id>",
		Short: "Add a book to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.login(cmd); err != nil {
				return err
			}
			if err := a.cart.Add(cmd.Context(), id, quantity); err != nil {
				return fmt.Errorf("add to cart: %s", restapi.ErrorDetail(err))
			}
			fmt.Printf("Added to cart (%d items)\n", a.cart.Count())
			return nil
		},
	}
	add.Flags().IntVarP(&quantity, "quantity", "q", 1, "quantity to add")

	remove := &cobra.Command{
		Use:   "remove <item-id>",
		Short: "Remove a cart item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.login(cmd); err != nil {
				return err
			}
			if err := a.cart.Remove(cmd.Context(), id); err != nil {
				return fmt.Errorf("remove from cart: %s", restapi.ErrorDetail(err))
			}
			fmt.Println("Removed.")
			return nil
		},
	}

	cmd.AddCommand(list, add, remove)
	return cmd
}

func newBuyCmd(a *app) *cobra.Command {
	var quantity int

	cmd := &cobra.Command{
		Use:   "buy <book-id>",
		Short: "Place a one-shot order for a book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.login(cmd); err != nil {
				return err
			}
			recipients, err := a.cart.BuyNow(cmd.Context(), id, quantity)
			if err != nil {
				return fmt.Errorf("place order: %s", restapi.ErrorDetail(err))
			}
			fmt.Printf("Order sent to: %s. The seller will contact you.\n", cart.RecipientsLabel(recipients))
			return nil
		},
	}

	cmd.Flags().IntVarP(&quantity, "quantity", "q", 1, "quantity to order")
	return cmd
}
