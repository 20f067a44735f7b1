package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"edureuse/internal/models"
	"edureuse/internal/restapi"
)

func draftFlags(cmd *cobra.Command, draft *models.ListingDraft) {
	cmd.Flags().StringVar(&draft.Name, "name", "", "book title")
	cmd.Flags().StringVar(&draft.Author, "author", "", "book author")
	cmd.Flags().StringVar(&draft.Category, "category", "", "category")
	cmd.Flags().StringVar(&draft.Condition, "condition", "", "condition: new, good, fair or poor")
	cmd.Flags().StringVar(&draft.Price, "price", "", "asking price")
	cmd.Flags().StringVar(&draft.Description, "description", "", "free-text description")
	cmd.Flags().StringVar(&draft.Image, "image", "", "image URL")
}

func newSellCmd(a *app) *cobra.Command {
	var draft models.ListingDraft

	cmd := &cobra.Command{
		Use:   "sell",
		Short: "List a book for sale",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.login(cmd); err != nil {
				return err
			}
			listing, err := a.editor.Create(cmd.Context(), draft)
			if err != nil {
				return fmt.Errorf("create listing: %s", restapi.ErrorDetail(err))
			}
			fmt.Printf("Listed as #%d\n", listing.ID)
			printListingDetail(*listing)
			return nil
		},
	}

	draftFlags(cmd, &draft)
	return cmd
}

func newEditCmd(a *app) *cobra.Command {
	var draft models.ListingDraft

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Replace a listing you own",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.login(cmd); err != nil {
				return err
			}
			listing, err := a.editor.Update(cmd.Context(), id, draft)
			if err != nil {
				return fmt.Errorf("update listing: %s", restapi.ErrorDetail(err))
			}
			printListingDetail(*listing)
			return nil
		},
	}

	draftFlags(cmd, &draft)
	return cmd
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a listing you own",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.login(cmd); err != nil {
				return err
			}
			if err := a.editor.Delete(cmd.Context(), id); err != nil {
				return fmt.Errorf("delete listing: %s", restapi.ErrorDetail(err))
			}
			fmt.Printf("Deleted #%d\n", id)
			return nil
		},
	}
}
