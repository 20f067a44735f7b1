package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"edureuse/internal/models"
)

func newBrowseCmd(a *app) *cobra.Command {
	var (
		search   string
		category string
		page     int
	)

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse listings with search, category filter and paging",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if search != "" {
				if err := a.catalog.SetSearch(ctx, search); err != nil {
					a.log.Error().Err(err).Msg("fetch listings")
					return err
				}
			}
			if category != "" {
				if err := a.catalog.SetCategory(ctx, category); err != nil {
					a.log.Error().Err(err).Msg("fetch listings")
					return err
				}
			}
			var err error
			if page > 1 {
				err = a.catalog.SetPage(ctx, page)
			} else {
				err = a.catalog.Refresh(ctx)
			}
			if err != nil {
				a.log.Error().Err(err).Msg("fetch listings")
				return err
			}

			listings := a.catalog.Listings()
			if len(listings) == 0 {
				fmt.Println("No books found.")
				return nil
			}
			for _, listing := range listings {
				printListingLine(listing)
			}

			p := a.catalog.Pagination()
			footer := fmt.Sprintf("page %d", p.Page)
			if p.TotalKnown {
				footer = fmt.Sprintf("page %d of %d", p.Page, p.TotalPages)
			}
			if p.HasPrev {
				footer = "< " + footer
			}
			if p.HasNext {
				footer += " >"
			}
			fmt.Println(footer)
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "search by title, author or category")
	cmd.Flags().StringVarP(&category, "category", "c", "", "filter by category")
	cmd.Flags().IntVarP(&page, "page", "p", 1, "page number")
	return cmd
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one listing in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			listing, err := a.client.GetBook(cmd.Context(), id)
			if err != nil {
				return err
			}
			printListingDetail(*listing)
			return nil
		},
	}
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}

func printListingLine(listing models.Listing) {
	fmt.Printf("#%d  %s by %s", listing.ID, listing.Name, listing.Author)
	if listing.Price.Valid {
		fmt.Printf("  ₹%s", listing.Price)
	}
	if listing.Category != "" {
		fmt.Printf("  [%s]", listing.Category)
	}
	fmt.Println()
}

func printListingDetail(listing models.Listing) {
	printListingLine(listing)
	if listing.Condition != "" {
		fmt.Printf("condition: %s\n", listing.Condition)
	}
	if listing.Description != "" {
		fmt.Println(listing.Description)
	}
	if listing.Owner != nil {
		fmt.Printf("seller: %s", listing.Owner.Username)
		if listing.Owner.Email != "" {
			fmt.Printf(" <%s>", listing.Owner.Email)
		}
		fmt.Println()
	}
}
