package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"edureuse/internal/app/favorites"
	"edureuse/internal/restapi"
)

func newFavCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fav",
		Short: "Manage favorites",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List your favorite books",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.login(cmd); err != nil {
				return err
			}
			if err := a.favorites.Resync(cmd.Context()); err != nil {
				return err
			}
			favs := a.favorites.Favorites()
			if len(favs) == 0 {
				fmt.Println("No favorites yet.")
				return nil
			}
			for _, fav := range favs {
				printListingLine(fav.Book)
			}
			return nil
		},
	}

	toggle := &cobra.Command{
		Use:   "toggle <book-id>",
		Short: "Favorite a book, or unfavorite it if already favorited",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.login(cmd); err != nil {
				return err
			}
			if err := a.favorites.Resync(cmd.Context()); err != nil {
				return err
			}

			nowFavorite, err := a.favorites.Toggle(cmd.Context(), id)
			if err != nil {
				if errors.Is(err, favorites.ErrTogglePending) {
					return nil
				}
				return fmt.Errorf("toggle favorite: %s", restapi.ErrorDetail(err))
			}
			if nowFavorite {
				fmt.Printf("Added #%d to favorites\n", id)
			} else {
				fmt.Printf("Removed #%d from favorites\n", id)
			}
			return nil
		},
	}

	cmd.AddCommand(list, toggle)
	return cmd
}
