package commands

import (
	"context"
	"fmt"
	"os"

	scraper "louvre-backend/lib/scrapers/louvre"
	"louvre-backend/services/louvre"

	"github.com/spf13/cobra"
)

var baseUrl string

func newService() (louvre.Service, error) {
	client, err := scraper.NewClient(scraper.ClientOptions{BaseUrl: baseUrl})
	if err != nil {
		return louvre.Service{}, err
	}
	return louvre.NewService(client, louvre.RenderPlain), nil
}

var rootCmd = &cobra.Command{
	Use:   "louvre-cli",
	Short: "Query the Louvre collections site from the terminal.",
}

var detailCmd = &cobra.Command{
	Use:   "detail <id>",
	Short: "Look up the full record of an artwork by identifier.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		service, err := newService()
		if err != nil {
			return err
		}
		text, err := service.GetArtworkDetail(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Println(text)
		return nil
	},
}

var imageType string
var imagePosition int

var imagesCmd = &cobra.Command{
	Use:   "images <id>",
	Short: "List an artwork's images, optionally by type or position.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		service, err := newService()
		if err != nil {
			return err
		}
		var position *int
		if cmd.Flags().Changed("position") {
			position = &imagePosition
		}
		text, err := service.GetArtworkImages(cmd.Context(), args[0], imageType, position)
		if err != nil {
			return err
		}
		fmt.Println(text)
		return nil
	},
}

var searchPage int

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the collections site.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		service, err := newService()
		if err != nil {
			return err
		}
		text, err := service.SearchArtwork(cmd.Context(), args[0], searchPage)
		if err != nil {
			return err
		}
		fmt.Println(text)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&baseUrl, "base-url", "",
		"Override the collections base url (defaults to the live site).",
	)
	imagesCmd.Flags().StringVar(&imageType, "type", "", `Image type: "thumbnail", "full" or "all".`)
	imagesCmd.Flags().IntVar(&imagePosition, "position", 0, "Select the single image at this position.")
	searchCmd.Flags().IntVar(&searchPage, "page", 1, "Result page, 20 results each.")

	rootCmd.AddCommand(detailCmd, imagesCmd, searchCmd)
}

func ExecuteContext(ctx context.Context) {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		os.Exit(1)
	}
}
