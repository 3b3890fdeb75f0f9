package main

import (
	"github.com/spf13/cobra"
)

var (
	postsTag  string
	postsPage int

	rootCmd = &cobra.Command{
		Use:           "tagtheme",
		Short:         "Tag-aware blog theme server",
		Long:          `tagtheme serves a tag-filtered post list and a read-only tag API over a blog database.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE:  runServe, // Defined in serve.go
	}

	tagsCmd = &cobra.Command{
		Use:       "tags [post|page]",
		Short:     "Print the unique tags of published posts or pages",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"post", "page"},
		RunE:      runTags, // Defined in inspect.go
	}

	postsCmd = &cobra.Command{
		Use:   "posts",
		Short: "Print the posts a themed list would show",
		Args:  cobra.NoArgs,
		RunE:  runPosts, // Defined in inspect.go
	}
)

func init() {
	postsCmd.Flags().StringVar(&postsTag, "tag", "", "only posts carrying this tag")
	postsCmd.Flags().IntVar(&postsPage, "page", 1, "page of the untagged list")

	rootCmd.AddCommand(serveCmd, tagsCmd, postsCmd)
}
