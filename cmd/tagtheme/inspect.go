package main

import (
	"fmt"
	"text/tabwriter"

	"tagtheme/internal/domain"

	"github.com/spf13/cobra"
)

func runTags(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	var tags []string
	switch args[0] {
	case "post":
		tags, err = a.tags.PostTags(cmd.Context())
	case "page":
		tags, err = a.tags.PageTags(cmd.Context())
	}
	if err != nil {
		return err
	}
	for _, tag := range tags {
		fmt.Fprintln(cmd.OutOrStdout(), tag)
	}
	return nil
}

func runPosts(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	page := domain.PaginationParams{Page: max(postsPage, 1), PageSize: a.cfg.PostsPerPage}
	posts, err := a.posts.ResolveVisiblePosts(cmd.Context(), domain.NewRegistry(), postsTag, page)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCREATED\tSLUG\tTITLE")
	for _, p := range posts {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", p.ID, p.Created.Format("2006-01-02"), p.Slug, p.Title)
	}
	return tw.Flush()
}
