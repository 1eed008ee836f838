package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/eringen/mdxblog"
	"github.com/eringen/mdxblog/content"
	"github.com/eringen/mdxblog/markdown"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Validate and compile content into the SQLite artifact",
	Long: `The build command loads every post matching contentPattern under
contentDir, validates its front-matter, compiles the body and writes the
result together with the about page to artifactPath. Nothing is written when
any file is invalid.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := mdxblog.NewStore(siteCfg.ArtifactPath)
		if err != nil {
			return fmt.Errorf("open artifact: %w", err)
		}
		defer store.Close()

		res, err := mdxblog.Build(cmd.Context(), dirSource(), store)
		if err != nil {
			return reportInvalid(cmd.ErrOrStderr(), err)
		}
		log.Info("build complete",
			"posts", res.Posts,
			"published", res.Published,
			"pages", res.Pages,
			"artifact", siteCfg.ArtifactPath,
		)
		return nil
	},
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate content without writing the artifact",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		posts, pages, err := mdxblog.Compile(cmd.Context(), dirSource())
		if err != nil {
			return reportInvalid(cmd.ErrOrStderr(), err)
		}
		coll := content.NewCollection(posts)
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%d posts (%d published), %d pages\n", coll.Len(), len(coll.List(true)), len(pages))
		for _, tc := range coll.SortedTags() {
			fmt.Fprintf(out, "  %-20s %d\n", tc.Tag, tc.Count)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(checkCmd)
}

func dirSource() mdxblog.DirSource {
	return mdxblog.DirSource{
		Loader:    newLoader(),
		AboutFile: filepath.ToSlash(siteCfg.AboutFile),
	}
}

func newLoader() *content.Loader {
	return content.NewLoader(siteCfg.ContentDir, siteCfg.ContentPattern, markdown.New())
}

// reportInvalid lists every invalid content file and returns a short error.
func reportInvalid(w io.Writer, err error) error {
	var verrs content.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	for _, e := range verrs {
		fmt.Fprintf(w, "  %s\n", e)
	}
	return fmt.Errorf("%d invalid content files", len(verrs))
}
