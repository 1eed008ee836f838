package main

import (
	"fmt"
	"path"
	"time"

	"github.com/spf13/cobra"

	"github.com/eringen/mdxblog/scaffold"
)

var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Create a new mdxblog site",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// The directory is the last path segment, so "github.com/me/blog" works too.
		dirName := path.Base(args[0])
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "Creating new mdxblog site: %s\n\n", dirName)
		created, err := scaffold.Generate(dirName, scaffold.NewData(dirName, time.Now()))
		if err != nil {
			return err
		}
		for _, f := range created {
			fmt.Fprintf(out, "  created %s/%s\n", dirName, f)
		}

		fmt.Fprintln(out)
		fmt.Fprintln(out, "Done! Next steps:")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "  cd %s\n", dirName)
		fmt.Fprintln(out, "  mdxblog serve --dev")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Run 'mdxblog build' before deploying, then 'mdxblog serve'.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
}
