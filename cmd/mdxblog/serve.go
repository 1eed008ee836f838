package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/eringen/mdxblog"
	"github.com/eringen/mdxblog/views"
)

var devMode bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the blog",
	Long: `The serve command serves the blog from the compiled artifact. With --dev
it reads the content directory directly and reloads whenever a post or the
about page changes.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		v, err := views.New(siteCfg)
		if err != nil {
			return err
		}

		var lib *mdxblog.Library
		if devMode {
			lib, err = devLibrary(ctx)
		} else {
			lib, err = artifactLibrary(ctx)
		}
		if err != nil {
			return err
		}

		app := mdxblog.New(siteCfg, lib, v.Funcs(), mdxblog.WithLogger(log))
		return app.Start(ctx)
	},
}

func init() {
	serveCmd.Flags().BoolVar(&devMode, "dev", false, "serve from the content directory and reload on change")
	rootCmd.AddCommand(serveCmd)
}

func artifactLibrary(ctx context.Context) (*mdxblog.Library, error) {
	if _, err := os.Stat(siteCfg.ArtifactPath); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("no content artifact at %s; run `mdxblog build` first", siteCfg.ArtifactPath)
	}
	store, err := mdxblog.NewStore(siteCfg.ArtifactPath)
	if err != nil {
		return nil, fmt.Errorf("open artifact: %w", err)
	}
	go func() {
		<-ctx.Done()
		store.Close()
	}()

	lib := mdxblog.NewLibrary(store)
	if err := lib.Reload(ctx); err != nil {
		return nil, err
	}
	built, err := store.BuiltAt(ctx)
	if err != nil {
		return nil, err
	}
	log.Info("content loaded", "posts", lib.Collection().Len(), "builtAt", built)
	return lib, nil
}

func devLibrary(ctx context.Context) (*mdxblog.Library, error) {
	src := dirSource()
	lib := mdxblog.NewLibrary(src)
	reload := func(ctx context.Context) {
		if err := lib.Reload(ctx); err != nil {
			log.Error("reload failed", "error", err)
			return
		}
		log.Info("content reloaded", "posts", lib.Collection().Len())
	}
	reload(ctx)

	match := func(rel string) bool {
		return src.Loader.Match(rel) || rel == src.AboutFile
	}
	w, err := mdxblog.NewWatcher(siteCfg.ContentDir, match, siteCfg.WatchDebounce, log)
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", siteCfg.ContentDir, err)
	}
	go func() {
		if err := w.Run(ctx, reload); err != nil && !errors.Is(err, context.Canceled) {
			log.Error("watcher stopped", "error", err)
		}
	}()
	log.Info("watching content", "dir", siteCfg.ContentDir)
	return lib, nil
}
