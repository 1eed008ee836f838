package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eringen/mdxblog"
	"github.com/eringen/mdxblog/logger"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	cfgFile string
	siteCfg mdxblog.SiteConfig
	log     = logger.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "mdxblog",
	Short: "mdxblog - a Markdown blog compiled to SQLite and served with Echo",
	Long: `mdxblog validates and compiles the Markdown/MDX posts under your content
directory into a single SQLite artifact, then serves the blog from it.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initializeConfig(); err != nil {
			return err
		}
		l, err := logger.New(siteCfg.LogMode)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		log = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		log.Sync()
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the mdxblog version",
	Args:  cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "mdxblog %s\n", version)
	},
}

func initializeConfig() error {
	v := viper.New()

	var defaults mdxblog.SiteConfig
	defaults.SetDefaults()
	v.SetDefault("name", defaults.Name)
	v.SetDefault("url", defaults.URL)
	v.SetDefault("description", "")
	v.SetDefault("author", "")
	v.SetDefault("addr", defaults.Addr)
	v.SetDefault("staticDir", defaults.StaticDir)
	v.SetDefault("contentDir", defaults.ContentDir)
	v.SetDefault("contentPattern", defaults.ContentPattern)
	v.SetDefault("aboutFile", defaults.AboutFile)
	v.SetDefault("artifactPath", defaults.ArtifactPath)
	v.SetDefault("pageSize", defaults.PageSize)
	v.SetDefault("latestCount", defaults.LatestCount)
	v.SetDefault("logMode", defaults.LogMode)
	v.SetDefault("watchDebounce", defaults.WatchDebounce)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("MDXBLOG")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || cfgFile != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := v.Unmarshal(&siteCfg); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}
	siteCfg.SetDefaults()
	return nil
}
