package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/spaceviz/spaceviz/pkg/config"
	"github.com/spaceviz/spaceviz/pkg/dashboard"
	"github.com/spaceviz/spaceviz/pkg/dataset"
)

type rootOptions struct {
	configPath string
	dataFile   string
	dataURL    string
	output     string
}

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "spaceviz",
		Short:         "Explore the history of orbital launches",
		Long:          "Aggregate the space missions dataset by year, organization and launch site, and serve the results over HTTP or MCP.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Path to a YAML config file")
	flags.StringVar(&opts.dataFile, "data-file", "", "Path to the mission CSV")
	flags.StringVar(&opts.dataURL, "data-url", "", "URL of the mission CSV")
	flags.StringVarP(&opts.output, "output", "o", "text", "Output format: text, json, yaml")

	klogFlags := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(klogFlags)
	flags.AddGoFlagSet(klogFlags)

	cmd.AddCommand(
		newOverviewCommand(opts),
		newYearlyCommand(opts),
		newOrganizationsCommand(opts),
		newLocationsCommand(opts),
		newRaceCommand(opts),
		newTimelineCommand(opts),
		newServeCommand(opts),
	)
	return cmd
}

// loadConfig layers the command-line flags over config.Load.
func (o *rootOptions) loadConfig() (config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return config.Config{}, err
	}
	switch {
	case o.dataFile != "":
		cfg.Data.File = o.dataFile
	case o.dataURL != "":
		cfg.Data.File = ""
		cfg.Data.URL = o.dataURL
	}
	if cfg.Data.File == "" && cfg.Data.URL == "" {
		return config.Config{}, fmt.Errorf("no dataset configured: use --data-file, --data-url or SPACEVIZ_DATA_FILE")
	}
	return cfg, nil
}

func storeOptions(cfg config.Config) dashboard.Options {
	return dashboard.Options{
		Roster:           cfg.Roster,
		StartYear:        cfg.Timeline.StartYear,
		EndYear:          cfg.Timeline.EndYear,
		TopOrganizations: cfg.Timeline.TopOrganizations,
		TopLocations:     cfg.TopLocations,
	}
}

// openStore loads the dataset synchronously for a one-shot command.
func (o *rootOptions) openStore(ctx context.Context) (*dashboard.Store, error) {
	if err := checkFormat(o.output); err != nil {
		return nil, err
	}
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}
	store := dashboard.NewStore(storeOptions(cfg))
	store.Set(dataset.Load(ctx, cfg.Source()))
	return store, nil
}
