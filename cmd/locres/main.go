// Command locres exercises the location resolver from the shell: resolve a
// free-text query through the full tier pipeline, look a place up in the
// static gazetteer, or find the airport nearest a coordinate.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tripwise/locres"
)

var configPath string

func main() {
	root := &cobra.Command{
		Use:           "locres",
		Short:         "Resolve free-text travel references to IATA codes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to TOML config file")
	root.AddCommand(resolveCmd(), lookupCmd(), nearestCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig() (locres.Config, error) {
	if configPath == "" {
		return locres.DefaultConfig(), nil
	}
	return locres.LoadConfig(configPath)
}

func resolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve QUERY",
		Short: "Run a query through the resolution pipeline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			r := locres.NewResolver(nil, locres.WithConfig(cfg))
			defer r.Close()

			res := r.Resolve(cmd.Context(), args[0])
			if res.Err != nil {
				return res.Err
			}
			printSide(cmd, "origin", res.Origin)
			printSide(cmd, "destination", res.Destination)
			cmd.Printf("source: %s\n", res.Source)
			if res.NeedsClarification != nil {
				cmd.Printf("needs clarification (%s): %s\n",
					res.NeedsClarification.Target, res.NeedsClarification.Message)
			}
			return nil
		},
	}
}

func printSide(cmd *cobra.Command, label string, c *locres.Candidate) {
	if c == nil {
		cmd.Printf("%-12s -\n", label+":")
		return
	}
	cmd.Printf("%-12s %s  %s, %s (%s, confidence %s)\n",
		label+":", c.Code, c.City, c.Country, c.Name, c.Confidence)
}

func lookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup NAME",
		Short: "Look a place name up in the static gazetteer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, ok := locres.DefaultGazetteer().Lookup(args[0])
			if !ok {
				return fmt.Errorf("no gazetteer entry matches %q", args[0])
			}
			cmd.Printf("%s  %s, %s (%s)\n", a.Code, a.City, a.Country, a.Name)
			return nil
		},
	}
}

func nearestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "nearest LAT LNG",
		Short: "Find the airport nearest a coordinate",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lat, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("bad latitude %q: %w", args[0], err)
			}
			lng, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("bad longitude %q: %w", args[1], err)
			}
			a, dist := locres.DefaultGazetteer().NearestAirport(lat, lng)
			cmd.Printf("%s  %s, %s (%s), %.0f km away\n", a.Code, a.City, a.Country, a.Name, dist)
			return nil
		},
	}
}
