package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/vantagehq/vantage/pkg/db"
)

// featuresWatchCmd represents the features watch command
var featuresWatchCmd = &cobra.Command{
	Use:   "watch <org> <file>",
	Short: "Watch a definitions file and reload toggles when it changes",
	Long: `Watch a feature definitions file and reload it on every change.

The file has the same YAML format as 'features load'. Each write reapplies
the full set of definitions for the organization.

Example:
  vantagectl features watch acme /run/vantage/features.yml`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		orgSlug := args[0]
		filename := args[1]

		if err := watchFeatures(orgSlug, filename); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to watch features: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	featuresCmd.AddCommand(featuresWatchCmd)
}

func watchFeatures(orgSlug, filename string) error {
	database, err := db.Connect(db.Config{})
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(filename); err != nil {
		return fmt.Errorf("failed to watch file %s: %w", filename, err)
	}

	fmt.Printf("Watching %s for feature changes (organization: %s)\n", filename, orgSlug)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				fmt.Printf("[%s] File modified, reloading toggles...\n", time.Now().Format(time.RFC3339))

				count, err := loadFeaturesFile(database, orgSlug, filename)
				if err != nil {
					fmt.Fprintf(os.Stderr, "Error loading features: %v\n", err)
					continue
				}
				fmt.Printf("Loaded %d feature toggle(s)\n", count)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "Watcher error: %v\n", err)
		case <-sigChan:
			fmt.Println("\nShutting down...")
			return nil
		}
	}
}
