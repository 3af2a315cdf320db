package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"github.com/vantagehq/vantage/pkg/db"
	"github.com/vantagehq/vantage/pkg/model"
	"github.com/vantagehq/vantage/pkg/server/store"
	gormstore "github.com/vantagehq/vantage/pkg/server/store/gorm"
)

// featureDefinition is one toggle in a feature definitions file.
type featureDefinition struct {
	Enabled     bool   `yaml:"enabled"`
	Description string `yaml:"description"`
}

// featuresLoadCmd represents the features load command
var featuresLoadCmd = &cobra.Command{
	Use:   "load <org> <file>",
	Short: "Load feature toggle definitions from a file",
	Long: `Load feature toggle definitions into an organization.

The file is a YAML map of toggle names to definitions:

  monte_carlo:
    enabled: true
    description: Monte Carlo schedule forecasts
  assist_chat:
    enabled: false

Example:
  vantagectl features load acme features.yml`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		orgSlug := args[0]
		filename := args[1]

		database, err := db.Connect(db.Config{})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to connect: %v\n", err)
			os.Exit(1)
		}

		count, err := loadFeaturesFile(database, orgSlug, filename)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load features: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Loaded %d feature toggle(s) for organization '%s'\n", count, orgSlug)
	},
}

func init() {
	featuresCmd.AddCommand(featuresLoadCmd)
}

func loadFeaturesFile(database *gorm.DB, orgSlug, filename string) (int, error) {
	orgs := gormstore.NewOrganizationsStore(database)
	org, err := orgs.GetOrganizationBySlug(orgSlug)
	if err != nil {
		return 0, err
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return 0, fmt.Errorf("failed to read definitions file: %w", err)
	}

	var definitions map[string]featureDefinition
	if err := yaml.Unmarshal(data, &definitions); err != nil {
		return 0, fmt.Errorf("failed to parse definitions file: %w", err)
	}

	// Apply in a stable order so repeated loads behave the same.
	names := make([]string, 0, len(definitions))
	for name := range definitions {
		names = append(names, name)
	}
	sort.Strings(names)

	var features store.FeaturesStore = gormstore.NewFeaturesStore(database)
	for _, name := range names {
		def := definitions[name]
		toggle := &model.FeatureToggle{
			OrgID:       org.ID,
			Name:        name,
			Enabled:     def.Enabled,
			Description: def.Description,
		}
		if err := features.SetToggle(toggle); err != nil {
			return 0, fmt.Errorf("failed to set toggle %q: %w", name, err)
		}
	}

	return len(names), nil
}
