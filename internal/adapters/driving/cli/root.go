// Package cli implements the supportctl command-line interface. Commands
// are thin: they resolve dependencies, call a driving port and print the
// result.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ludwa6/customer-support/internal/adapters/driven/config/file"
	"github.com/ludwa6/customer-support/internal/config"
	"github.com/ludwa6/customer-support/internal/core/ports/driven"
	"github.com/ludwa6/customer-support/internal/core/ports/driving"
	"github.com/ludwa6/customer-support/internal/core/services"
	"github.com/ludwa6/customer-support/internal/logger"
	"github.com/ludwa6/customer-support/internal/notion"
)

// version is set at build time via -ldflags.
var version = "dev"

// Config keys for settings remembered between runs.
const (
	keyNotionToken   = "notion.token"
	keyNotionPageURL = "notion.page_url"
)

// Injected dependencies. Tests set these directly; production wiring
// happens in initServices on first use.
var (
	setupService   driving.SetupService
	contentService driving.ContentService
	configStore    driven.ConfigStore
	mappingStore   driven.MappingStore
)

var (
	verboseFlag   bool
	configDirFlag string
)

var rootCmd = &cobra.Command{
	Use:   "supportctl",
	Short: "Manage the workspace-backed support portal",
	Long: `supportctl maps the databases on a workspace page to the support
portal's content types (categories, articles, FAQs, support tickets),
validates their schemas and reads or writes portal content through them.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verboseFlag)
		return initServices()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false,
		"print discovery and validation details")
	rootCmd.PersistentFlags().StringVar(&configDirFlag, "config-dir", "",
		"state directory (default ~/.supportctl, env SUPPORT_CONFIG_DIR)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// initServices wires the production dependencies. It is a no-op when
// services are already injected (tests) and leaves workspace-backed
// services nil when no API token is available; commands report that
// themselves.
func initServices() error {
	if setupService != nil || contentService != nil {
		return nil
	}

	envCfg, err := config.Load()
	if err != nil {
		return err
	}

	configDir := configDirFlag
	if configDir == "" {
		configDir = envCfg.ConfigDir
	}

	if configStore == nil {
		store, err := file.NewConfigStore(configDir)
		if err != nil {
			return err
		}
		configStore = store
	}
	if mappingStore == nil {
		store, err := file.NewMappingStore(configDir)
		if err != nil {
			return err
		}
		mappingStore = store
	}

	token := resolveToken(envCfg)
	if token == "" {
		// Leave services nil; commands that need the workspace say so.
		return nil
	}

	client, err := notion.NewClient(context.Background(), notion.Config{Token: token})
	if err != nil {
		return err
	}

	setupService = services.NewSetupService(client, mappingStore)
	contentService = services.NewContentService(client, mappingStore)
	return nil
}

// resolveToken picks the API token: command flag, then environment, then
// the config file.
func resolveToken(envCfg *config.Config) string {
	if tokenFlag != "" {
		return tokenFlag
	}
	if envCfg.Token != "" {
		return envCfg.Token
	}
	if configStore != nil {
		return configStore.GetString(keyNotionToken)
	}
	return ""
}

// resolvePageURL picks the workspace page URL: command flag, then
// environment, then the config file.
func resolvePageURL(envCfg *config.Config) string {
	if pageURLFlag != "" {
		return pageURLFlag
	}
	if envCfg.PageURL != "" {
		return envCfg.PageURL
	}
	if configStore != nil {
		return configStore.GetString(keyNotionPageURL)
	}
	return ""
}
