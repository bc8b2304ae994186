// Command app runs the pattern demos. Each subcommand seeds the in-memory
// collaborators, exercises one pattern end-to-end and prints the result.
package main

import (
	"patternbook/cmd"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "patternbook",
	Short: "Executable design pattern demos over a shared order domain",
	Long: `patternbook demonstrates five patterns against one in-memory order domain:
  repository - CRUD behind a storage port
  resource   - projecting entities into output views
  factory    - construction hidden behind factories
  strategy   - interchangeable delivery quoting variants
  action     - one operation, three entry shapes`,
}

func main() {
	registerCommands()
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("command failed: %v", err)
	}
}

func registerCommands() {
	rootCmd.AddCommand(repositoryCmd())
	rootCmd.AddCommand(resourceCmd())
	rootCmd.AddCommand(factoryCmd())
	rootCmd.AddCommand(strategyCmd())
	rootCmd.AddCommand(actionCmd())
	rootCmd.AddCommand(allCmd())
}

func allCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Run every pattern demo in sequence",
		RunE: func(c *cobra.Command, _ []string) error {
			for _, sub := range []*cobra.Command{
				repositoryCmd(), resourceCmd(), factoryCmd(), strategyCmd(), actionCmd(),
			} {
				c.Printf("== %s ==\n", sub.Use)
				if err := sub.RunE(c, nil); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// newRoot builds a fresh object graph for a single demo run.
func newRoot() *cmd.CompositionRoot {
	return cmd.NewCompositionRoot(cmd.GetConfig())
}
