// Package clean provides the "clean" subcommand: remove generated
// instruction files and image dumps from a directory.
package clean

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/eng618/nonosolve/pkg/common"
)

var (
	dir     string
	pattern string
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove generated instruction/image files",
	Long: `Remove files matching --pattern under --dir.

This is a destructive operation. Use with caution.`,
	RunE: run,
}

func init() {
	cleanCmd.Flags().StringVar(&dir, "dir", ".", "directory to clean")
	cleanCmd.Flags().StringVar(&pattern, "pattern", "*.txt", "glob pattern of files to remove")
}

// GetCommand returns the clean command for registration with root.
func GetCommand() *cobra.Command {
	return cleanCmd
}

func run(cmd *cobra.Command, args []string) error {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return fmt.Errorf("clean: %w", err)
	}
	common.Info("removing %d file(s) matching %s in %s", len(matches), pattern, dir)
	for _, path := range matches {
		common.Verbose("removing %s", path)
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("clean: removing %s: %w", path, err)
		}
	}
	common.Info("clean complete")
	return nil
}
