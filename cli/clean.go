package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"
)

var CleanCommand = &cli.Command{
	Name:      "clean",
	Usage:     "Delete saved card renders from the output directory",
	ArgsUsage: "[template (optional)]",
	Flags:     []cli.Flag{configFlag},
	Action: func(c *cli.Context) error {
		config, err := loadConfig(c.String("config"))
		if err != nil {
			return err
		}
		target := config.OutputDir

		if c.Args().Len() > 0 {
			target = filepath.Join(config.OutputDir, filepath.Clean("/" + c.Args().Get(0)))
		}

		info, err := os.Stat(target)
		if err != nil {
			if os.IsNotExist(err) {
				fmt.Println("🧼 Nothing to clean:", target)
				return nil
			}
			return fmt.Errorf("failed to access path: %w", err)
		}

		if !info.IsDir() {
			return fmt.Errorf("not a directory: %s", target)
		}

		fmt.Println("🧹 Cleaning:", target)
		if err := os.RemoveAll(target); err != nil {
			return fmt.Errorf("failed to clean output: %w", err)
		}

		fmt.Println("✅ Done.")
		return nil
	},
}
