package cli

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/vaan/ogimage/core"
)

var InitCommand = &cli.Command{
	Name:  "init",
	Usage: "Write a default ogimage.config.yml",
	Flags: []cli.Flag{configFlag},
	Action: func(c *cli.Context) error {
		path := c.String("config")

		if _, err := os.Stat(path); err == nil {
			fmt.Println("🧼 Config already exists:", path)
			return nil
		}

		data, err := yaml.Marshal(core.DefaultConfig())
		if err != nil {
			return fmt.Errorf("failed to encode default config: %w", err)
		}

		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}

		fmt.Println("✅ Wrote", path)
		fmt.Println("▶  Run: ogimage dev")
		return nil
	},
}
