package cli

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/vaan/ogimage/core"
)

var InfoCommand = &cli.Command{
	Name:  "info",
	Usage: "Print the effective configuration and card routes",
	Flags: []cli.Flag{configFlag},
	Action: func(c *cli.Context) error {
		config, err := loadConfig(c.String("config"))
		if err != nil {
			return err
		}

		fmt.Println("🔌 Port:", config.Port)
		fmt.Println("🌐 Base URL:", config.BaseURL)
		fmt.Println("📁 Output Directory:", config.OutputDir)
		fmt.Println("🗜️  Minify:", config.Minify)
		fmt.Println("🗜️  Gzip:", config.Gzip)
		fmt.Println("📈 Metrics:", config.Metrics)
		fmt.Println("🔁 Debug Headers Enabled:", config.DebugHeaders)
		fmt.Println("🔁 Debug Logs Enabled:", config.DebugLogs)
		fmt.Println()

		router := core.NewRouter(config, core.RuntimeContext{Env: "cli"})
		fmt.Println("🗂️  Routes Found:", len(router.Routes()))
		for _, route := range router.Routes() {
			fmt.Printf("   %s*\n", route.Prefix)
		}

		return nil
	},
}
