package cli

import (
	"github.com/urfave/cli/v2"

	"github.com/vaan/ogimage"
	"github.com/vaan/ogimage/core"
)

var startServer = ogimage.Start

var loadConfig = core.LoadConfig

var configFlag = &cli.StringFlag{
	Name:    "config",
	Aliases: []string{"c"},
	Usage:   "path to the YAML config file",
	Value:   core.DefaultConfigPath,
}

var portFlag = &cli.IntFlag{
	Name:    "port",
	Aliases: []string{"p"},
	Usage:   "listen port (overrides config)",
}

var DevCommand = &cli.Command{
	Name:  "dev",
	Usage: "Start ogimage in dev mode (debug logs, preview page, live reload)",
	Flags: []cli.Flag{configFlag, portFlag},
	Action: func(c *cli.Context) error {
		return startServer(ogimage.RuntimeConfig{
			Env:        "dev",
			ConfigPath: c.String("config"),
			Port:       c.Int("port"),
		})
	},
}

var ProdCommand = &cli.Command{
	Name:  "prod",
	Usage: "Start ogimage in production mode",
	Flags: []cli.Flag{configFlag, portFlag},
	Action: func(c *cli.Context) error {
		return startServer(ogimage.RuntimeConfig{
			Env:        "prod",
			ConfigPath: c.String("config"),
			Port:       c.Int("port"),
		})
	},
}
