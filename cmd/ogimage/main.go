package main

import (
	"log"
	"os"

	clilib "github.com/urfave/cli/v2"

	ogcli "github.com/vaan/ogimage/cli"
)

func runApp(args []string) error {
	app := &clilib.App{
		Name:  "ogimage",
		Usage: "Render social preview cards as SVG",
		Commands: []*clilib.Command{
			ogcli.InitCommand,
			ogcli.DevCommand,
			ogcli.ProdCommand,
			ogcli.RenderCommand,
			ogcli.URLCommand,
			ogcli.CheckCommand,
			ogcli.InfoCommand,
			ogcli.CleanCommand,
		},
	}
	return app.Run(args)
}

func main() {
	if err := runApp(os.Args); err != nil {
		log.Fatal(err)
	}
}
