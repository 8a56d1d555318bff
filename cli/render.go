package cli

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/vaan/ogimage/core"
)

var RenderCommand = &cli.Command{
	Name:      "render",
	Usage:     "Render a card offline from a request path such as /word/1?sanskrit=...",
	ArgsUsage: "<path?query>",
	Flags: []cli.Flag{
		configFlag,
		&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "write the SVG to this file instead of stdout"},
		&cli.BoolFlag{Name: "save", Usage: "write the SVG under outputDir/<template>/"},
	},
	Action: func(c *cli.Context) error {
		if c.Args().Len() != 1 {
			return cli.Exit("render expects exactly one request path", 2)
		}

		config, err := loadConfig(c.String("config"))
		if err != nil {
			return err
		}

		target, err := url.Parse(c.Args().First())
		if err != nil {
			return fmt.Errorf("invalid request path: %w", err)
		}

		router := core.NewRouter(config, core.RuntimeContext{Env: "cli"})
		card, err := router.Match(target.EscapedPath(), core.ParseQuery(target.RawQuery))
		if err != nil {
			return cli.Exit(fmt.Sprintf("no card route for %s", target.Path), 1)
		}
		doc := router.Render(c.Context, card)

		outPath := c.String("out")
		if outPath == "" && c.Bool("save") {
			outPath = savedCardPath(config.OutputDir, card.Kind(), target.Path)
		}

		if outPath == "" {
			fmt.Print(doc.Body)
			return nil
		}

		if err := os.MkdirAll(filepath.Dir(outPath), os.ModePerm); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		if err := os.WriteFile(outPath, []byte(doc.Body), 0644); err != nil {
			return fmt.Errorf("failed to write card: %w", err)
		}

		fmt.Println("🖼  Wrote", outPath)
		return nil
	},
}

// savedCardPath names a saved render after the last path segment, so
// /baby-name/asha lands in <outputDir>/baby-name/asha.svg.
func savedCardPath(outputDir, kind, requestPath string) string {
	name := filepath.Base(strings.TrimRight(requestPath, "/"))
	if name == "" || name == "." || name == "/" || name == kind {
		name = "card"
	}
	return filepath.Join(outputDir, kind, name+".svg")
}
