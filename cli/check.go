package cli

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/vaan/ogimage/core"
)

var samples = core.Samples

var CheckCommand = &cli.Command{
	Name:  "check",
	Usage: "Render every sample card and verify the output is well-formed SVG",
	Flags: []cli.Flag{configFlag},
	Action: func(c *cli.Context) error {
		config, err := loadConfig(c.String("config"))
		if err != nil {
			return err
		}

		router := core.NewRouter(config, core.RuntimeContext{Env: "cli"})
		var failed bool

		for _, sample := range samples() {
			target, err := url.Parse(sample.Path)
			if err != nil {
				failed = true
				fmt.Printf("❌ %s → bad path: %v\n", sample.Name, err)
				continue
			}

			card, err := router.Match(target.EscapedPath(), core.ParseQuery(target.RawQuery))
			if err != nil {
				failed = true
				fmt.Printf("❌ %s → %v\n", sample.Name, err)
				continue
			}

			doc := router.Render(c.Context, card)
			if err := validateSVG(doc.Body); err != nil {
				failed = true
				fmt.Printf("❌ %s → %v\n", sample.Name, err)
				continue
			}

			fmt.Printf("✅ %s (%s, %d bytes)\n", sample.Name, card.Kind(), len(doc.Body))
		}

		if failed {
			return cli.Exit("some cards failed to render", 1)
		}

		fmt.Println("✅ All cards rendered successfully.")
		return nil
	},
}

func validateSVG(body string) error {
	dec := xml.NewDecoder(strings.NewReader(body))
	root := ""
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("malformed markup: %w", err)
		}
		if start, ok := tok.(xml.StartElement); ok && root == "" {
			root = start.Name.Local
		}
	}
	if root != "svg" {
		return fmt.Errorf("root element is %q, want svg", root)
	}
	return nil
}
