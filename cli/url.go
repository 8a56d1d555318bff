package cli

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/vaan/ogimage/core"
)

var URLCommand = &cli.Command{
	Name:  "url",
	Usage: "Print the public og:image URL for a card",
	Subcommands: []*cli.Command{
		{
			Name:      "baby-name",
			ArgsUsage: "<slug>",
			Flags: []cli.Flag{
				configFlag,
				&cli.StringFlag{Name: "name"},
				&cli.StringFlag{Name: "pronunciation"},
				&cli.StringFlag{Name: "meaning"},
				&cli.StringFlag{Name: "story"},
				&cli.StringFlag{Name: "gender"},
			},
			Action: func(c *cli.Context) error {
				if c.Args().Len() != 1 {
					return cli.Exit("url baby-name expects a slug", 2)
				}
				config, err := loadConfig(c.String("config"))
				if err != nil {
					return err
				}

				path := core.BabyNamePath(c.Args().First(), core.BabyName{
					Name:          c.String("name"),
					Pronunciation: c.String("pronunciation"),
					Meaning:       c.String("meaning"),
					Story:         c.String("story"),
					Gender:        c.String("gender"),
				})
				fmt.Println(core.ImageURL(config.BaseURL, path))
				return nil
			},
		},
		{
			Name:      "word",
			ArgsUsage: "<id>",
			Flags: []cli.Flag{
				configFlag,
				&cli.StringFlag{Name: "sanskrit"},
				&cli.StringFlag{Name: "transliteration"},
				&cli.StringFlag{Name: "meaning"},
			},
			Action: func(c *cli.Context) error {
				if c.Args().Len() != 1 {
					return cli.Exit("url word expects an id", 2)
				}
				config, err := loadConfig(c.String("config"))
				if err != nil {
					return err
				}

				path := core.WordPath(c.Args().First(), core.WordOfDay{
					Sanskrit:        c.String("sanskrit"),
					Transliteration: c.String("transliteration"),
					Meaning:         c.String("meaning"),
				})
				fmt.Println(core.ImageURL(config.BaseURL, path))
				return nil
			},
		},
	},
}
