package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/carlmjohnson/versioninfo"
	"github.com/iancoleman/strcase"
	"github.com/urfave/cli/v2"

	"github.com/pdok/morton"
)

const WIDTH string = `width`

func main() {
	app := cli.NewApp()
	app.Name = "morton"
	app.Usage = "Interleave 2D coordinates into Morton codes (Z-order) and back"
	app.Version = versioninfo.Short()

	app.Commands = []*cli.Command{
		{
			Name:      "z",
			Usage:     "Interleave x and y into a Morton code",
			ArgsUsage: "<x> <y>",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    WIDTH,
					Aliases: []string{"w"},
					Usage:   "Bit width of the Morton code, 16 or 32",
					Value:   32,
					EnvVars: []string{strcase.ToScreamingSnake(WIDTH)},
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() != 2 {
					return fmt.Errorf(`expected 2 arguments, got %d`, c.NArg())
				}
				width := c.Int(WIDTH)
				if width != 16 && width != 32 {
					return fmt.Errorf(`unsupported Morton code width: %d`, width)
				}
				coordBits := width / 2
				x, err := parseUint(c.Args().Get(0), coordBits)
				if err != nil {
					return err
				}
				y, err := parseUint(c.Args().Get(1), coordBits)
				if err != nil {
					return err
				}
				if width == 32 {
					fmt.Println(morton.ToZ32(x, y))
				} else {
					fmt.Println(morton.ToZ16(x, y))
				}
				return nil
			},
		},
		{
			Name:      "xy",
			Usage:     "Deinterleave a Morton code into x and y",
			ArgsUsage: "<z>",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    WIDTH,
					Aliases: []string{"w"},
					Usage:   "Bit width of the Morton code, 8 or 16",
					Value:   16,
					EnvVars: []string{strcase.ToScreamingSnake(WIDTH)},
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() != 1 {
					return fmt.Errorf(`expected 1 argument, got %d`, c.NArg())
				}
				width := c.Int(WIDTH)
				if width != 8 && width != 16 {
					return fmt.Errorf(`unsupported Morton code width: %d`, width)
				}
				z, err := parseUint(c.Args().Get(0), width)
				if err != nil {
					return err
				}
				var x, y uint32
				if width == 16 {
					x, y = morton.FromZ16(z)
				} else {
					x, y = morton.FromZ8(z)
				}
				fmt.Println(x, y)
				return nil
			},
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}

func parseUint(s string, bits int) (uint32, error) {
	v, err := strconv.ParseUint(s, 0, bits)
	if err != nil {
		return 0, fmt.Errorf(`cannot parse %v as a %d-bit unsigned integer: %w`, s, bits, err)
	}
	return uint32(v), nil
}
