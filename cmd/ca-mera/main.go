package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	camera "github.com/marktremmel/ca-mera"
	"github.com/marktremmel/ca-mera/gbcam"
	"github.com/urfave/cli/v2"
)

const defaultDB = "camera.db"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func developFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "palette",
			Value: "classic",
			Usage: "palette key, see the palettes command",
		},
		&cli.Float64Flag{
			Name:  "contrast",
			Value: gbcam.DefaultContrast,
			Usage: "contrast factor, 1.0 is neutral",
		},
		&cli.Float64Flag{
			Name:  "edge",
			Value: gbcam.DefaultEdgeStrength,
			Usage: "edge enhancement strength, 0 disables",
		},
		&cli.IntFlag{
			Name:  "scale",
			Value: 4,
			Usage: "integer display scale of written output",
		},
		&cli.BoolFlag{
			Name:  "keep",
			Usage: "also store the shot in the gallery",
		},
	}
}

func developOptions(c *cli.Context) camera.DevelopOptions {
	return camera.DevelopOptions{
		Palette: c.String("palette"),
		Params: gbcam.Params{
			Contrast:     c.Float64("contrast"),
			EdgeStrength: c.Float64("edge"),
		},
		Scale: c.Int("scale"),
		Keep:  c.Bool("keep"),
	}
}

func main() {
	app := cli.NewApp()

	app.Name = "ca-mera"
	app.Usage = "1998-style 4-color camera for modern photos"
	app.Version = "1.0.0"

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"CAMERA_DB"},
			Value:   filepath.Join(cwd, defaultDB),
			Usage:   "path to gallery database",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:      "snap",
			Usage:     "Develop a single photo",
			ArgsUsage: "FILE",
			Flags: append(developFlags(), &cli.StringFlag{
				Name:  "out",
				Usage: "output file, defaults to FILE with a .gbc.png suffix",
			}),
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				m, err := camera.New(c.String("db"), newLogger(c))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer m.Close()

				file := c.Args().First()
				out := c.String("out")
				if out == "" {
					out = strings.TrimSuffix(file, filepath.Ext(file)) + ".gbc.png"
				}

				if err := m.Snap(file, out, developOptions(c)); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:      "develop",
			Usage:     "Develop every photo under a directory",
			ArgsUsage: "DIRECTORY",
			Flags:     developFlags(),
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				m, err := camera.New(c.String("db"), newLogger(c))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer m.Close()

				if err := m.Develop(c.Args().First(), developOptions(c)); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:  "palettes",
			Usage: "List the built-in palettes",
			Action: func(c *cli.Context) error {
				for _, p := range gbcam.Palettes() {
					fmt.Printf("%-10s %-12s", p.Key, p.Name)
					for _, col := range p.Colors {
						fmt.Printf(" #%02x%02x%02x", col.R, col.G, col.B)
					}
					fmt.Println()
				}
				return nil
			},
		},
		{
			Name:  "gallery",
			Usage: "Manage stored shots",
			Subcommands: []*cli.Command{
				{
					Name:  "list",
					Usage: "List stored shots",
					Action: func(c *cli.Context) error {
						m, err := camera.New(c.String("db"), newLogger(c))
						if err != nil {
							return cli.NewExitError(err, 1)
						}
						defer m.Close()

						shots, err := m.Shots()
						if err != nil {
							return cli.NewExitError(err, 1)
						}

						for _, s := range shots {
							fmt.Printf("%4d  %s  %-10s contrast=%.2f edge=%.2f\n",
								s.ID, s.CreatedAt.Format("2006-01-02 15:04:05"), s.Palette, s.Contrast, s.Edge)
						}

						return nil
					},
				},
				{
					Name:      "export",
					Usage:     "Write a stored shot to a PNG file",
					ArgsUsage: "ID FILE",
					Flags: []cli.Flag{
						&cli.IntFlag{
							Name:  "scale",
							Value: 4,
							Usage: "integer display scale",
						},
					},
					Action: func(c *cli.Context) error {
						if c.NArg() < 2 {
							cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
						}

						id, err := strconv.ParseInt(c.Args().Get(0), 10, 64)
						if err != nil {
							return cli.NewExitError(err, 1)
						}

						m, err := camera.New(c.String("db"), newLogger(c))
						if err != nil {
							return cli.NewExitError(err, 1)
						}
						defer m.Close()

						if err := m.ExportShot(id, c.Args().Get(1), c.Int("scale")); err != nil {
							return cli.NewExitError(err, 1)
						}

						return nil
					},
				},
				{
					Name:      "delete",
					Usage:     "Delete a stored shot",
					ArgsUsage: "ID",
					Action: func(c *cli.Context) error {
						if c.NArg() < 1 {
							cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
						}

						id, err := strconv.ParseInt(c.Args().First(), 10, 64)
						if err != nil {
							return cli.NewExitError(err, 1)
						}

						m, err := camera.New(c.String("db"), newLogger(c))
						if err != nil {
							return cli.NewExitError(err, 1)
						}
						defer m.Close()

						if err := m.DeleteShot(id); err != nil {
							return cli.NewExitError(err, 1)
						}

						return nil
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
