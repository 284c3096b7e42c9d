package main

import (
	"fmt"
	"os"

	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/urfave/cli"
)

var log = logger.GetOrCreate("stegoshield")

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "stegoshield"
	app.Version = "v0.1.0"
	app.Usage = "Hide a short key-locked message in the low bits of an image, or reveal it again"
	app.Flags = []cli.Flag{logLevel}
	app.Before = func(c *cli.Context) error {
		return logger.SetLogLevel(c.GlobalString(logLevel.Name))
	}
	app.Commands = []cli.Command{
		{
			Name:      "encode",
			Usage:     "hide a message and write a lossless stego image",
			ArgsUsage: " ",
			Flags:     []cli.Flag{inputFile, outputFile, message, key, golaySeed},
			Action:    encodeAction,
		},
		{
			Name:      "decode",
			Usage:     "reveal the message hidden in an image",
			ArgsUsage: " ",
			Flags:     []cli.Flag{inputFile, key, golaySeed},
			Action:    decodeAction,
		},
		{
			Name:      "capacity",
			Usage:     "print how many characters an image can hold",
			ArgsUsage: " ",
			Flags:     []cli.Flag{inputFile},
			Action:    capacityAction,
		},
	}
	return app
}
