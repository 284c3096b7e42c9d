package main

import "github.com/urfave/cli"

var (
	logLevel = cli.StringFlag{
		Name:   "log-level",
		Usage:  "Logger level(s), e.g. *:INFO or *:DEBUG",
		Value:  "*:INFO",
		EnvVar: "STEGOSHIELD_LOG_LEVEL",
	}
	inputFile = cli.StringFlag{
		Name:  "in, i",
		Usage: "Path of the source image (png, jpeg, gif, bmp, tiff or webp)",
	}
	outputFile = cli.StringFlag{
		Name:  "out, o",
		Usage: "Path of the stego image; the extension picks png, bmp or tiff",
		Value: "stego.png",
	}
	message = cli.StringFlag{
		Name:  "message, m",
		Usage: "Message to hide, at most 255 characters with codes 0-254",
	}
	key = cli.StringFlag{
		Name:   "key, k",
		Usage:  "Key that locks and unlocks the message",
		EnvVar: "STEGOSHIELD_KEY",
	}
	golaySeed = cli.Int64Flag{
		Name:  "golay-seed",
		Usage: "Protect the payload with Golay error correction shuffled by this seed. Decode needs the same seed.",
	}
)
