package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli"
	stegoshield "github.com/yyyoichi/stegoshield"
	"github.com/yyyoichi/stegoshield/imageio"
	"github.com/yyyoichi/stegoshield/pixel"
	"github.com/yyyoichi/stegoshield/quality"
)

var errMissingFlag = errors.New("missing required flag")

func encodeAction(c *cli.Context) error {
	in, err := requireString(c, inputFile.Name)
	if err != nil {
		return err
	}
	out := c.String("out")
	format, err := imageio.FormatFromPath(out)
	if err != nil {
		return err
	}
	k, err := requireString(c, key.Name)
	if err != nil {
		return err
	}
	msg := c.String("message")

	s, err := newStego(c)
	if err != nil {
		return err
	}
	buf, err := readBuffer(in)
	if err != nil {
		return err
	}
	log.Debug("image loaded", "path", in, "height", buf.Height, "width", buf.Width, "capacity", stegoshield.Capacity(buf))

	stego, err := s.Encode(buf, msg, k)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := imageio.Encode(f, stego, format); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	report, err := quality.Measure(buf, stego)
	if err != nil {
		return err
	}
	log.Info("stego image written", "path", out, "format", format,
		"changed", report.Changed, "psnr", fmt.Sprintf("%.2f dB", report.PSNR))
	return nil
}

func decodeAction(c *cli.Context) error {
	in, err := requireString(c, inputFile.Name)
	if err != nil {
		return err
	}
	k, err := requireString(c, key.Name)
	if err != nil {
		return err
	}
	s, err := newStego(c)
	if err != nil {
		return err
	}
	buf, err := readBuffer(in)
	if err != nil {
		return err
	}
	msg, err := s.Decode(buf, k)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	_, err = fmt.Fprintln(c.App.Writer, msg)
	return err
}

func capacityAction(c *cli.Context) error {
	in, err := requireString(c, inputFile.Name)
	if err != nil {
		return err
	}
	buf, err := readBuffer(in)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.App.Writer, stegoshield.Capacity(buf))
	return err
}

func newStego(c *cli.Context) (*stegoshield.Stego, error) {
	if c.IsSet(golaySeed.Name) {
		return stegoshield.New(stegoshield.WithGolay(c.Int64(golaySeed.Name)))
	}
	return stegoshield.New()
}

func readBuffer(path string) (*pixel.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	buf, format, err := imageio.Decode(f)
	if err != nil {
		return nil, err
	}
	if format == "jpeg" || format == "webp" {
		log.Warn("source image is lossy; the stego output is still written losslessly", "format", format)
	}
	return buf, nil
}

// requireString resolves a flag declared as "name, alias".
func requireString(c *cli.Context, flagName string) (string, error) {
	name := primaryName(flagName)
	v := c.String(name)
	if v == "" {
		return "", fmt.Errorf("%w: --%s", errMissingFlag, name)
	}
	return v, nil
}

func primaryName(flagName string) string {
	for i := range flagName {
		if flagName[i] == ',' {
			return flagName[:i]
		}
	}
	return flagName
}
