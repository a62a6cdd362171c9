package main

import (
	"bufio"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"

	"github.com/xorcism/xorcism-go/xorcism"
)

func main() {
	app := &cli.App{
		Name:  "xorcism",
		Usage: "munge data using repeating-key XOR",
		Description: "Data is read from stdin and emitted via stdout:\n\n" +
			"   xorcism --key-file key_file < in_file > out_file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "key",
				Aliases: []string{"k"},
				Usage:   "use this `value` as a literal key",
				EnvVars: []string{"XORCISM_KEY"},
			},
			&cli.PathFlag{
				Name:    "key-file",
				Aliases: []string{"f"},
				Usage:   "use the contents of this `file` as the key",
			},
			&cli.BoolFlag{
				Name:  "null-key",
				Usage: "use a single null byte as the key (debug only)",
			},
			&cli.BoolFlag{
				Name:  "base64",
				Usage: "always encode output as base64 (default: true when stdout is a TTY)",
			},
			&cli.BoolFlag{
				Name:  "no-base64",
				Usage: "never encode output as base64",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "xorcism: %v\n", err)
		os.Exit(1)
	}
}

// resolveKey picks the key source in priority order: the debug null key, a
// literal key, then a key file.
func resolveKey(c *cli.Context) ([]byte, error) {
	if c.IsSet("key") && c.IsSet("key-file") {
		return nil, errors.New("--key and --key-file are mutually exclusive")
	}
	if c.Bool("null-key") {
		return []byte{0}, nil
	}
	if c.IsSet("key") {
		return []byte(c.String("key")), nil
	}
	if path := c.Path("key-file"); path != "" {
		return os.ReadFile(path)
	}
	return nil, errors.New("key not provided")
}

func stdoutIsTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

func run(c *cli.Context) error {
	if c.Bool("base64") && c.Bool("no-base64") {
		return errors.New("--base64 and --no-base64 are mutually exclusive")
	}

	key, err := resolveKey(c)
	if err != nil {
		return err
	}

	terminal := stdoutIsTerminal()
	useBase64 := terminal
	if c.Bool("base64") {
		useBase64 = true
	} else if c.Bool("no-base64") {
		useBase64 = false
	}

	buffered := bufio.NewWriter(os.Stdout)
	var dest io.Writer = buffered
	var encoder io.WriteCloser
	if useBase64 {
		encoder = base64.NewEncoder(base64.StdEncoding, buffered)
		dest = encoder
	}

	w, err := xorcism.NewWriter(key, dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(w, bufio.NewReader(os.Stdin)); err != nil {
		return err
	}
	if encoder != nil {
		// Close flushes the final partial base64 quantum.
		if err := encoder.Close(); err != nil {
			return err
		}
	}
	if err := buffered.Flush(); err != nil {
		return err
	}

	if terminal {
		fmt.Println()
	}
	return nil
}
