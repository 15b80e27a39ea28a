package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/kballard/go-shellquote"

	"github.com/badele/multisplit/internal/charset"
	"github.com/badele/multisplit/internal/config"
	"github.com/badele/multisplit/internal/exporter"
	"github.com/badele/multisplit/internal/logger"
	"github.com/badele/multisplit/internal/splitter"
)

var errNoInput = errors.New("no input: give a file or pipe data on stdin")

// run is main without the process exits, so it can be tested.
func run(cli *CLI, stdin io.Reader, stdout io.Writer) error {
	cfg, err := cli.loadConfig()
	if err != nil {
		return err
	}

	logger.Init(cfg.Logging)
	defer logger.Sync()
	log := logger.Get(context.Background())

	delimiters, err := cfg.ResolveDelimiters()
	if err != nil {
		return err
	}
	log.Debugw("delimiters resolved", "delimiters", delimiters, "preset", cfg.Preset)

	data, name, err := readInput(cli.File, stdin)
	if err != nil {
		return err
	}

	utf8Data, err := charset.ConvertToUTF8(data, cfg.Encoding)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", name, err)
	}

	tok, err := splitter.NewTokenizer(string(utf8Data), delimiters...)
	if err != nil {
		return err
	}
	tokens := tok.Tokenize()
	log.Infow("split done", "input", name, "bytes", len(utf8Data), "tokens", len(tokens), "format", cfg.Format)

	var out bytes.Buffer
	switch cfg.Format {
	case exporter.FormatLines:
		err = exporter.ExportLines(tokens, &out)
	case exporter.FormatJoined:
		var sep string
		if sep, err = cfg.JoinText(); err == nil {
			err = exporter.ExportJoined(tokens, sep, &out)
		}
	case exporter.FormatJSON:
		err = exporter.ExportJSON(tok, delimiters, &out)
	case exporter.FormatTable:
		err = exporter.ExportTokensToTable(tokens, &out)
	case exporter.FormatStats:
		err = exporter.DisplayStats(tok.GetStats(), &out)
	case exporter.FormatGrid:
		var grid string
		if grid, err = exporter.ExportGrid(tokens, cfg.Width, cli.Color); err == nil && grid != "" {
			out.WriteString(grid)
			out.WriteByte('\n')
		}
	default:
		err = fmt.Errorf("unknown format %q", cfg.Format)
	}
	if err != nil {
		return err
	}

	result := out.Bytes()
	if cfg.Format != exporter.FormatJSON {
		if result, err = charset.ConvertToEncoding(result, cfg.OutputEncoding); err != nil {
			return fmt.Errorf("error encoding output: %w", err)
		}
	}

	_, err = stdout.Write(result)
	return err
}

// loadConfig layers the flags over the config file and the defaults.
func (c *CLI) loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if c.Config != "" {
		loaded, err := config.Load(c.Config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	delims := append([]string(nil), c.Delimiter...)
	if c.DelimitersLine != "" {
		words, err := shellquote.Split(c.DelimitersLine)
		if err != nil {
			return nil, fmt.Errorf("error parsing --delimiters-line: %w", err)
		}
		delims = append(delims, words...)
	}
	if len(delims) > 0 {
		cfg.Delimiters = delims
	}

	if c.Preset != "" {
		cfg.Preset = c.Preset
		if len(delims) == 0 {
			cfg.Delimiters = nil
		}
	}
	if c.Format != "" {
		cfg.Format = c.Format
	}
	if c.Join != nil {
		cfg.Join = c.Join
	}
	if c.Encoding != "" {
		cfg.Encoding = c.Encoding
	}
	if c.OutputEncoding != "" {
		cfg.OutputEncoding = c.OutputEncoding
	}
	if c.Width != 0 {
		cfg.Width = c.Width
	}
	if c.LogLevel != "" {
		cfg.Logging.Level = c.LogLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	return cfg, nil
}

// readInput reads the named file, or stdin when it is a pipe.
func readInput(path string, stdin io.Reader) ([]byte, string, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, "", fmt.Errorf("error reading file: %w", err)
		}
		return data, path, nil
	}

	if f, ok := stdin.(*os.File); ok {
		stat, err := f.Stat()
		if err != nil {
			return nil, "", fmt.Errorf("error checking stdin: %w", err)
		}
		if (stat.Mode() & os.ModeCharDevice) != 0 {
			return nil, "", errNoInput
		}
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, "", fmt.Errorf("error reading from stdin: %w", err)
	}
	return data, "stdin", nil
}
