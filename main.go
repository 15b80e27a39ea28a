package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

var version = "dev"

type CLI struct {
	File string `arg:"" optional:"" type:"path" help:"File to split. Reads from stdin (pipe) when omitted."`

	Delimiter      []string `short:"d" sep:"none" env:"MULTISPLIT_DELIMITERS" help:"Delimiter pattern, repeatable. Go escapes such as a backslash followed by t are allowed."`
	DelimitersLine string   `name:"delimiters-line" help:"Shell-quoted list of delimiters separated by spaces."`
	Preset         string   `short:"p" env:"MULTISPLIT_PRESET" help:"Named delimiter set (whitespace, csv, path, lines or one from the config)."`
	Format         string   `short:"f" env:"MULTISPLIT_FORMAT" help:"Output format: lines, joined, json, table, stats, grid."`
	Join           *string  `short:"j" help:"Separator used by the joined format, empty to concatenate."`
	Encoding       string   `short:"e" env:"MULTISPLIT_ENCODING" help:"Input encoding (utf8, cp437, cp850, cp1252, iso-8859-1, iso-8859-15, utf16, utf16be)."`
	OutputEncoding string   `name:"output-encoding" help:"Output encoding for text formats."`
	Width          int      `short:"w" help:"Grid width in columns."`
	Color          bool     `help:"Highlight alternate grid columns."`
	Config         string   `short:"c" type:"path" env:"MULTISPLIT_CONFIG" help:"YAML configuration file."`
	LogLevel       string   `name:"log-level" help:"Log level: debug, info, warn, error."`

	Version kong.VersionFlag `help:"Print version and exit."`
}

func main() {
	// Values from .env feed the env tags below
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error loading .env: %v\n", err)
		os.Exit(1)
	}

	var cli CLI
	kong.Parse(&cli,
		kong.Name("multisplit"),
		kong.Description(heredoc.Doc(`
			Split text on several delimiters at once.

			Every run of delimiters separates two tokens; leading and trailing
			delimiters never produce empty tokens. When two delimiters match at
			the same position the one given first wins.

			Precedence: flags, then environment, then config file, then defaults.
		`)),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)

	if err := run(&cli, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
