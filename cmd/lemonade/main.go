package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/denismitr/lemonade"
	jww "github.com/spf13/jwalterweatherman"
)

// CLI needs no arguments; the flags only override the demo record.
type CLI struct {
	Name    string `help:"Name stored in the record." default:"Gowtham"`
	Age     int    `help:"Age stored in the record." default:"25"`
	Verbose bool   `short:"v" help:"Log debug output to stderr."`
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("lemonade"),
		kong.Description("Round trip a record through JSON and print a country table."),
	)

	if err := run(&cli, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "lemonade:", err)
		os.Exit(1)
	}
}

func run(cli *CLI, stdout, stderr io.Writer) error {
	threshold := jww.LevelInfo
	if cli.Verbose {
		threshold = jww.LevelTrace
	}

	rec := lemonade.NewRecord(cli.Name, cli.Age)

	return lemonade.Run(lemonade.Config{
		Out:    stdout,
		Record: &rec,
		Log:    jww.NewNotepad(threshold, jww.LevelFatal, stderr, io.Discard, "lemonade ", 0),
	})
}
