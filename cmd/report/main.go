package main

import (
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/lox/blackjacksim/internal/report"
	"github.com/lox/blackjacksim/internal/results"
)

type CLI struct {
	Results string `arg:"" default:"results" help:"Directory of result records to report on"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("report"),
		kong.Description("Render comparative tables from simulation result records"),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(run(&cli))
}

func run(cli *CLI) error {
	records, err := results.Load(cli.Results)
	if err != nil {
		return fmt.Errorf("loading records: %w", err)
	}
	fmt.Print(report.Render(records))
	return nil
}
