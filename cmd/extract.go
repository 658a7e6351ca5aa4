package cmd

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/mkrebs/commit-extractor/config"
	"github.com/mkrebs/commit-extractor/internal/export"
	"github.com/mkrebs/commit-extractor/internal/extract"
	"github.com/urfave/cli/v2"
)

func extractAction(c *cli.Context) error {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	format, err := export.ParseFormat(c.String("type"))
	if err != nil {
		return err
	}

	locator := c.String("repo")
	if c.NArg() > 0 {
		locator = c.Args().Get(0)
	}

	extractor, err := extract.New(format, c.Bool("today"), locator, cfg)
	if err != nil {
		return err
	}
	defer extractor.Close()

	path, err := extractor.Extract(c.Context)
	if errors.Is(err, extract.ErrNoCommits) {
		color.Yellow("No commits found, exiting...")
		return nil
	}
	if err != nil {
		return err
	}

	color.Green("Commit info written to %s", path)
	return nil
}
