package main

import (
	"context"
	"io"

	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/on-the-ground/partitions/internal/config"
	"github.com/on-the-ground/partitions/internal/log"
	"github.com/on-the-ground/partitions/partition"
)

func newCommand(stdout io.Writer) *cli.Command {
	def := config.Default()
	path := config.Path()

	return &cli.Command{
		Name:      "partitions",
		Usage:     "list the integer partitions of a range of totals",
		UsageText: "partitions [--from N] [--to M] [options]",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "from",
				Usage:   "first total to partition",
				Sources: sources(config.DemoFrom, path),
				Value:   def.From,
			},
			&cli.IntFlag{
				Name:    "to",
				Usage:   "last total to partition",
				Sources: sources(config.DemoTo, path),
				Value:   def.To,
			},
			&cli.IntFlag{
				Name:    "workers",
				Aliases: []string{"w"},
				Usage:   "number of concurrent callers",
				Sources: sources(config.DemoWorkers, path),
				Value:   def.Workers,
			},
			&cli.IntFlag{
				Name:    "buffer-size",
				Usage:   "queue length per worker",
				Sources: sources(config.DemoBufferSize, path),
				Value:   def.BufferSize,
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "debug, info, warn or error",
				Sources: sources(config.LogLevel, path),
				Value:   def.LogLevel,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := config.Config{
				From:       cmd.Int("from"),
				To:         cmd.Int("to"),
				Workers:    cmd.Int("workers"),
				BufferSize: cmd.Int("buffer-size"),
				LogLevel:   cmd.String("log-level"),
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger, err := log.New(cfg.LogLevel)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			holder := partition.NewHolder(partition.WithLogger(logger))
			return run(ctx, stdout, cfg, holder, logger)
		},
	}
}

// sources resolves a flag from its env var, then from the yaml config file.
func sources(key, path string) cli.ValueSourceChain {
	return cli.NewValueSourceChain(
		cli.EnvVar(config.EnvVar(key)),
		yaml.YAML(key, altsrc.StringSourcer(path)),
	)
}
