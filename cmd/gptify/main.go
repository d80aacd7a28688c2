/*
Copyright 2026 The gptify Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package main implements the gptify command line tool: an iterative
// clean-code reformatter that round-trips a source file through a hosted
// language model and shows the diff per iteration.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/chainguard-dev/clog"
	"github.com/joho/godotenv"
	"github.com/oppianmatt/gptify/completion"
	"github.com/oppianmatt/gptify/formatter"
	"github.com/sethvargo/go-envconfig"
	"github.com/spf13/cobra"
)

// config is the environment-supplied configuration. Only the credential for
// the provider behind the selected model needs to be present.
type config struct {
	OpenAIKey    string `env:"OPENAI_API_KEY"`
	AnthropicKey string `env:"ANTHROPIC_API_KEY"`
	GeminiKey    string `env:"GEMINI_API_KEY"`

	Model string `env:"GPTIFY_MODEL,default=gpt-3.5-turbo"`
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		clog.FatalContextf(ctx, "%v", err)
	}
}

func newRootCommand() *cobra.Command {
	var (
		model       string
		maxTokens   int64
		temperature float64
		summary     bool
	)

	cmd := &cobra.Command{
		Use:   "gptify <file> [iterations]",
		Short: "Iteratively reformat a source file with a hosted language model",
		Long: `gptify sends a file's contents to a hosted language model with a fixed
clean-code instruction, prints the unified diff of what came back, writes
the result over the file, and repeats for the requested number of
iterations. Each iteration starts from the previous one's output.`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			// Pick up a local .env before reading the environment.
			if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("loading .env: %w", err)
			}
			var cfg config
			if err := envconfig.Process(ctx, &cfg); err != nil {
				return fmt.Errorf("processing config: %w", err)
			}
			if model == "" {
				model = cfg.Model
			}

			iterations := 1
			if len(args) == 2 {
				n, err := strconv.Atoi(args[1])
				if err != nil || n < 0 {
					return fmt.Errorf("iterations must be a non-negative integer, got %q", args[1])
				}
				iterations = n
			}

			svc, err := completion.New(ctx, model, completion.Credentials{
				OpenAI:    cfg.OpenAIKey,
				Anthropic: cfg.AnthropicKey,
				Gemini:    cfg.GeminiKey,
			},
				completion.WithMaxTokens(maxTokens),
				completion.WithTemperature(temperature),
			)
			if err != nil {
				return fmt.Errorf("creating completion client: %w", err)
			}

			opts := []formatter.Option{formatter.WithOutput(cmd.OutOrStdout())}
			if summary {
				opts = append(opts, formatter.WithSummary())
			}
			f, err := formatter.New(svc, opts...)
			if err != nil {
				return fmt.Errorf("creating formatter: %w", err)
			}

			return f.Run(ctx, args[0], iterations)
		},
	}

	cmd.Flags().StringVar(&model, "model", "", "model to use (defaults to $GPTIFY_MODEL or gpt-3.5-turbo)")
	cmd.Flags().Int64Var(&maxTokens, "max-tokens", 4096, "maximum completion tokens per iteration")
	cmd.Flags().Float64Var(&temperature, "temperature", 0.1, "sampling temperature")
	cmd.Flags().BoolVar(&summary, "summary", false, "print a per-iteration change table after the run")

	return cmd
}
