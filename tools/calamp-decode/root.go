package main

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/rcrowley/go-metrics"
	"github.com/spf13/cobra"

	"github.com/lmu-telematics/calamp"
)

const (
	MobileIDModeOptionName = "mobile-id-mode"
	MetricsOptionName      = "metrics"
	VerboseOptionName      = "verbose"
)

type rootOptions struct {
	mobileIDMode string
	metrics      bool
	verbose      bool
}

func (o *rootOptions) config() (*calamp.Config, error) {
	conf := calamp.NewConfig()
	switch o.mobileIDMode {
	case calamp.MobileIDCompat.String():
		conf.Options.MobileID = calamp.MobileIDCompat
	case calamp.MobileIDExtended.String():
		conf.Options.MobileID = calamp.MobileIDExtended
	default:
		return nil, fmt.Errorf("unknown %s %q", MobileIDModeOptionName, o.mobileIDMode)
	}
	return conf, nil
}

func NewRootCommand(out io.Writer) *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:          "calamp-decode",
		Short:        "Decode CalAmp LMU messages",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.verbose {
				calamp.Logger = log.New(cmd.ErrOrStderr(), "[calamp] ", log.LstdFlags)
			}
		},
	}
	cmd.SetOut(out)
	cmd.AddCommand(NewHexCommand(opts))
	cmd.AddCommand(NewFileCommand(opts))
	cmd.PersistentFlags().StringVar(&opts.mobileIDMode, MobileIDModeOptionName, calamp.MobileIDCompat.String(),
		fmt.Sprintf("Mobile id type handling. Must be one of: %s, %s.", calamp.MobileIDCompat, calamp.MobileIDExtended))
	cmd.PersistentFlags().BoolVar(&opts.metrics, MetricsOptionName, false, "Print decoder metrics after decoding.")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, VerboseOptionName, "v", false, "Log dropped messages to stderr.")
	return cmd
}

// run decodes every buffer and prints the results to the command's output.
func run(cmd *cobra.Command, opts *rootOptions, names []string, bufs [][]byte) error {
	conf, err := opts.config()
	if err != nil {
		return err
	}
	dec, err := calamp.NewDecoder(conf)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	msgs, err := dec.DecodeConcurrent(ctx, bufs)
	if msgs == nil && err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, msg := range msgs {
		if msg == nil {
			continue
		}
		printMessage(out, names[i], msg)
	}

	if opts.metrics {
		metrics.WriteOnce(conf.MetricRegistry, out)
	}
	return err
}
