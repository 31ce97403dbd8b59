package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/imroc/biu"
	"github.com/spf13/cobra"

	"github.com/lmu-telematics/calamp"
)

var dumper = spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true, SortKeys: true}

func NewHexCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "hex <message>...",
		Short: "Decode messages given as hex strings",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bufs := make([][]byte, len(args))
			for i, arg := range args {
				buf, err := hex.DecodeString(strings.Join(strings.Fields(arg), ""))
				if err != nil {
					return fmt.Errorf("argument %d: %w", i, err)
				}
				bufs[i] = buf
			}
			return run(cmd, opts, args, bufs)
		},
	}
}

func NewFileCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "file <path>...",
		Short: "Decode binary message captures, one message per file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bufs := make([][]byte, len(args))
			for i, path := range args {
				buf, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				bufs[i] = buf
			}
			return run(cmd, opts, args, bufs)
		},
	}
}

func printMessage(out io.Writer, name string, msg *calamp.Message) {
	fmt.Fprintf(out, "== %s\n", name)
	fmt.Fprintf(out, "options flags: %s\n", biu.ToBinaryString(msg.Options.Flags))
	if msg.Options.MobileID != nil {
		fmt.Fprintf(out, "mobile id: %s\n", msg.Options.MobileID)
	}
	fmt.Fprintf(out, "%s %s seq=%d\n", msg.Header.ServiceType, msg.Header.MessageType, msg.Header.SequenceNumber)
	dumper.Fdump(out, msg)
}
