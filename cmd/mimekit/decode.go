package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gobeaver/mimekit/charset"
)

func newDecodeCmd(a *app) *cobra.Command {
	var order []string

	cmd := &cobra.Command{
		Use:   "decode FILE",
		Short: "Convert a text file of unknown encoding to UTF-8",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			info, err := os.Stat(path)
			if err != nil {
				return err
			}
			if limit := a.resolver.MaxFileSize(); info.Size() > limit {
				return fmt.Errorf("%s: %d bytes > limit %d bytes", path, info.Size(), limit)
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			text, enc, err := charset.Decode(data, order...)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", path, enc)
			_, err = fmt.Fprint(cmd.OutOrStdout(), text)
			return err
		},
	}

	cmd.Flags().StringSliceVar(&order, "charsets", nil, "Encodings to try, in order (default utf-8,shift_jis,euc-jp,...)")

	return cmd
}
