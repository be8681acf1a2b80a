package main

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/gobeaver/mimekit"
)

type fileResult struct {
	Path      string `json:"path"`
	Type      string `json:"type"`
	Decodable bool   `json:"decodable"`
	Checksum  string `json:"checksum,omitempty"`
}

type fileFlags struct {
	nameOnly bool
	checksum bool
	json     bool
}

func newFileCmd(a *app) *cobra.Command {
	var flags fileFlags

	cmd := &cobra.Command{
		Use:   "file PATH...",
		Short: "Print the content type of each file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := a.classify(args, flags)
			if err != nil {
				return err
			}
			return writeResults(cmd.OutOrStdout(), results, flags.json)
		},
	}

	cmd.Flags().BoolVar(&flags.nameOnly, "name-only", false, "Guess from the file name without reading content")
	cmd.Flags().BoolVar(&flags.checksum, "checksum", false, "Include the xxhash64 digest of each file")
	cmd.Flags().BoolVar(&flags.json, "json", false, "Print one JSON object per line")

	return cmd
}

// classify resolves every path concurrently; results keep the input order
func (a *app) classify(paths []string, flags fileFlags) ([]fileResult, error) {
	results := make([]fileResult, len(paths))

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())

	for i, path := range paths {
		g.Go(func() error {
			var d mimekit.Descriptor
			if flags.nameOnly {
				d = a.resolver.ByName(path)
			} else {
				d = a.resolver.ByPath(path)
			}
			res := fileResult{
				Path:      path,
				Type:      d.Name(),
				Decodable: d.IsTextDecodable(),
			}
			if flags.checksum {
				sum, err := fileChecksum(path)
				if err != nil {
					return fmt.Errorf("checksum %s: %w", path, err)
				}
				res.Checksum = sum
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func writeResults(w io.Writer, results []fileResult, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		for _, res := range results {
			if err := enc.Encode(res); err != nil {
				return err
			}
		}
		return nil
	}

	for _, res := range results {
		var err error
		if res.Checksum != "" {
			_, err = fmt.Fprintf(w, "%s: %s %s\n", res.Path, res.Type, res.Checksum)
		} else {
			_, err = fmt.Fprintf(w, "%s: %s\n", res.Path, res.Type)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
