package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gobeaver/mimekit"
)

// app carries state shared by all subcommands
type app struct {
	v        *viper.Viper
	resolver *mimekit.Resolver
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "mimekit",
		Short: "Detect file content types from magic bytes and extensions",
		Long: `mimekit classifies files by their leading bytes, falling back to the file
name when a file is missing, unreadable or larger than --max-size.

Flags default to BEAVER_MIMEKIT_MAX_FILE_SIZE, BEAVER_MIMEKIT_LOG_LEVEL and
BEAVER_MIMEKIT_LOG_FORMAT when those are set.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.Int64("max-size", mimekit.DefaultMaxFileSize, "Largest file (bytes) to read for content sniffing")
	flags.String("log-level", "warn", "Logging level (debug, info, warn, error)")
	flags.String("log-format", mimekit.LogFormatText, "Log format (text, json)")

	// same variables the library reads through mimekit.InitFromEnv
	_ = a.v.BindEnv("max-size", "BEAVER_MIMEKIT_MAX_FILE_SIZE")
	_ = a.v.BindEnv("log-level", "BEAVER_MIMEKIT_LOG_LEVEL")
	_ = a.v.BindEnv("log-format", "BEAVER_MIMEKIT_LOG_FORMAT")
	_ = a.v.BindPFlags(flags)

	rootCmd.AddCommand(
		newFileCmd(a),
		newTypesCmd(a),
		newWatchCmd(a),
		newDecodeCmd(a),
	)

	return rootCmd
}

// setup builds the resolver from flags and BEAVER_MIMEKIT_* environment variables
func (a *app) setup() error {
	r, err := mimekit.New(&mimekit.Config{
		MaxFileSize: a.v.GetInt64("max-size"),
		LogLevel:    a.v.GetString("log-level"),
		LogFormat:   a.v.GetString("log-format"),
	})
	if err != nil {
		return err
	}
	a.resolver = r
	return nil
}
