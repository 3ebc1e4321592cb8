package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/amp-labs/amp-collections/collection"
	"github.com/amp-labs/amp-collections/graphemes"
	"github.com/amp-labs/amp-collections/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "SEQTOOL"

var (
	errUnknownFormat = errors.New("unknown output format")
	errNotFound      = errors.New("marker not found")
)

// app carries the streams and resolved configuration shared by every
// subcommand.
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer
	config *viper.Viper
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{
		in:     in,
		out:    out,
		errOut: errOut,
		config: viper.New(),
	}

	root := &cobra.Command{
		Use:   "seqtool",
		Short: "Chunk, stride, slice, trim and aggregate sequences of tokens",
		Long: `seqtool applies the collection algorithms to a sequence of tokens.

Tokens are taken from the positional arguments, or read from stdin as
whitespace-separated words when no arguments are given. With --text the
input is treated as a single string and its elements are the user-perceived
characters (grapheme clusters) of that string.

Settings can also come from the environment (SEQTOOL_FORMAT,
SEQTOOL_LOG_LEVEL, SEQTOOL_LOG_JSON, SEQTOOL_QUIET) or from a YAML file named
by --config.

Examples:

  seqtool chunk --size 2 a b c d e
  echo "1 2 3 4" | seqtool average --kind int-as-float
  seqtool distance --text --of 🇧🇷 🇺🇸🇺🇸🇧🇷🇺🇸`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.String("config", "", "YAML config file")
	flags.StringP("format", "o", "text", "output format: text, json or yaml")
	flags.String("log-level", "warn", "minimum log level: debug, info, warn or error")
	flags.Bool("log-json", false, "log as JSON instead of text")
	flags.BoolP("quiet", "q", false, "suppress all logging")
	flags.Bool("text", false, "treat the input as one string of grapheme clusters")

	root.AddCommand(
		a.chunkCmd(),
		a.everyCmd(),
		a.distanceCmd(),
		a.betweenCmd(),
		a.trimCmd(),
		a.sumCmd(),
		a.averageCmd(),
		a.versionCmd(),
	)

	return root
}

// setup resolves configuration in the order flag, environment, config file,
// default, then installs the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	a.config.SetEnvPrefix(envPrefix)
	a.config.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.config.AutomaticEnv()

	var bindErr error

	cmd.Flags().VisitAll(func(flag *pflag.Flag) {
		if err := a.config.BindPFlag(flag.Name, flag); err != nil && bindErr == nil {
			bindErr = err
		}
	})

	if bindErr != nil {
		return bindErr
	}

	if path := a.config.GetString("config"); path != "" {
		a.config.SetConfigFile(path)
		a.config.SetConfigType("yaml")

		if err := a.config.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	level, err := logger.ParseLevel(a.config.GetString("log-level"))
	if err != nil {
		return err
	}

	switch a.format() {
	case formatText, formatJSON, formatYAML:
	default:
		return fmt.Errorf("%w: %q", errUnknownFormat, a.format())
	}

	logger.ConfigureLoggingWithOptions(logger.Options{
		Subsystem: "seqtool",
		JSON:      a.config.GetBool("log-json"),
		MinLevel:  level,
		Output:    a.errOut,
	})

	ctx := logger.WithMuted(cmd.Context(), a.config.GetBool("quiet"))
	cmd.SetContext(logger.With(ctx, "command", cmd.Name()))

	return nil
}

func (a *app) format() string {
	return strings.ToLower(a.config.GetString("format"))
}

func (a *app) textMode() bool {
	return a.config.GetBool("text")
}

// tokens returns the positional arguments, or the words read from stdin
// when there are none.
func (a *app) tokens(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	scanner := bufio.NewScanner(a.in)
	scanner.Split(bufio.ScanWords)

	var words []string
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}

	return words, nil
}

// text returns the positional arguments joined by a space, or all of stdin
// without its trailing newline.
func (a *app) text(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(a.in)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}

	return strings.TrimRight(string(data), "\r\n"), nil
}

// source builds the container the sequence commands operate on: an array of
// tokens, or the grapheme clusters of a string in text mode.
func (a *app) source(args []string) (collection.RangeReplaceable[string], error) { //nolint:ireturn
	if a.textMode() {
		text, err := a.text(args)
		if err != nil {
			return nil, err
		}

		return graphemes.New(text), nil
	}

	tokens, err := a.tokens(args)
	if err != nil {
		return nil, err
	}

	return collection.FromSlice(tokens), nil
}
