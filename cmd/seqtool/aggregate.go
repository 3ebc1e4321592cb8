package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/amp-labs/amp-collections/aggregate"
	amperrors "github.com/amp-labs/amp-collections/errors"
	"github.com/amp-labs/amp-collections/logger"
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

const (
	kindInt        = "int"
	kindFloat      = "float"
	kindDecimal    = "decimal"
	kindIntAsFloat = "int-as-float"
)

var errUnknownKind = errors.New("unknown numeric kind")

// parseAll parses every token and reports all failures together.
func parseAll[T any](tokens []string, parse func(string) (T, error)) ([]T, error) {
	values := make([]T, 0, len(tokens))
	failures := &amperrors.Collection{}

	for i, token := range tokens {
		v, err := parse(token)
		if err != nil {
			failures.Add(fmt.Errorf("token %d %q: %w", i+1, token, err))

			continue
		}

		values = append(values, v)
	}

	if failures.HasError() {
		return nil, failures.GetError()
	}

	return values, nil
}

func parseInt(token string) (int64, error) {
	return strconv.ParseInt(token, 10, 64)
}

func parseFloat(token string) (float64, error) {
	return strconv.ParseFloat(token, 64)
}

func formatFloat(v float64) json.Number {
	return json.Number(strconv.FormatFloat(v, 'f', -1, 64))
}

func formatInt(v int64) json.Number {
	return json.Number(strconv.FormatInt(v, 10))
}

// fold runs sum or average over the tokens in the requested kind. The result
// is a json.Number so every output format prints it as a number.
func fold(tokens []string, kind string, average bool) (json.Number, error) {
	switch kind {
	case kindInt:
		values, err := parseAll(tokens, parseInt)
		if err != nil {
			return "", err
		}

		if average {
			return formatInt(aggregate.AverageInt(slices.Values(values))), nil
		}

		return formatInt(aggregate.Sum(slices.Values(values))), nil
	case kindIntAsFloat:
		if !average {
			break
		}

		values, err := parseAll(tokens, parseInt)
		if err != nil {
			return "", err
		}

		return formatFloat(aggregate.AverageIntAsFloat[float64](slices.Values(values))), nil
	case kindFloat:
		values, err := parseAll(tokens, parseFloat)
		if err != nil {
			return "", err
		}

		if average {
			return formatFloat(aggregate.AverageFloat(slices.Values(values))), nil
		}

		return formatFloat(aggregate.Sum(slices.Values(values))), nil
	case kindDecimal:
		values, err := parseAll(tokens, decimal.NewFromString)
		if err != nil {
			return "", err
		}

		if average {
			return json.Number(aggregate.AverageDecimal(slices.Values(values)).String()), nil
		}

		return json.Number(aggregate.SumDecimal(slices.Values(values)).String()), nil
	}

	return "", fmt.Errorf("%w: %q", errUnknownKind, kind)
}

func (a *app) foldCmd(use, short string, average bool, kinds string) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   use + " [numbers...]",
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, err := a.tokens(args)
			if err != nil {
				return err
			}

			result, err := fold(tokens, kind, average)
			if err != nil {
				return err
			}

			logger.Get(cmd.Context()).Debug("folded input",
				"kind", kind,
				"values", humanize.Comma(int64(len(tokens))))

			return a.render(result)
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", kindInt, "numeric kind: "+kinds)

	return cmd
}

func (a *app) sumCmd() *cobra.Command {
	return a.foldCmd("sum", "Print the sum of the input numbers", false,
		"int, float or decimal")
}

func (a *app) averageCmd() *cobra.Command {
	return a.foldCmd("average", "Print the arithmetic mean of the input numbers (0 when empty)", true,
		"int (truncating), float, decimal or int-as-float")
}
