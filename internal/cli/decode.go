package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/example/azmodels/internal/fixture"
	"github.com/example/azmodels/internal/registry"
	"github.com/example/azmodels/pkg/unions"
)

// ErrUnknownEntry is returned for a name the registry does not know.
var ErrUnknownEntry = errors.New("unknown entry")

func lookup(name string) (registry.Entry, error) {
	e, ok := registry.Lookup(name)
	if !ok {
		return registry.Entry{}, fmt.Errorf("%w %q; run 'azmodels families' for the list", ErrUnknownEntry, name)
	}
	return e, nil
}

// category names the decode failure class of err.
func category(err error) string {
	switch {
	case errors.Is(err, unions.ErrMalformedDiscriminator):
		return "malformed"
	case errors.Is(err, unions.ErrUnrecognizedDiscriminator):
		return "unrecognized"
	case errors.Is(err, unions.ErrRequiredField):
		return "field"
	default:
		var fe *unions.FieldError
		if errors.As(err, &fe) {
			return "field"
		}
		return "input"
	}
}

func newDecodeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "decode <name> <fixture>",
		Short: "Decode a YAML or JSON fixture and print it re-encoded",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := lookup(args[0])
			if err != nil {
				return err
			}
			path := a.config.fixturePath(args[1])
			data, err := fixture.Load(path)
			if err != nil {
				return err
			}

			v, err := e.Decode(data)
			if err != nil {
				a.logger.Debug("decode failed", zap.String("entry", e.Name), zap.String("fixture", path), zap.Error(err))
				return fmt.Errorf("%s (%s): %w", path, category(err), err)
			}
			return printDecoded(cmd.OutOrStdout(), e, v)
		},
	}
}

func printDecoded(w io.Writer, e registry.Entry, v any) error {
	switch {
	case e.Family():
		fmt.Fprintf(w, "%s: %s\n", e.Field, e.Tag(v))
	case e.Kind == registry.Page:
		fmt.Fprintf(w, "items: %d\n", len(e.Items(v)))
		if c, ok := v.(interface{ ContinuationToken() (string, bool) }); ok {
			next, more := c.ContinuationToken()
			fmt.Fprintf(w, "next: %q more: %t\n", next, more)
		}
	}

	out, err := e.Encode(v)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, out, "", "  "); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err = buf.WriteTo(w)
	return err
}

func newRoundTripCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "roundtrip <name> <fixture>...",
		Short: "Check that fixtures survive decode and encode unchanged",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := lookup(args[0])
			if err != nil {
				return err
			}

			var errs error
			for _, arg := range args[1:] {
				path := a.config.fixturePath(arg)
				diff, err := roundTrip(e, path)
				switch {
				case err != nil:
					errs = multierr.Append(errs, fmt.Errorf("%s: %w", path, err))
				case diff != "":
					errs = multierr.Append(errs, fmt.Errorf("%s: round trip changed the document (-input +output):\n%s", path, diff))
				default:
					fmt.Fprintf(cmd.OutOrStdout(), "ok %s\n", path)
				}
			}
			if errs != nil {
				a.logger.Warn("round trip failed", zap.String("entry", e.Name), zap.Int("failures", len(multierr.Errors(errs))))
			}
			return errs
		},
	}
}

// roundTrip decodes the fixture at path and encodes it again. It returns the
// difference between the two documents, compared as JSON values.
func roundTrip(e registry.Entry, path string) (string, error) {
	data, err := fixture.Load(path)
	if err != nil {
		return "", err
	}
	v, err := e.Decode(data)
	if err != nil {
		return "", fmt.Errorf("decode (%s): %w", category(err), err)
	}
	out, err := e.Encode(v)
	if err != nil {
		return "", fmt.Errorf("encode: %w", err)
	}

	var before, after any
	if err := json.Unmarshal(data, &before); err != nil {
		return "", err
	}
	if err := json.Unmarshal(out, &after); err != nil {
		return "", err
	}
	return cmp.Diff(before, after), nil
}
