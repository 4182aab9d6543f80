package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/davecgh/go-spew/spew"

	"github.com/hanpama/graphbind/internal/bind"
	"github.com/hanpama/graphbind/internal/eventbus"
	"github.com/hanpama/graphbind/internal/language"
	"github.com/hanpama/graphbind/internal/otel"
	"github.com/hanpama/graphbind/internal/reqid"
)

const rootUsage = `graphbind — exact-size array & box binding tools

USAGE:
  graphbind <command> [flags]

COMMANDS:
  decode           Decode a GraphQL input literal through a binder stack
  describe         Print the type descriptor for a type expression
  help             Show help for any command
`

const decodeUsage = `decode FLAGS:
  -type <expr>            Binder type expression (required). Examples:
                            [Int;3]        array of exactly three Ints
                            &String        boxed String
                            [[ID;2];2]     2x2 array of IDs
  -value <literal>        GraphQL input literal to decode (required)
  -dump                   Dump the decoded native value instead of the
                          re-encoded literal
  -otel.endpoint <addr>   OTLP collector endpoint
  -otel.service <name>    OpenTelemetry service name (default: graphbind)
`

const describeUsage = `describe FLAGS:
  -type <expr>   Binder type expression (required)
`

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, out io.Writer) error {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, rootUsage)
		return fmt.Errorf("missing command")
	}

	cmd := args[0]
	cmdArgs := args[1:]
	switch cmd {
	case "decode":
		return runDecode(cmdArgs, out)
	case "describe":
		return runDescribe(cmdArgs, out)
	case "help":
		return runHelp(cmdArgs, out)
	default:
		fmt.Fprint(os.Stderr, rootUsage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func runHelp(args []string, out io.Writer) error {
	if len(args) == 0 {
		fmt.Fprint(out, rootUsage)
		return nil
	}
	switch args[0] {
	case "decode":
		fmt.Fprint(out, decodeUsage)
	case "describe":
		fmt.Fprint(out, describeUsage)
	default:
		fmt.Fprint(out, rootUsage)
	}
	return nil
}

func runDecode(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	fs.SetOutput(new(bytes.Buffer)) // silence automatic output
	typeExpr := fs.String("type", "", "")
	valueLit := fs.String("value", "", "")
	dump := fs.Bool("dump", false, "")
	otelEndpoint := fs.String("otel.endpoint", "", "")
	otelService := fs.String("otel.service", "graphbind", "")
	if err := fs.Parse(args); err != nil {
		fmt.Fprint(os.Stderr, decodeUsage)
		return err
	}
	if *typeExpr == "" || *valueLit == "" {
		fmt.Fprint(os.Stderr, decodeUsage)
		return fmt.Errorf("-type and -value are required")
	}

	binder, err := parseTypeExpr(*typeExpr)
	if err != nil {
		return err
	}
	value, err := language.ParseValue(*valueLit)
	if err != nil {
		return err
	}

	ctx, _ := reqid.NewContext(context.Background())
	if *otelEndpoint != "" {
		eventbus.Use(eventbus.New())
		shutdown, err := otel.Setup(*otelEndpoint, *otelService)
		if err != nil {
			return err
		}
		defer shutdown(context.Background())
	}

	decoded, err := bind.Decode(ctx, binder, value)
	if err != nil {
		return err
	}
	if *dump {
		spew.Fdump(out, decoded)
		return nil
	}
	fmt.Fprintln(out, binder.ToInputValue(decoded).String())
	return nil
}

func runDescribe(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("describe", flag.ContinueOnError)
	fs.SetOutput(new(bytes.Buffer))
	typeExpr := fs.String("type", "", "")
	if err := fs.Parse(args); err != nil {
		fmt.Fprint(os.Stderr, describeUsage)
		return err
	}
	if *typeExpr == "" {
		fmt.Fprint(os.Stderr, describeUsage)
		return fmt.Errorf("-type is required")
	}
	binder, err := parseTypeExpr(*typeExpr)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, binder.Describe(nil).String())
	return nil
}
