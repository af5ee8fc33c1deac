// Command comprehend-shape inspects API shapes and sends single calls.
//
//	comprehend-shape decode -op DetectSentiment [-output] [-validate] [file]
//	comprehend-shape enums [name]
//	comprehend-shape invoke -endpoint http://localhost:4010 -op ListEndpoints [file]
//
// A missing file or "-" reads the payload from stdin
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"comprehend/internal/core/shape"
	"comprehend/internal/core/version"
	"comprehend/internal/modkit"
	modreg "comprehend/internal/modkit/module"
	"comprehend/internal/platform/config"
	"comprehend/internal/platform/logger"
	"comprehend/internal/services/comprehend/domain"
	cmod "comprehend/internal/services/comprehend/module"
	cservice "comprehend/internal/services/comprehend/service"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return 2
	}
	var err error
	switch args[0] {
	case "decode":
		err = decode(args[1:], stdin, stdout)
	case "enums":
		err = enums(args[1:], stdout)
	case "invoke":
		err = invoke(args[1:], stdin, stdout)
	case "version", "-version", "--version":
		fmt.Fprintln(stdout, version.Info("comprehend-shape"))
	default:
		usage(stderr)
		return 2
	}
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}
	return 0
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: comprehend-shape decode|enums|invoke|version [flags]")
}

func readPayload(fs *flag.FlagSet, stdin io.Reader) ([]byte, error) {
	switch p := fs.Arg(0); p {
	case "", "-":
		return io.ReadAll(stdin)
	default:
		return os.ReadFile(p)
	}
}

func operation(name string) (domain.Operation, error) {
	op := domain.Operation(name)
	if _, _, ok := domain.Shapes(op); !ok {
		return "", fmt.Errorf("unknown operation %q", name)
	}
	return op, nil
}

// decode prints the canonical form of a payload and its hash
func decode(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	var (
		opName   = fs.String("op", "", "operation name, e.g. DetectSentiment")
		output   = fs.Bool("output", false, "treat the payload as the operation output")
		validate = fs.Bool("validate", false, "also check documented constraints")
		lenient  = fs.Bool("unknown-enums", false, "keep enum tokens the model does not define")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	op, err := operation(*opName)
	if err != nil {
		return err
	}
	payload, err := readPayload(fs, stdin)
	if err != nil {
		return err
	}

	in, out, _ := domain.Shapes(op)
	dst := in
	if *output {
		dst = out
	}
	opts := []shape.Option{shape.WithUnknownEnums(*lenient)}
	if err := shape.DecodeInto(payload, dst, opts...); err != nil {
		return err
	}
	if *validate {
		if err := shape.Validate(dst, opts...); err != nil {
			return err
		}
	}
	canon, err := shape.Canonical(dst)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%s\nhash %016x\n", canon, shape.Hash(dst))
	return nil
}

func tokens[T interface {
	~string
	Values() []T
}]() []string {
	var zero T
	vs := zero.Values()
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = string(v)
	}
	return out
}

var enumTable = map[string]func() []string{
	"LanguageCode":                         tokens[domain.LanguageCode],
	"SyntaxLanguageCode":                   tokens[domain.SyntaxLanguageCode],
	"EntityType":                           tokens[domain.EntityType],
	"SentimentType":                        tokens[domain.SentimentType],
	"PartOfSpeechTagType":                  tokens[domain.PartOfSpeechTagType],
	"PiiEntityType":                        tokens[domain.PiiEntityType],
	"ToxicContentType":                     tokens[domain.ToxicContentType],
	"TargetedSentimentEntityType":          tokens[domain.TargetedSentimentEntityType],
	"JobStatus":                            tokens[domain.JobStatus],
	"ModelStatus":                          tokens[domain.ModelStatus],
	"EndpointStatus":                       tokens[domain.EndpointStatus],
	"FlywheelStatus":                       tokens[domain.FlywheelStatus],
	"ModelType":                            tokens[domain.ModelType],
	"InputFormat":                          tokens[domain.InputFormat],
	"DocumentClassifierMode":               tokens[domain.DocumentClassifierMode],
	"DocumentClassifierDataFormat":         tokens[domain.DocumentClassifierDataFormat],
	"DocumentClassifierDocumentTypeFormat": tokens[domain.DocumentClassifierDocumentTypeFormat],
	"DocumentReadAction":                   tokens[domain.DocumentReadAction],
	"DocumentReadMode":                     tokens[domain.DocumentReadMode],
	"DocumentReadFeatureTypes":             tokens[domain.DocumentReadFeatureTypes],
	"DocumentType":                         tokens[domain.DocumentType],
	"PageBasedErrorCode":                   tokens[domain.PageBasedErrorCode],
	"PageBasedWarning":                     tokens[domain.PageBasedWarning],
	"PiiEntitiesDetectionMode":             tokens[domain.PiiEntitiesDetectionMode],
	"PiiEntitiesDetectionMaskMode":         tokens[domain.PiiEntitiesDetectionMaskMode],
	"InvalidRequestReason":                 tokens[domain.InvalidRequestReason],
	"InvalidRequestDetailReason":           tokens[domain.InvalidRequestDetailReason],
	"Split":                                tokens[domain.Split],
	"ErrorKind":                            tokens[domain.ErrorKind],
	"Operation":                            tokens[domain.Operation],
}

// enums lists enum names, or the tokens of one enum
func enums(args []string, stdout io.Writer) error {
	if len(args) == 0 {
		names := make([]string, 0, len(enumTable))
		for n := range enumTable {
			names = append(names, n)
		}
		slices.Sort(names)
		fmt.Fprintln(stdout, strings.Join(names, "\n"))
		return nil
	}
	fn, ok := enumTable[args[0]]
	if !ok {
		return fmt.Errorf("unknown enum %q", args[0])
	}
	fmt.Fprintln(stdout, strings.Join(fn(), "\n"))
	return nil
}

// invoke sends one payload through the client and prints the decoded output
func invoke(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("invoke", flag.ContinueOnError)
	var (
		endpoint = fs.String("endpoint", "", "service endpoint, overrides COMPREHEND_ENDPOINT")
		opName   = fs.String("op", "", "operation name")
		timeout  = fs.Duration("timeout", 30*time.Second, "call timeout")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	op, err := operation(*opName)
	if err != nil {
		return err
	}
	payload, err := readPayload(fs, stdin)
	if err != nil {
		return err
	}

	// flags reach the module through its own COMPREHEND_* settings
	if *endpoint != "" {
		_ = os.Setenv("COMPREHEND_ENDPOINT", *endpoint)
	}
	m, err := cmod.New(modkit.Deps{Log: *logger.Named("shape"), Cfg: config.New()})
	if err != nil {
		return err
	}
	client := modreg.MustPortsOf[*cservice.Client](m)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()
	out, err := client.Call(ctx, op, payload)
	if err != nil {
		return err
	}
	b, err := shape.Canonical(out)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%s\n", b)
	return nil
}
