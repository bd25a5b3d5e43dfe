// Command swagger2postman maakt een Postman collectie van de Swagger-UI op een URL.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/developer-overheid-nl/don-swagger-postman/pkg/api_client/config"
	"github.com/developer-overheid-nl/don-swagger-postman/pkg/api_client/helper/logger"
	"github.com/developer-overheid-nl/don-swagger-postman/pkg/api_client/helper/openapi"
	"github.com/developer-overheid-nl/don-swagger-postman/pkg/api_client/services"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("swagger2postman", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Generate Postman Collection from Swagger/OpenAPI documentation")
		fmt.Fprintln(stderr, "\nUsage: swagger2postman -u <url> [-o <file>] [-s <jspath>] [-v]")
		fs.PrintDefaults()
	}

	var baseURL, output, swaggerPath string
	var verbose bool
	fs.StringVar(&baseURL, "u", "", "Base URL to API documentation (required)")
	fs.StringVar(&baseURL, "url", "", "alias of -u")
	fs.StringVar(&output, "o", "", "Output file name")
	fs.StringVar(&output, "output", "", "alias of -o")
	fs.StringVar(&swaggerPath, "s", "", "Custom path to swagger JS file (default: swagger-ui-init.js)")
	fs.StringVar(&swaggerPath, "swagger", "", "alias of -s")
	fs.BoolVar(&verbose, "v", false, "Enable verbose output")
	fs.BoolVar(&verbose, "verbose", false, "alias of -v")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if strings.TrimSpace(baseURL) == "" {
		fmt.Fprintln(stderr, "flag -u/--url is verplicht")
		fs.Usage()
		return 2
	}

	cfg := config.Load()
	level := "warn"
	if verbose {
		level = "debug"
	}
	logger.InitWith(stderr, level, false)

	opts := cfg.ConvertOptions()
	if swaggerPath != "" {
		opts.SwaggerPath = swaggerPath
	}
	svc := services.NewSwaggerUIService(services.NewHTTPClient(cfg.FetchTimeout), services.NewPostmanService(opts), opts)

	if err := generate(ctx, svc, baseURL, output, stdout); err != nil {
		fmt.Fprintf(stdout, "Error: %v\n", err)
		if verbose {
			printTrace(stdout, err)
		}
		return 1
	}
	return 0
}

func generate(ctx context.Context, svc *services.SwaggerUIService, baseURL, output string, stdout io.Writer) error {
	col, err := svc.Generate(ctx, baseURL)
	if err != nil {
		return err
	}
	if output == "" {
		output = services.DefaultOutputName(baseURL)
	}
	if err := services.WriteCollection(output, col); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Collection saved to %s\n", output)
	return nil
}

// printTrace schrijft de volledige foutketen, inclusief JSON context bij parsefouten
func printTrace(w io.Writer, err error) {
	fmt.Fprintln(w, "Trace:")
	for depth := 0; err != nil; depth++ {
		fmt.Fprintf(w, "%s%T: %v\n", strings.Repeat("  ", depth), err, err)
		var parseErr *openapi.ParseError
		if errors.As(err, &parseErr) && depth == 0 {
			fmt.Fprintf(w, "  offset: %d\n  context: %s\n", parseErr.Offset, parseErr.Context)
		}
		err = errors.Unwrap(err)
	}
}
