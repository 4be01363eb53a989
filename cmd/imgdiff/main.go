package main

import (
	"context"
	"fmt"
	"image/color"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/pixelproof/imgdiff/internal/diff"
	"github.com/pixelproof/imgdiff/internal/report"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func usage(out *os.File) {
	fmt.Fprintf(out, "Usage: %s <image1> <image2> [options]\n", os.Args[0])
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Options:")
	fmt.Fprintln(out, "  --output=<path>          Save diff output to specified path")
	fmt.Fprintln(out, "  --json                   Output results in JSON format")
	fmt.Fprintln(out, "  --threshold=<value>      Difference threshold (default: 0.1)")
	fmt.Fprintln(out, "  --include-aa             Count anti-aliased pixels as differences")
	fmt.Fprintln(out, "  --alpha=<value>          Alpha value for output (default: 0.1)")
	fmt.Fprintln(out, "  --aa-color=<hex>         Highlight color for anti-aliased pixels (default: ffff00)")
	fmt.Fprintln(out, "  --diff-color=<hex>       Highlight color for different pixels (default: ff00ff)")
	fmt.Fprintln(out, "  --diff-color-alt=<hex>   Separate highlight for pixels that got darker")
	fmt.Fprintln(out, "  --blur=<sigma>           Gaussian blur applied to both inputs before comparing")
	fmt.Fprintln(out, "  --workers=<n>            Worker goroutines for the pixel pass (default: all CPUs)")
	fmt.Fprintln(out, "  --regions                Report bounding boxes of changed areas")
	fmt.Fprintln(out, "  --version, -v            Print version information")
	fmt.Fprintln(out, "  --help, -h               Print this help message")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Environment variables:")
	fmt.Fprintln(out, "  IMGDIFF_LOG_LEVEL=debug    Enable debug logging")
}

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("imgdiff %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			usage(os.Stdout)
			return
		}
	}

	// Logging goes to stderr; stdout carries the result.
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	req, jsonOutput, err := parseArgs(os.Args[1:])
	if err != nil {
		result := report.Failed(err, 0)
		if jsonOutput {
			result.WriteJSON(os.Stdout)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr)
			usage(os.Stderr)
		}
		os.Exit(1)
	}

	result := report.Run(context.Background(), req)

	if jsonOutput {
		result.WriteJSON(os.Stdout)
	} else if result.Success {
		result.WriteText(os.Stdout)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", result.Error)
	}

	os.Exit(result.ExitCode())
}

// parseArgs interprets the command line: two positional image paths followed
// by --key=value options. The JSON flag is returned separately because
// argument errors must still honor it.
func parseArgs(args []string) (req report.Request, jsonOutput bool, err error) {
	req.Options = diff.DefaultOptions()

	for _, arg := range args {
		if arg == "--json" {
			jsonOutput = true
		}
	}

	var positional []string
	for _, arg := range args {
		switch {
		case arg == "--json":
			// Handled above.
		case arg == "--include-aa":
			req.Options.IncludeAA = true
		case arg == "--regions":
			req.ReportRegions = true
		case strings.HasPrefix(arg, "--threshold="):
			req.Options.Threshold, err = parseFloatArg(arg)
		case strings.HasPrefix(arg, "--alpha="):
			req.Options.Alpha, err = parseFloatArg(arg)
		case strings.HasPrefix(arg, "--blur="):
			req.BlurRadius, err = parseFloatArg(arg)
		case strings.HasPrefix(arg, "--workers="):
			req.Options.Workers, err = parseIntArg(arg)
		case strings.HasPrefix(arg, "--output="):
			req.OutputPath = argValue(arg)
		case strings.HasPrefix(arg, "--aa-color="):
			req.Options.AAColor, err = diff.ParseHexColor(argValue(arg))
		case strings.HasPrefix(arg, "--diff-color="):
			req.Options.DiffColor, err = diff.ParseHexColor(argValue(arg))
		case strings.HasPrefix(arg, "--diff-color-alt="):
			var c color.NRGBA
			c, err = diff.ParseHexColor(argValue(arg))
			req.Options.DiffColorAlt = &c
		case strings.HasPrefix(arg, "--"):
			err = fmt.Errorf("unknown option: %s", arg)
		default:
			positional = append(positional, arg)
		}
		if err != nil {
			return req, jsonOutput, err
		}
	}

	if len(positional) != 2 {
		return req, jsonOutput, fmt.Errorf("expected two image paths, got %d", len(positional))
	}
	req.PathA = positional[0]
	req.PathB = positional[1]

	return req, jsonOutput, nil
}

func argValue(arg string) string {
	_, value, _ := strings.Cut(arg, "=")
	return value
}

func parseFloatArg(arg string) (float64, error) {
	v, err := strconv.ParseFloat(argValue(arg), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %w", strings.SplitN(arg, "=", 2)[0], err)
	}
	return v, nil
}

func parseIntArg(arg string) (int, error) {
	v, err := strconv.Atoi(argValue(arg))
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %w", strings.SplitN(arg, "=", 2)[0], err)
	}
	return v, nil
}
