package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: svg2png [command] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Without a command, converts abel-labs-logo.svg to abel-labs-logo.png")
	fmt.Fprintln(w, "(880x240) in the executable's directory.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Convert the SVG to PNG (default)")
	fmt.Fprintln(w, "  preview    Write the HTML preview page for manual export")
	fmt.Fprintln(w, "  doctor     Check which renderers are installed")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'svg2png help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: svg2png convert [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert an SVG file to PNG at a fixed size.")
	fmt.Fprintln(w)
	printPathFlags(w)
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "  -W, --width <n>           Output width in pixels (default: 880)")
	fmt.Fprintln(w, "  -H, --height <n>          Output height in pixels (default: 240)")
	fmt.Fprintln(w, "  -r, --renderer <s>        Renderer: rsvg (default), native, browser")
	fmt.Fprintln(w, "      --timeout <d>         Render timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w, "      --strict              Native renderer rejects unsupported elements")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -v, --verbose             Show debug logs")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes: 0 success, 1 renderer missing or render failed, 2 usage error.")
}

// printPreviewUsage prints usage for the preview command.
func printPreviewUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: svg2png preview [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Write an HTML page showing the SVG at the output size.")
	fmt.Fprintln(w, "Open it in a browser and take a screenshot when no renderer is installed.")
	fmt.Fprintln(w)
	printPathFlags(w)
	fmt.Fprintln(w, "Size:")
	fmt.Fprintln(w, "  -W, --width <n>           Page width in pixels (default: 880)")
	fmt.Fprintln(w, "  -H, --height <n>          Page height in pixels (default: 240)")
}

func printPathFlags(w io.Writer) {
	fmt.Fprintln(w, "Files:")
	fmt.Fprintln(w, "  -i, --input <path>        SVG file (default: abel-labs-logo.svg)")
	fmt.Fprintln(w, "  -o, --output <path>       PNG file (default: abel-labs-logo.png)")
	fmt.Fprintln(w, "      --preview <path>      HTML page (default: render-logo.html)")
	fmt.Fprintln(w, "  -C, --dir <path>          Base directory (default: executable's directory)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w)
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "preview":
		printPreviewUsage(env.Stdout)
	case "doctor":
		fmt.Fprintln(env.Stdout, "Usage: svg2png doctor [--json]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Check renderer availability and environment.")
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: svg2png version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: svg2png help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
