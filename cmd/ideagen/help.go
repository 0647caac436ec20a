package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: ideagen <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  generate   Generate a startup ideas report with the model API")
	fmt.Fprintln(w, "  render     Render markdown files into message chunks")
	fmt.Fprintln(w, "  example    Render the bundled example report")
	fmt.Fprintln(w, "  catalog    List niche, budget and market keys")
	fmt.Fprintln(w, "  config     Print the effective configuration")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'ideagen help <command>' for details on a specific command.")
}

// printCommonUsage prints the flags shared by every command.
func printCommonUsage(w io.Writer) {
	fmt.Fprintln(w, "Common:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom prompts, samples and catalog")
	fmt.Fprintln(w, "      --log-level <s>       Log level: debug, info, warn, error")
	fmt.Fprintln(w, "      --log-json            Log as JSON")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug logs and timing")
}

// printOutputUsage prints the chunk output flags.
func printOutputUsage(w io.Writer) {
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <dir>        Write NAME.NN.html chunk files to dir")
	fmt.Fprintln(w, "  -m, --max-length <n>      Max characters per chunk (default 4000)")
	fmt.Fprintln(w, "      --preview <file>      Write a side-by-side HTML preview")
}

// printRenderUsage prints usage for the render command.
func printRenderUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: ideagen render [input] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render markdown into message-sized HTML chunks.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    File or directory of .md/.markdown/.txt files (default: stdin)")
	fmt.Fprintln(w)
	printOutputUsage(w)
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers for directories (0 = auto)")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printGenerateUsage prints usage for the generate command.
func printGenerateUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: ideagen generate --niche <s> --budget <s> --market <s> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Ask the model for startup ideas and print the rendered report.")
	fmt.Fprintln(w, "Values may be catalog keys (see 'ideagen catalog') or free text.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Request:")
	fmt.Fprintln(w, "  -n, --niche <s>           Niche")
	fmt.Fprintln(w, "  -b, --budget <s>          Budget")
	fmt.Fprintln(w, "      --market <s>          Target market")
	fmt.Fprintln(w, "  -i, --ideas <n>           Number of ideas, 3-5 (default 4)")
	fmt.Fprintln(w, "  -f, --format <s>          Report format: detailed, short")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Model:")
	fmt.Fprintln(w, "      --model <s>           Chat model name")
	fmt.Fprintln(w, "      --base-url <url>      OpenAI-compatible API base URL")
	fmt.Fprintln(w, "  -t, --timeout <d>         Request timeout (e.g., 90s, 2m)")
	fmt.Fprintln(w)
	printOutputUsage(w)
	fmt.Fprintln(w, "      --name <pattern>      Chunk file name (default report-{iso})")
	fmt.Fprintln(w, "                            Stamps: {iso}, {compact}, {time} or tokens")
	fmt.Fprintln(w, "                            YYYY, YY, MMMM, MMM, MM, M, DD, D, hh, mm, ss")
	fmt.Fprintln(w)
	printCommonUsage(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "The API key is read from CEREBRAS_API_KEY or IDEAGEN_API_KEY.")
}

// printExampleUsage prints usage for the example command.
func printExampleUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: ideagen example [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render the bundled example report without calling the model.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  -f, --format <s>          Print as html (default) or markdown")
	fmt.Fprintln(w)
	printOutputUsage(w)
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printCatalogUsage prints usage for the catalog command.
func printCatalogUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: ideagen catalog [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "List the keys accepted by generate.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  -k, --kind <s>            Only niches, budgets or markets")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printConfigUsage prints usage for the config command.
func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: ideagen config [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the configuration after applying the config file, IDEAGEN_*")
	fmt.Fprintln(w, "environment variables and flags.")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// commandUsage maps a command name to its usage printer.
var commandUsage = map[string]func(io.Writer){
	"render":   printRenderUsage,
	"generate": printGenerateUsage,
	"example":  printExampleUsage,
	"catalog":  printCatalogUsage,
	"config":   printConfigUsage,
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return nil
	}

	usage, ok := commandUsage[args[0]]
	if !ok {
		if isCommand(args[0]) {
			printUsage(env.Stdout)
			return nil
		}
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}
	usage(env.Stdout)
	return nil
}
