package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/rsunkara/eci-extract/internal/config"
	"github.com/rsunkara/eci-extract/internal/inspect"
)

var (
	pages      = flag.Int("pages", config.DefaultInspectPages, "Number of leading pages to inspect")
	engineName = flag.String("engine", config.EngineAuto, "PDF engine: auto, plumber or ledongthuc")
	asJSON     = flag.Bool("json", false, "Emit the report as JSON instead of text")
	help       = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	if *help {
		printHelp()
		return
	}

	pdfPath := config.DefaultPDFPath
	if flag.NArg() > 0 {
		pdfPath = flag.Arg(0)
	}

	if _, err := os.Stat(pdfPath); os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Error: File not found: %s\n", pdfPath)
		os.Exit(1)
	}

	if *pages < 1 {
		fmt.Fprintf(os.Stderr, "Error: page count must be positive\n")
		os.Exit(1)
	}

	cfg := config.DefaultConfig()
	cfg.Mode = config.ModeInspect
	cfg.Engine = *engineName
	cfg.PDFPath = pdfPath
	cfg.InspectPages = *pages

	inspector, err := inspect.NewInspector(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	report, err := inspector.Inspect(inspect.InspectRequest{PDFPath: pdfPath, Pages: *pages})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error inspecting PDF: %v\n", err)
		os.Exit(1)
	}

	if err := outputReport(report); err != nil {
		fmt.Fprintf(os.Stderr, "Error outputting report: %v\n", err)
		os.Exit(1)
	}
}

func outputReport(report *inspect.Report) error {
	if *asJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(report)
	}

	report.Render(os.Stdout)
	return nil
}

func printHelp() {
	fmt.Println("ECI Inspect - Preview the text layer and tables of a results PDF")
	fmt.Println()
	fmt.Println("This tool shows what the extraction pipeline will see on the first pages of")
	fmt.Println("a PDF: the raw text per page, a word-count classification, and the leading")
	fmt.Println("rows of every detected table.")
	fmt.Println()
	printUsage()
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("  -pages         Number of leading pages to inspect (default 5)")
	fmt.Println("  -engine        PDF engine: auto (default), plumber, ledongthuc")
	fmt.Println("  -json          Emit the report as JSON instead of text")
	fmt.Println("  -help          Show this help message")
	fmt.Println()
	fmt.Println("PAGE CLASSIFICATIONS:")
	fmt.Println("  • text: page has a dense text layer and will be parsed")
	fmt.Println("  • sparse_text: page has little extractable text")
	fmt.Println("  • empty: no extractable text; likely a scanned page")
	fmt.Println()
	fmt.Println("EXAMPLES:")
	fmt.Println("  eci-inspect results.pdf")
	fmt.Println("  eci-inspect -pages 3 data/33-Constituency-Wise-Detailed-Result.pdf")
	fmt.Println("  eci-inspect -engine ledongthuc -json results.pdf")
}

func printUsage() {
	fmt.Println("USAGE:")
	fmt.Println("  eci-inspect [OPTIONS] [pdf_file]")
}
