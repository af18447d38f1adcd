package descriptions

// Comprehensive tool descriptions with practical examples and use cases

const (
	// Extraction Tools
	ResultsExtractDescription = `Run the full constituency-results extraction pipeline on a Form-20 style results PDF.

**When to use:** You have a detailed constituency-wise results PDF and want the structured JSON document (constituencies, candidates, vote counts, percentages) written to disk.

**Why it's useful:** Handles the whole pipeline in one call: file validation, engine selection with fallback, header and table parsing, schema validation, and the JSON write.

**Examples:**
• Full run: "Extract data/33-Constituency-Wise-Detailed-Result.pdf into election_results.json"
• Custom output: "Extract the results PDF and save the JSON as ap_2024.json"
• Re-run after fixing a file: "Validate then re-extract the corrected results PDF"

**Common workflows:**
1. Discovery: pdf_search_directory → pick the results PDF → results_extract
2. Verification: pdf_validate → results_extract → inspect the JSON output
3. Debugging: pdf_inspect to preview pages → results_extract once the layout looks right

**Best practices:** Inspect unfamiliar PDFs first; the pipeline only understands the detailed constituency-wise results layout.`

	PDFInspectDescription = `Preview the raw text and detected tables on the first pages of a PDF.

**When to use:** Before extracting from an unfamiliar PDF, or when an extraction run produced fewer constituencies than expected.

**Why it's useful:** Shows exactly what the parser will see: the text layer per page, a word-count classification, and the first rows of each detected table.

**Examples:**
• Layout check: "Inspect the first 5 pages of results.pdf to confirm the constituency banner is in the text layer"
• Scan detection: "Inspect suspicious.pdf to see whether pages classify as empty (likely scanned)"
• Table shape: "Inspect page previews to count header rows in the result tables"

**Common workflows:**
1. Pre-flight: pdf_inspect → confirm text and tables → results_extract
2. Diagnosis: extraction misses data → pdf_inspect the affected pages → adjust the source PDF
3. Engine choice: compare inspect output to decide whether table extraction is available

**Best practices:** Pages classified as "empty" contribute nothing to extraction; "sparse_text" pages often hold only page furniture.`

	PDFValidateDescription = `Verify PDF file integrity and readability before processing.

**When to use:** Before attempting to extract from any PDF file, especially in automated workflows or when handling downloaded files.

**Why it's useful:** Prevents processing errors, identifies corrupted or truncated downloads early, and reports page count and size for sanity checks.

**Examples:**
• Download verification: "Check the freshly downloaded results PDF is valid before extracting"
• Batch safety: "Validate all PDFs in data/ before bulk extraction"
• Quality control: "Verify archived-results.pdf is still readable"

**Common workflows:**
1. Automated Processing: Validate → Extract if valid → Handle errors gracefully
2. File Quality Check: Validate → Report issues → Fix or reject bad files
3. Pre-processing Pipeline: Validate → Route to inspection or extraction

**Best practices:** Always run this first in automated workflows; a passing validation also confirms the file is under the configured size limit.`

	// Search and Discovery Tools
	PDFSearchDirectoryDescription = `Discover and filter PDF files across directories with intelligent search.

**When to use:** Need to find specific PDFs by name patterns, explore the data directory, or build file inventories.

**Why it's useful:** Quickly locates relevant documents without manual browsing, supports fuzzy matching for partial names.

**Examples:**
• Find results files: "Search data/ for files containing 'constituency' or '2024'"
• Locate a state: "Find all PDF files with 'andhra' in the data directory"
• Inventory building: "List all PDFs in data/ to understand what can be extracted"

**Common workflows:**
1. Targeted Processing: Search for specific patterns → Validate matches → Extract in sequence
2. Content Discovery: Explore directory → Identify result files → Plan extraction runs
3. Batch Operations: Find files → results_extract each one

**Best practices:** Use fuzzy search for partial matches; the search is restricted to the configured data directory.`

	// Utility Tools
	ServerInfoDescription = `Get real-time server status, available tools, and system capabilities.

**When to use:** Starting work with the extraction server, troubleshooting issues, or checking available functionality.

**Why it's useful:** Provides complete overview of server capabilities, current configuration, and data directory contents for informed decision-making.

**Examples:**
• System check: "Verify server is ready and all tools are available before batch extraction"
• Troubleshooting: "Check server info to diagnose why files aren't being found"
• Capability discovery: "See all available tools and their descriptions for new projects"

**Common workflows:**
1. Session Startup: Check server info → Verify capabilities → Plan extraction approach
2. Debugging: Review server status → Check directory paths → Verify tool availability
3. Planning: Review available tools → Choose appropriate methods → Execute workflow

**Best practices:** Run at start of sessions; includes the current data directory listing for a quick overview.`
)

// ToolDescriptions maps tool names to their comprehensive descriptions
var ToolDescriptions = map[string]string{
	"results_extract":      ResultsExtractDescription,
	"pdf_inspect":          PDFInspectDescription,
	"pdf_validate":         PDFValidateDescription,
	"pdf_search_directory": PDFSearchDirectoryDescription,
	"server_info":          ServerInfoDescription,
}

// GetToolDescription returns the comprehensive description for a tool
func GetToolDescription(toolName string) string {
	if desc, exists := ToolDescriptions[toolName]; exists {
		return desc
	}
	return "Tool description not available"
}

// GetAllToolNames returns a list of all available tool names
func GetAllToolNames() []string {
	var names []string
	for name := range ToolDescriptions {
		names = append(names, name)
	}
	return names
}
