// Scribemark CLI — command-line interface for transcript import,
// highlight export, and coverage reports.
//
// Usage:
//
//	scribemark <command> [flags]
//
// Commands:
//
//	import    Import a transcript JSON file as a new project
//	suggest   Load suggested highlights into a project
//	export    Export a project's highlights as JSON
//	restore   Load a previously exported highlight list back into a project
//	stats     Print a coverage report for a project
//	projects  List all projects
//	version   Print version information
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/leomorpho/scribemark/internal/analysis"
	"github.com/leomorpho/scribemark/internal/database"
	"github.com/leomorpho/scribemark/internal/highlight"
	"github.com/leomorpho/scribemark/internal/importer"
	"github.com/leomorpho/scribemark/pkg/jsonutil"
	"github.com/leomorpho/scribemark/pkg/timeutil"
)

var (
	Version   = "0.1.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	homeDir, _ := os.UserHomeDir()
	defaultDB := filepath.Join(homeDir, ".scribemark", "scribemark.db")

	switch os.Args[1] {
	case "import":
		cmdImport(defaultDB)
	case "suggest":
		cmdSuggest(defaultDB)
	case "export":
		cmdExport(defaultDB)
	case "restore":
		cmdRestore(defaultDB)
	case "stats":
		cmdStats(defaultDB)
	case "projects":
		cmdProjects(defaultDB)
	case "version":
		fmt.Printf("Scribemark v%s (commit: %s, built: %s)\n", Version, GitCommit, BuildTime)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`Scribemark — transcript highlighting in your terminal

Usage:
  scribemark <command> [flags]

Commands:
  import     Import a transcript JSON file as a new project
  suggest    Load suggested highlights into a project
  export     Export a project's highlights as JSON
  restore    Load a previously exported highlight list back into a project
  stats      Print a coverage report for a project
  projects   List all projects
  version    Print version information

Run 'scribemark <command> --help' for details on each command.`)
}

// openStore opens the SQLite store, creating the parent directory on
// first use.
func openStore(dbPath string) *database.DBService {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		log.Fatalf("Failed to create database directory: %v", err)
	}
	store, err := database.NewDBService(dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	return store
}

// cmdImport loads a transcript file and creates a project around it.
func cmdImport(defaultDB string) {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	name := fs.String("name", "", "Project name (default: transcript filename)")
	dbPath := fs.String("db", defaultDB, "Path to SQLite database")
	fs.Parse(os.Args[2:])

	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one transcript file is required")
		fs.Usage()
		os.Exit(1)
	}
	path := fs.Arg(0)

	projectName := *name
	if projectName == "" {
		base := filepath.Base(path)
		projectName = base[:len(base)-len(filepath.Ext(base))]
	}

	store := openStore(*dbPath)
	defer store.Close()

	project, err := importer.ImportFile(store, projectName, path)
	if err != nil {
		log.Fatalf("Import failed: %v", err)
	}

	tokens, err := store.LoadTokens(project.ProjectID)
	if err != nil {
		log.Fatalf("Failed to read back tokens: %v", err)
	}

	fmt.Printf("Imported %q: %d tokens, project %s\n",
		projectName, len(tokens), project.ProjectID)
}

// cmdSuggest loads machine-generated highlight suggestions into an
// existing project.
func cmdSuggest(defaultDB string) {
	fs := flag.NewFlagSet("suggest", flag.ExitOnError)
	projectID := fs.String("project", "", "Project ID (required)")
	dbPath := fs.String("db", defaultDB, "Path to SQLite database")
	fs.Parse(os.Args[2:])

	if *projectID == "" || fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: --project and a suggestions file are required")
		fs.Usage()
		os.Exit(1)
	}

	store := openStore(*dbPath)
	defer store.Close()

	count, err := importer.ImportSuggestions(store, *projectID, fs.Arg(0))
	if err != nil {
		log.Fatalf("Loading suggestions failed: %v", err)
	}
	fmt.Printf("Loaded %d suggestions into project %s\n", count, *projectID)
}

// cmdExport dumps a project's highlights (and optionally tokens) as JSON.
func cmdExport(defaultDB string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	projectID := fs.String("project", "", "Project ID (required)")
	dbPath := fs.String("db", defaultDB, "Path to SQLite database")
	withTokens := fs.Bool("tokens", false, "Include the token sequence")
	fs.Parse(os.Args[2:])

	if *projectID == "" {
		fmt.Fprintln(os.Stderr, "Error: --project is required")
		fs.Usage()
		os.Exit(1)
	}

	store := openStore(*dbPath)
	defer store.Close()

	project, err := store.GetProject(*projectID)
	if err != nil {
		log.Fatalf("Export failed: %v", err)
	}
	highlights, err := store.LoadHighlights(*projectID)
	if err != nil {
		log.Fatalf("Export failed: %v", err)
	}

	out := map[string]interface{}{
		"project":    project,
		"highlights": highlights,
	}
	if *withTokens {
		tokens, err := store.LoadTokens(*projectID)
		if err != nil {
			log.Fatalf("Export failed: %v", err)
		}
		out["tokens"] = tokens
	}

	b, err := jsonutil.MarshalIndented(out)
	if err != nil {
		log.Fatalf("Export failed: %v", err)
	}
	os.Stdout.Write(b)
}

// cmdRestore loads an exported highlight list back into a project,
// replacing whatever is stored.
func cmdRestore(defaultDB string) {
	fs := flag.NewFlagSet("restore", flag.ExitOnError)
	projectID := fs.String("project", "", "Project ID (required)")
	dbPath := fs.String("db", defaultDB, "Path to SQLite database")
	fs.Parse(os.Args[2:])

	if *projectID == "" || fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: --project and a highlights file are required")
		fs.Usage()
		os.Exit(1)
	}

	store := openStore(*dbPath)
	defer store.Close()

	count, err := importer.ImportHighlights(store, *projectID, fs.Arg(0))
	if err != nil {
		log.Fatalf("Restore failed: %v", err)
	}
	fmt.Printf("Restored %d highlights into project %s\n", count, *projectID)
}

// cmdStats prints the coverage report for a project.
func cmdStats(defaultDB string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	projectID := fs.String("project", "", "Project ID (required)")
	dbPath := fs.String("db", defaultDB, "Path to SQLite database")
	outputFormat := fs.String("format", "markdown", "Output format: markdown, json")
	fs.Parse(os.Args[2:])

	if *projectID == "" {
		fmt.Fprintln(os.Stderr, "Error: --project is required")
		fs.Usage()
		os.Exit(1)
	}

	store := openStore(*dbPath)
	defer store.Close()

	project, err := store.GetProject(*projectID)
	if err != nil {
		log.Fatalf("Stats failed: %v", err)
	}
	tokens, err := store.LoadTokens(*projectID)
	if err != nil {
		log.Fatalf("Stats failed: %v", err)
	}
	wire, err := store.LoadHighlights(*projectID)
	if err != nil {
		log.Fatalf("Stats failed: %v", err)
	}

	report := analysis.Coverage(tokens, highlight.FromWire(wire))

	switch *outputFormat {
	case "json":
		b, err := jsonutil.MarshalIndented(report)
		if err != nil {
			log.Fatalf("Stats failed: %v", err)
		}
		os.Stdout.Write(b)
	case "markdown":
		fmt.Print(analysis.FormatReport(project.Name, report))
	default:
		fmt.Fprintf(os.Stderr, "Unknown format: %s\n", *outputFormat)
		os.Exit(1)
	}
}

// cmdProjects lists all projects, most recent first.
func cmdProjects(defaultDB string) {
	fs := flag.NewFlagSet("projects", flag.ExitOnError)
	dbPath := fs.String("db", defaultDB, "Path to SQLite database")
	fs.Parse(os.Args[2:])

	store := openStore(*dbPath)
	defer store.Close()

	projects, err := store.ListProjects()
	if err != nil {
		log.Fatalf("Listing projects failed: %v", err)
	}
	if len(projects) == 0 {
		fmt.Println("No projects. Import a transcript with: scribemark import <file>")
		return
	}

	for _, p := range projects {
		fmt.Printf("%-36s  %-24s  %s\n",
			p.ProjectID, p.Name, timeutil.RelativeTime(time.Unix(0, p.CreatedAt)))
	}
}
