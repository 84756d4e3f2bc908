// Scribemark TUI — interactive transcript highlighter.
//
// Usage:
//
//	scribemark-tui [flags]
//
// Flags:
//
//	--db    Path to SQLite database file (default: ~/.scribemark/scribemark.db)
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/leomorpho/scribemark/internal/database"
	"github.com/leomorpho/scribemark/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	homeDir, _ := os.UserHomeDir()
	defaultDB := filepath.Join(homeDir, ".scribemark", "scribemark.db")

	dbPath := flag.String("db", defaultDB, "Path to SQLite database file")
	flag.Parse()

	if err := os.MkdirAll(filepath.Dir(*dbPath), 0o755); err != nil {
		log.Fatalf("Failed to create database directory: %v", err)
	}

	store, err := database.NewDBService(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open database at %s: %v\n"+
			"Import a transcript first with: scribemark import <file>", *dbPath, err)
	}
	defer store.Close()

	model := tui.NewModel(store)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
