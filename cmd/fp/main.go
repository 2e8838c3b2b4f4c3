package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"focalpick/pkg/config"
	"focalpick/pkg/export"
	"focalpick/pkg/history"
	"focalpick/pkg/loader"
	"focalpick/pkg/model"
	"focalpick/pkg/ui"
	"focalpick/pkg/updater"
	"focalpick/pkg/version"
	"focalpick/pkg/watcher"
)

func main() {
	help := flag.Bool("help", false, "Show help")
	showVersion := flag.Bool("version", false, "Show version")
	dir := flag.String("dir", ".", "Media directory to open")
	doExport := flag.Bool("export", false, "Export crop previews and exit")
	doPreview := flag.Bool("preview", false, "Serve the exported bundle over HTTP and exit")
	flag.Parse()

	if *help {
		fmt.Println("Usage: fp [options]")
		fmt.Println("\nA terminal focal point picker for images.")
		flag.PrintDefaults()
		os.Exit(0)
	}

	if *showVersion {
		fmt.Println("fp version " + version.Version)
		os.Exit(0)
	}

	cfgPath, _ := config.DefaultPath()
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	items, err := loader.LoadMedia(*dir)
	if err != nil {
		fmt.Printf("Error loading media: %v\n", err)
		os.Exit(1)
	}

	if *doExport {
		runExport(items, *dir, cfg)
		return
	}

	if *doPreview {
		bundlePath := filepath.Join(*dir, cfg.ExportDir)
		if err := export.StartPreview(bundlePath); err != nil {
			fmt.Printf("Error serving preview: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Println("fp needs a terminal; use -export for headless runs.")
		os.Exit(1)
	}

	if len(items) == 0 {
		fmt.Printf("No images found in %s.\n", *dir)
		os.Exit(0)
	}

	if tag, url, err := updater.CheckForUpdates(); err == nil && tag != "" {
		fmt.Printf("Update available: %s (%s)\n", tag, url)
	}

	dbPath := cfg.HistoryDB
	if dbPath == "" {
		if configDir, err := os.UserConfigDir(); err == nil {
			dbPath = filepath.Join(configDir, "focalpick", "history.db")
		}
	}

	var db *history.DB
	if dbPath != "" {
		if db, err = history.OpenDB(dbPath); err != nil {
			// History is an aid, not a requirement; run without it.
			fmt.Printf("Warning: history unavailable: %v\n", err)
			db = nil
		} else {
			defer db.Close()
		}
	}

	m := ui.NewModel(items, *dir, cfg, db)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())

	if cfg.Watch {
		w, err := watcher.Watch(*dir, func() {
			p.Send(ui.ReloadMsg{})
		})
		if err != nil {
			fmt.Printf("Warning: file watching unavailable: %v\n", err)
		} else {
			defer w.Close()
		}
	}

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running focalpick: %v\n", err)
		os.Exit(1)
	}
}

// runExport writes the crop preview bundle. When attached to a terminal it
// confirms the output settings first.
func runExport(items []model.Media, dir string, cfg config.Config) {
	opts := export.Options{
		OutDir: filepath.Join(dir, cfg.ExportDir),
		Width:  cfg.ExportWidth,
		Height: cfg.ExportHeight,
	}

	if term.IsTerminal(int(os.Stdout.Fd())) {
		confirmed := true
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Export %d crops at %dx%d to %s?",
						len(items), opts.Width, opts.Height, opts.OutDir)).
					Value(&confirmed),
			),
		)
		if err := form.Run(); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		if !confirmed {
			fmt.Println("Export cancelled.")
			return
		}
	}

	res, err := export.Bundle(items, opts)
	if err != nil {
		fmt.Printf("Error exporting: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Exported %d crops (%d skipped, no focal point) to %s\n",
		res.Exported, res.Skipped, opts.OutDir)
}
