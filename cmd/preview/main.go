// Command preview dry-runs a recipients file: it parses the upload exactly
// like the bot would and renders the rows as a table, without sending
// anything. Useful to check a file before handing it to FraiBot.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gookit/color"
	"github.com/kelseyhightower/envconfig"
	"github.com/olekukonko/tablewriter"

	"fraibot/domain/mimetypes"
	"fraibot/services"
)

type Config struct {
	// PREVIEW_MAX_ROWS truncates the table for very large files
	MaxRows int `envconfig:"PREVIEW_MAX_ROWS" default:"50"`
	// PREVIEW_COLOURS enables colorized output for better readability
	Colours bool `envconfig:"PREVIEW_COLOURS" default:"true"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "preview error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return err
	}
	if !cfg.Colours {
		color.Disable()
	}

	if len(os.Args) < 2 {
		return fmt.Errorf("usage: preview <recipients file (.csv or .xlsx)>")
	}
	path := os.Args[1]

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	format, ok := resolveFormat(path, data)
	if !ok {
		return fmt.Errorf("unrecognized file format: %s", path)
	}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	recipients, err := services.NewTabularIngester(log).Parse(data, format)
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Correo", "Nombre", "Mensaje"})
	shown := 0
	for _, r := range recipients {
		if shown == cfg.MaxRows {
			break
		}
		table.Append([]string{r.Email, r.Name, truncate(r.Message, 60)})
		shown++
	}
	table.Render()

	color.Green.Printf("%d recipients parsed from %s (%s)\n", len(recipients), filepath.Base(path), format)
	if shown < len(recipients) {
		color.Yellow.Printf("table truncated to the first %d rows\n", shown)
	}
	return nil
}

// resolveFormat prefers the file extension, then falls back to magic bytes,
// mirroring how the bot treats a declared MIME type.
func resolveFormat(path string, data []byte) (mimetypes.MIME, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return mimetypes.TextCSV, true
	case ".xlsx":
		return mimetypes.ApplicationXLSX, true
	}
	return mimetypes.Sniff(data)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
