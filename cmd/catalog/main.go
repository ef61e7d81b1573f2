// Command catalog prints what the library scanner finds under a directory,
// grouped the same way the site shows it.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"lingolab/internal/config"
	"lingolab/internal/library"
	"lingolab/internal/models"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("27")).
			Padding(0, 1)
	groupStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("51")).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(lipgloss.Color("244"))
	itemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			PaddingLeft(2)
	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))
)

func main() {
	root := flag.String("root", "", "Library directory (default: LIBRARY_PATH from config)")
	category := flag.String("category", "all", "Only list materials in this category (IELTS, TOEFL or all)")
	flag.Parse()

	if *root == "" {
		cfg, err := config.Load()
		if err != nil {
			slog.Error("invalid configuration", "err", err)
			os.Exit(1)
		}
		*root = cfg.LibraryPath
	}

	cat, err := library.Scan(context.Background(), *root)
	if err != nil {
		slog.Error("library scan failed", "root", *root, "err", err)
		os.Exit(1)
	}

	fmt.Println(render(cat, *category))
}

func render(cat *library.Catalog, category string) string {
	var b strings.Builder

	materials := library.FilterMaterials(cat.Materials, category)
	b.WriteString(headerStyle.Render(fmt.Sprintf("Reading materials (%d)", len(materials))))
	b.WriteString("\n")
	if len(materials) == 0 {
		b.WriteString(mutedStyle.Render("  none found"))
		b.WriteString("\n")
	}
	for _, byCategory := range splitByCategory(materials) {
		b.WriteString(groupStyle.Render(byCategory[0].Category))
		b.WriteString("\n")
		for _, m := range byCategory {
			b.WriteString(itemStyle.Render(m.Name) + " " + mutedStyle.Render(m.Path))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(headerStyle.Render(fmt.Sprintf("Listening audio (%d)", len(cat.Audio))))
	b.WriteString("\n")
	groups := library.GroupAudio(cat.Audio)
	if len(groups) == 0 {
		b.WriteString(mutedStyle.Render("  none found"))
		b.WriteString("\n")
	}
	for _, g := range groups {
		b.WriteString(groupStyle.Render(g.Key))
		b.WriteString("\n")
		for _, f := range g.Files {
			b.WriteString(itemStyle.Render("Section " + f.Section))
			b.WriteString(" " + mutedStyle.Render(f.Name))
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// splitByCategory keeps the scanner's order within each category
func splitByCategory(items []models.MaterialItem) [][]models.MaterialItem {
	var out [][]models.MaterialItem
	index := make(map[string]int)
	for _, item := range items {
		i, ok := index[item.Category]
		if !ok {
			i = len(out)
			index[item.Category] = i
			out = append(out, nil)
		}
		out[i] = append(out[i], item)
	}
	return out
}
