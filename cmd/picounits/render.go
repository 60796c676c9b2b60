package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/wgbowley/PicoUnits/config"
	"github.com/wgbowley/PicoUnits/picounits"
	"github.com/wgbowley/PicoUnits/picounits/uiv"
)

// renderDocument prints a .uiv document section by section, quantities
// normalized to their display prefix and units spelled per the project
// preferences.
func renderDocument(w io.Writer, doc *uiv.Document, prefs *config.Preferences) {
	header := color.New(color.FgCyan, color.Bold)

	for _, name := range doc.Sections() {
		section, _ := doc.Section(name)

		header.Fprintf(w, "[%s]\n", name)

		table := tablewriter.NewTable(w,
			tablewriter.WithHeaderAutoFormat(tw.Off),
		)
		table.Header([]string{"Key", "Value", "Unit"})

		for _, key := range section.Keys() {
			value, _ := section.Get(key)
			table.Append(entryRow(key, value, prefs))
		}
		table.Render()
		fmt.Fprintln(w)
	}
}

func entryRow(key string, value any, prefs *config.Preferences) []string {
	switch v := value.(type) {
	case picounits.Packet:
		return []string{key, prefs.PacketName(v), prefs.UnitName(v.Unit())}
	case bool:
		return []string{key, fmt.Sprintf("%t", v), ""}
	default:
		return []string{key, fmt.Sprintf("%v", v), ""}
	}
}

// renderUnit prints the canonical decomposition of a parsed unit.
func renderUnit(w io.Writer, expr string, u picounits.Unit, prefs *config.Preferences) {
	color.New(color.Bold).Fprintf(w, "%s = %s\n", expr, prefs.UnitName(u))

	table := tablewriter.NewTable(w,
		tablewriter.WithHeaderAutoFormat(tw.Off),
	)
	table.Header([]string{"Base", "Symbol", "Exponent"})
	for _, d := range u.Dimensions() {
		table.Append([]string{
			d.Base.String(),
			prefs.Symbol(d.Base),
			fmt.Sprintf("%d", d.Exponent),
		})
	}
	table.Render()
}
