package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/jhoicas/store-admin-api/internal/form"
)

// printRecords imprime una tabla con id y las columnas del esquema.
func printRecords(out io.Writer, sc *form.Schema, items []map[string]any) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	header := []string{"ID"}
	for _, f := range sc.Fields {
		header = append(header, strings.ToUpper(f.Label))
	}
	fmt.Fprintln(w, strings.Join(header, "\t"))
	for _, it := range items {
		row := []string{cell(it["id"])}
		for _, f := range sc.Fields {
			row = append(row, cell(it[f.Name]))
		}
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	return w.Flush()
}

func cell(v any) string {
	switch t := v.(type) {
	case nil:
		return "-"
	case string:
		return t
	case bool:
		if t {
			return "sí"
		}
		return "no"
	case []any:
		// imágenes: cantidad
		return fmt.Sprintf("%d", len(t))
	}
	return fmt.Sprint(v)
}
