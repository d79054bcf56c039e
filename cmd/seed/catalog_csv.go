package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Columnas obligatorias del CSV de catálogo.
var requiredColumns = []string{"category", "billboard", "billboard_image", "size", "size_value", "color", "color_value", "name", "price", "images"}

// catalogRow una fila del CSV: el producto y los registros que referencia por nombre.
type catalogRow struct {
	Line           int
	Category       string
	Billboard      string
	BillboardImage string
	Size           string
	SizeValue      string
	Color          string
	ColorValue     string
	Name           string
	Price          decimal.Decimal
	Featured       bool
	Archived       bool
	Images         []string
}

// readCatalog lee el CSV. Con latin1 decodifica ISO-8859-1 (exportaciones de Excel).
func readCatalog(r io.Reader, latin1 bool) ([]catalogRow, error) {
	if latin1 {
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("leer encabezado: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	for _, c := range requiredColumns {
		if _, ok := col[c]; !ok {
			return nil, fmt.Errorf("falta la columna %q", c)
		}
	}
	get := func(rec []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	var rows []catalogRow
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", line, err)
		}
		price, err := decimal.NewFromString(strings.ReplaceAll(get(rec, "price"), ",", "."))
		if err != nil {
			return nil, fmt.Errorf("línea %d: precio inválido %q", line, get(rec, "price"))
		}
		row := catalogRow{
			Line:           line,
			Category:       get(rec, "category"),
			Billboard:      get(rec, "billboard"),
			BillboardImage: get(rec, "billboard_image"),
			Size:           get(rec, "size"),
			SizeValue:      get(rec, "size_value"),
			Color:          get(rec, "color"),
			ColorValue:     get(rec, "color_value"),
			Name:           get(rec, "name"),
			Price:          price,
			Featured:       parseFlag(get(rec, "featured")),
			Archived:       parseFlag(get(rec, "archived")),
		}
		for _, u := range strings.Split(get(rec, "images"), "|") {
			if u = strings.TrimSpace(u); u != "" {
				row.Images = append(row.Images, u)
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseFlag(s string) bool {
	switch strings.ToLower(s) {
	case "si", "sí", "x", "yes":
		return true
	}
	b, _ := strconv.ParseBool(s)
	return b
}
