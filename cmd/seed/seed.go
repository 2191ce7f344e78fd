package main

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type region struct {
	code, name string
}

type province struct {
	code, name, regionCode string
}

// decode devuelve un lector UTF-8: si el contenido no es UTF-8 válido se asume ISO-8859-1.
func decode(raw []byte) io.Reader {
	raw = bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))
	if utf8.Valid(raw) {
		return bytes.NewReader(raw)
	}
	return transform.NewReader(bytes.NewReader(raw), charmap.ISO8859_1.NewDecoder())
}

// parse lee el CSV y devuelve regiones únicas ordenadas por código y provincias en orden de código.
func parse(raw []byte) ([]region, []province, error) {
	r := csv.NewReader(decode(raw))
	r.Comma = ';'
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	regionNames := map[string]string{}
	byCode := map[string]province{}
	line := 0
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		line++
		if len(rec) < 4 {
			return nil, nil, fmt.Errorf("línea %d: se esperaban 4 columnas, hay %d", line, len(rec))
		}
		regionCode, regionName := pad2(rec[0]), strings.TrimSpace(rec[1])
		provCode, provName := pad2(rec[2]), strings.TrimSpace(rec[3])
		if line == 1 && !isDigits(regionCode) {
			continue // cabecera
		}
		if !isDigits(regionCode) || !isDigits(provCode) || regionName == "" || provName == "" {
			return nil, nil, fmt.Errorf("línea %d: fila inválida %q", line, rec)
		}
		if prev, ok := regionNames[regionCode]; ok && prev != regionName {
			return nil, nil, fmt.Errorf("línea %d: la región %s ya se llamó %q", line, regionCode, prev)
		}
		regionNames[regionCode] = regionName
		if prev, ok := byCode[provCode]; ok && prev.regionCode != regionCode {
			return nil, nil, fmt.Errorf("línea %d: provincia %s en dos regiones", line, provCode)
		}
		byCode[provCode] = province{code: provCode, name: provName, regionCode: regionCode}
	}

	regions := make([]region, 0, len(regionNames))
	for c, n := range regionNames {
		regions = append(regions, region{code: c, name: n})
	}
	sort.Slice(regions, func(i, j int) bool { return regions[i].code < regions[j].code })

	provinces := make([]province, 0, len(byCode))
	for _, p := range byCode {
		provinces = append(provinces, p)
	}
	sort.Slice(provinces, func(i, j int) bool { return provinces[i].code < provinces[j].code })
	return regions, provinces, nil
}

// writeSQL escribe los INSERT idempotentes (ON CONFLICT) de regiones y provincias.
func writeSQL(w io.Writer, source string, regions []region, provinces []province) error {
	out := bufio.NewWriter(w)
	fmt.Fprintf(out, "-- Regiones y provincias (códigos INE)\n")
	fmt.Fprintf(out, "-- Generado desde %s\n\n", source)

	if len(regions) > 0 {
		out.WriteString("-- 1. Regiones\n")
		out.WriteString("INSERT INTO regions (code, name) VALUES\n")
		for i, r := range regions {
			sep := ","
			if i == len(regions)-1 {
				sep = ""
			}
			fmt.Fprintf(out, "  ('%s', '%s')%s\n", r.code, escapeSQL(r.name), sep)
		}
		out.WriteString("ON CONFLICT (code) DO UPDATE SET name = EXCLUDED.name;\n\n")
	}

	out.WriteString("-- 2. Provincias con subquery a la región\n")
	for _, p := range provinces {
		out.WriteString("INSERT INTO provinces (region_id, code, name)\n")
		fmt.Fprintf(out, "SELECT id, '%s', '%s' FROM regions WHERE code = '%s'\n", p.code, escapeSQL(p.name), p.regionCode)
		out.WriteString("ON CONFLICT (code) DO UPDATE SET name = EXCLUDED.name, region_id = EXCLUDED.region_id;\n")
	}
	return out.Flush()
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// pad2 normaliza códigos de una cifra ("1" → "01").
func pad2(s string) string {
	s = strings.TrimSpace(s)
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
