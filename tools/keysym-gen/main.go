// keysym-gen rebuilds internal/keysym/table.go from the X11 headers.
//
// Usage:
//
//	go run ./tools/keysym-gen -o internal/keysym/table.go
//
// Each #define of the form `#define XK_Name 0x1234` contributes one entry;
// the prefix up to the first underscore is dropped and the remainder
// lowercased, so XK_Page_Up maps as "page_up" and XF86XK_AudioMute as
// "audiomute". Later definitions win on name collisions, matching the
// lowercase folding of the headers.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
)

var (
	outPath = flag.String("o", "table.go", "output file")
	headers = flag.String("headers", "/usr/include/X11/keysymdef.h,/usr/include/X11/XF86keysym.h",
		"comma-separated header files to scan")
)

func main() {
	flag.Parse()

	table := make(map[string]uint32)
	for _, path := range strings.Split(*headers, ",") {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "keysym-gen: %v\n", err)
			os.Exit(1)
		}
		extractSymbols(string(data), table)
	}

	if err := writeTable(*outPath, table); err != nil {
		fmt.Fprintf(os.Stderr, "keysym-gen: %v\n", err)
		os.Exit(1)
	}
}

// extractSymbols scans #define lines and adds their stripped, lowercased
// names to the table.
func extractSymbols(content string, table map[string]uint32) {
	for _, part := range strings.Split(content, "#define") {
		fields := strings.Fields(strings.TrimSpace(part))
		if len(fields) < 2 || !strings.HasPrefix(fields[1], "0x") {
			continue
		}
		value, err := strconv.ParseUint(strings.TrimPrefix(fields[1], "0x"), 16, 32)
		if err != nil {
			continue
		}
		name := fields[0]
		if pos := strings.IndexByte(name, '_'); pos >= 0 {
			name = name[pos+1:]
		}
		table[strings.ToLower(name)] = uint32(value)
	}
}

func writeTable(path string, table map[string]uint32) error {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("// Code generated by tools/keysym-gen; DO NOT EDIT.\n")
	b.WriteString("//\n// Source headers: " + *headers + "\n\n")
	b.WriteString("package keysym\n\nvar table = map[string]uint32{\n")
	for _, name := range names {
		fmt.Fprintf(&b, "\t%q: 0x%04x,\n", name, table[name])
	}
	b.WriteString("}\n")

	return os.WriteFile(path, []byte(b.String()), 0644)
}
