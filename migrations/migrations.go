// Package migrations embeds the schema files so tests and tooling can apply
// them without a filesystem dependency on the repo layout.
package migrations

import (
	"embed"
	"io/fs"
	"sort"
)

//go:embed *.sql
var files embed.FS

// Statements returns the contents of every migration file in lexical order.
func Statements() ([]string, error) {
	entries, err := fs.Glob(files, "*.sql")
	if err != nil {
		return nil, err
	}
	sort.Strings(entries)

	var stmts []string
	for _, name := range entries {
		data, err := files.ReadFile(name)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, string(data))
	}
	return stmts, nil
}
