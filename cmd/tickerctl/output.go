package main

import (
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/jedib0t/go-pretty/v6/table"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTable(out io.Writer, title string, header table.Row) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetTitle(title)
	t.AppendHeader(header)
	t.SetStyle(table.StyleLight)
	return t
}
