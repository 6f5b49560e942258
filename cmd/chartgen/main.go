// Command chartgen renders chart definition files.
//
//	chartgen sales.yaml                       # html fragment on stdout
//	chartgen -f echarts -o sales.html sales.toml
//	chartgen --sheet Q1 --type pie book.xlsx
package main

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/tinywasm/chart"
	"github.com/tinywasm/chart/definition"
	"github.com/tinywasm/chart/element"
	"github.com/tinywasm/chart/env"
	"github.com/tinywasm/chart/errs"
	"github.com/tinywasm/chart/export/echarts"
	"github.com/tinywasm/chart/linechart"
)

type options struct {
	output  string
	format  string
	sheet   string
	kind    string
	title   string
	colours []string
	pretty  bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:   "chartgen [definition.{yaml,yml,toml,xlsx}]",
		Short: "Render charts from definition files",
		Long: `chartgen builds a chart from a YAML, TOML or xlsx definition and writes it
as an html fragment, a json element tree or an ECharts page.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := run(args[0], o)
			if err != nil {
				env.Logger("chartgen:", err)
				return err
			}
			if o.output != "" {
				if err := env.FileWriter(o.output, out); err != nil {
					return errs.New("failed to write output:", err)
				}
				env.Logger("chartgen: wrote", o.output)
				return nil
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().StringVarP(&o.output, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().StringVarP(&o.format, "format", "f", "html", "Output format: html, json, echarts")
	cmd.Flags().StringVar(&o.sheet, "sheet", "", "Workbook sheet to read (default: first sheet)")
	cmd.Flags().StringVarP(&o.kind, "type", "t", "", "Chart type, overrides the definition: hbar, vbar, pie, line")
	cmd.Flags().StringVar(&o.title, "title", "", "Chart title, overrides the definition")
	cmd.Flags().StringSliceVar(&o.colours, "colour", nil, "Chart colours, overrides the definition (repeatable)")
	cmd.Flags().BoolVar(&o.pretty, "pretty", false, "Indent json output")
	return cmd
}

func run(path string, o options) ([]byte, error) {
	f, err := load(path, o.sheet)
	if err != nil {
		return nil, err
	}
	if o.kind != "" {
		f.Type = o.kind
	}
	if o.title != "" {
		f.Title = o.title
	}
	if len(o.colours) > 0 {
		f.Colours = o.colours
	}

	m, err := f.Model()
	if err != nil {
		return nil, err
	}
	return encode(m, o)
}

func load(path, sheet string) (definition.File, error) {
	format, err := definition.FormatOf(path)
	if err != nil {
		return definition.File{}, err
	}
	if format == definition.FormatXLSX {
		return definition.LoadWorkbook(path, sheet)
	}
	data, err := env.ReadSource(path)
	if err != nil {
		return definition.File{}, &errs.DefinitionError{Source: path, Err: err}
	}
	return definition.Parse(data, format)
}

func encode(m chart.Model, o options) ([]byte, error) {
	if o.format == "echarts" {
		var buf bytes.Buffer
		if err := echarts.Write(&buf, m); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}

	root, err := m.Render(chart.WithLineRenderer(linechart.New()))
	if err != nil {
		return nil, err
	}

	switch o.format {
	case "html":
		s, err := element.HTML(root)
		if err != nil {
			return nil, err
		}
		return []byte(s + "\n"), nil
	case "json":
		if o.pretty {
			return json.MarshalIndent(root, "", "  ")
		}
		return json.Marshal(root)
	}
	return nil, errs.New("invalid format:", o.format, "(must be html, json or echarts)")
}
