package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arthur-debert/outstanding/pkg/config"
	"github.com/arthur-debert/outstanding/pkg/errors"
	"github.com/arthur-debert/outstanding/pkg/logging"
	"github.com/arthur-debert/outstanding/pkg/style"
	"github.com/arthur-debert/outstanding/pkg/tabular"
	"github.com/arthur-debert/outstanding/pkg/values"
)

const fallbackWidth = 80

var (
	renderSpecPath   string
	renderWidth      int
	renderBorder     string
	renderFormat     string
	renderColor      string
	renderStylesheet string
	renderHideHeader bool
	renderPlain      bool
	renderOutput     string

	renderCmd = &cobra.Command{
		Use:   "render [files...]",
		Short: "Render records as a table",
		Long: `Render reads records from YAML, JSON or XML files (or stdin) and
lays them out according to a table definition file.

The definition names the columns, how each one is sized (fixed, bounded,
a fraction of the remaining width, or fill) and what happens when a
value overflows (truncate, wrap, clip or expand).`,
		RunE: runRender,
	}
)

func init() {
	renderCmd.Flags().StringVarP(&renderSpecPath, "spec", "s", "", "Table definition file (required)")
	renderCmd.Flags().IntVarP(&renderWidth, "width", "w", 0, "Total render width (0 detects the terminal)")
	renderCmd.Flags().StringVarP(&renderBorder, "border", "b", "", "Border style: none, ascii, light, heavy, double, rounded")
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", "auto", "Input format: auto, yaml, json, xml")
	renderCmd.Flags().StringVar(&renderColor, "color", "", "Color output: auto, always, never")
	renderCmd.Flags().StringVar(&renderStylesheet, "stylesheet", "", "Custom stylesheet YAML file")
	renderCmd.Flags().BoolVar(&renderHideHeader, "no-header", false, "Skip the header row")
	renderCmd.Flags().BoolVar(&renderPlain, "plain", false, "Strip style markup (same as --color=never)")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "Write to a file instead of stdout")
	_ = renderCmd.MarkFlagRequired("spec")
}

func runRender(cmd *cobra.Command, args []string) error {
	logger := logging.GetLogger("cmd.render")

	settings, err := config.Load("")
	if err != nil {
		return err
	}

	data, err := os.ReadFile(renderSpecPath)
	if err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "failed to read table definition %s", renderSpecPath)
	}
	specFile, err := tabular.ParseSpecFile(data)
	if err != nil {
		return err
	}

	records, err := readRecords(args)
	if err != nil {
		return err
	}
	logger.Debug().Int("records", len(records)).Msg("Records decoded")

	width := renderWidth
	if width == 0 {
		width = settings.Output.Width
	}
	if width == 0 {
		width = detectWidth()
	}

	border := specFile.Border
	borderName := renderBorder
	if borderName == "" && specFile.Border == tabular.BorderNone {
		borderName = settings.Output.Border
	}
	if borderName != "" {
		border, err = tabular.ParseBorderStyle(borderName)
		if err != nil {
			return err
		}
	}

	f := tabular.NewFormatter(specFile.Spec, width)
	rows := make([][]string, len(records))
	for i, rec := range records {
		rows[i] = f.ExtractRow(rec)
	}

	table := &tabular.Table{
		Spec:        specFile.Spec,
		Width:       width,
		Border:      border,
		HeaderStyle: specFile.HeaderStyle,
		HideHeader:  renderHideHeader,
	}
	out, err := table.Render(rows)
	if err != nil {
		return err
	}

	transform, err := buildTransform(settings)
	if err != nil {
		return err
	}
	out, err = transform.ApplyAll(out)
	if err != nil {
		return err
	}

	if renderOutput != "" {
		if err := os.WriteFile(renderOutput, []byte(out+"\n"), 0o644); err != nil {
			return errors.Wrapf(err, errors.ErrInternal, "failed to write %s", renderOutput)
		}
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

// readRecords decodes records from the named files, or stdin when none
// are given.
func readRecords(paths []string) ([]values.Value, error) {
	if len(paths) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrValueParse, "failed to read stdin")
		}
		return decodeRecords(data, renderFormat)
	}

	var records []values.Value
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrValueParse, "failed to read %s", path)
		}
		format := renderFormat
		if format == "auto" {
			format = formatFromPath(path)
		}
		recs, err := decodeRecords(data, format)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrValueParse, "in %s", path)
		}
		records = append(records, recs...)
	}
	return records, nil
}

func formatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xml":
		return "xml"
	default:
		// the YAML decoder handles JSON as well
		return "yaml"
	}
}

func decodeRecords(data []byte, format string) ([]values.Value, error) {
	switch format {
	case "xml":
		return values.DecodeXMLRecords(data)
	case "auto", "yaml", "json", "":
		return values.DecodeRecords(data)
	}
	return nil, errors.Newf(errors.ErrInvalidInput, "unknown input format %q", format)
}

// detectWidth asks the terminal, falling back to 80 columns for pipes.
func detectWidth() int {
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return fallbackWidth
	}
	w, _, err := term.GetSize(int(fd))
	if err != nil || w <= 0 {
		return fallbackWidth
	}
	return w
}

func buildTransform(settings *config.Settings) (*style.Transform, error) {
	reg := style.Default()
	sheet := renderStylesheet
	if sheet == "" {
		sheet = settings.Output.Stylesheet
	}
	if sheet != "" {
		loaded, err := style.Load(sheet)
		if err != nil {
			return nil, err
		}
		reg = loaded
	}

	color := renderColor
	if renderPlain {
		color = "never"
	}
	if color == "" {
		color = settings.Output.Color
	}
	var mode style.Mode
	switch color {
	case "always":
		mode = style.ModeApply
	case "never":
		mode = style.ModeRemove
	case "auto", "":
		mode = style.DetectMode(os.Stdout)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "color must be auto, always or never, got %q", color)
	}
	return style.NewTransform(mode, reg), nil
}
