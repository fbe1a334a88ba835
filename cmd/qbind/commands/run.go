package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/querylab/qbind/bind"
	"github.com/querylab/qbind/exec"
	"github.com/querylab/qbind/project"
)

var (
	runParams   []string
	runFile     string
	runColWidth int
)

var runCmd = &cobra.Command{
	Use:   "run [template]",
	Short: "Execute a SQL template with named parameters",
	Long: `Execute a SQL template containing :name placeholders.

Values are supplied with repeated --param flags and are sent to the database
as bound parameters:

    qbind run "SELECT * FROM users WHERE first_name LIKE :name" --param name=Frida%
    qbind run --file report.sql --param since=2024-01-01`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		template, err := loadTemplate(args)
		if err != nil {
			return err
		}
		params, err := parseParams(runParams)
		if err != nil {
			return err
		}
		return runQuery(cmd.Context(), template, params)
	},
}

func init() {
	runCmd.Flags().StringArrayVarP(&runParams, "param", "p", nil, "bind a parameter as name=value (repeatable)")
	runCmd.Flags().StringVarP(&runFile, "file", "f", "", "read the template from a file")
	runCmd.Flags().IntVar(&runColWidth, "col-width", 0, "left-justify every column to this width")
	rootCmd.AddCommand(runCmd)
}

func loadTemplate(args []string) (bind.Template, error) {
	if runFile != "" {
		data, err := os.ReadFile(runFile)
		if err != nil {
			return "", fmt.Errorf("read template: %w", err)
		}
		return bind.Template(strings.TrimSpace(string(data))), nil
	}
	if len(args) == 0 {
		return "", fmt.Errorf("provide a template argument or --file")
	}
	return bind.Template(args[0]), nil
}

// parseParams turns name=value pairs into binding values. Values that parse
// as integers, floats, or booleans are bound as such; everything else stays a
// string. The literal "null" binds NULL.
func parseParams(pairs []string) (map[string]any, error) {
	params := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		name, raw, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --param %q, expected name=value", pair)
		}
		params[name] = coerce(raw)
	}
	return params, nil
}

func coerce(raw string) any {
	if raw == "null" {
		return nil
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(raw); err == nil {
		return b
	}
	return raw
}

func runQuery(ctx context.Context, template bind.Template, params map[string]any) error {
	_, conn, err := connect(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	runID := uuid.NewString()
	rs, err := exec.Query(ctx, conn, template, params)
	if err != nil {
		color.Red("run %s failed: %v", runID, err)
		return err
	}

	var opts []project.Option
	if runColWidth > 0 {
		for _, col := range rs.Columns() {
			opts = append(opts, project.LeftJustify(col, runColWidth))
		}
	}
	printResult(rs.Columns(), project.Project(rs, opts...))

	color.Green("run %s: %d row(s)", runID, rs.Len())
	return nil
}

func printResult(columns []string, p *project.Projection) {
	header := color.New(color.Bold)
	header.Println(strings.Join(columns, "\t"))
	for p.Next() {
		values := p.Values()
		cells := make([]string, len(values))
		for i, v := range values {
			if v == nil {
				cells[i] = "NULL"
				continue
			}
			cells[i] = fmt.Sprint(v)
		}
		fmt.Println(strings.Join(cells, "\t"))
	}
}
