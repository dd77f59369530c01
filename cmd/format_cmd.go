package cmd

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dzjyyds666/inifix/parse/ini"
	"github.com/dzjyyds666/inifix/pkg"
	"github.com/spf13/cobra"
)

type FormatParams struct {
	Inplace        bool // 原地修改文件
	NameColumnSize int  // 参数名所在列的宽度，0 表示自动
	Diff           bool // 只输出差异
}

var formatParams = &FormatParams{}

var formatCmd = &cobra.Command{
	Use:   "format FILE...",
	Short: "Format parameter files into aligned columns",
	Long: "Format rewrites parameter files with keys padded to a common column. " +
		"It exits with 0 when every file was already formatted and 1 otherwise.",
	Args: cobra.MinimumNArgs(1),
	RunE: formatRun,
}

func init() {
	formatCmd.Flags().BoolVarP(&formatParams.Inplace, "inplace", "i", false, "modify files in place")
	formatCmd.Flags().IntVar(&formatParams.NameColumnSize, "name-column-size", 0, "width of the key column (default: longest key)")
	formatCmd.Flags().BoolVar(&formatParams.Diff, "diff", false, "print a diff instead of the formatted text")
}

func formatRun(cmd *cobra.Command, args []string) error {
	params := *formatParams
	if !cmd.Flags().Changed("name-column-size") && settings != nil {
		params.NameColumnSize = int(settings.NameColumnSize)
	}
	if code := formatFiles(&params, args, cmd.OutOrStdout(), cmd.ErrOrStderr(), logger); code != 0 {
		return exitCode(code)
	}
	return nil
}

// formatFiles formats every path and returns the exit status: 0 when all
// files were already formatted, 1 when any was fixed or failed.
func formatFiles(params *FormatParams, paths []string, stdout, stderr io.Writer, log *slog.Logger) int {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	code := 0
	for _, path := range paths {
		if c := formatFile(params, path, stdout, stderr, log); c != 0 {
			code = c
		}
	}
	return code
}

func formatFile(params *FormatParams, path string, stdout, stderr io.Writer, log *slog.Logger) int {
	exist, err := pkg.CheckFileExist(path)
	if err != nil {
		printStatus(stderr, statusError, "Error: could not access %s: %v", path, err)
		return 1
	}
	if !exist {
		printStatus(stderr, statusError, "Error: could not find %s", path)
		return 1
	}
	data, err := os.ReadFile(path)
	if err != nil {
		printStatus(stderr, statusError, "Error: could not read %s: %v", path, err)
		return 1
	}
	text := string(data)
	if strings.TrimSpace(text) == "" {
		printStatus(stderr, statusError, "Error: %s appears to be empty.", path)
		return 1
	}

	res, err := ini.Format(text, ini.WithNameColumnSize(params.NameColumnSize), ini.WithSource(path))
	if err != nil {
		printStatus(stderr, statusError, "Error: %v", err)
		return 1
	}
	for _, w := range res.Warnings {
		log.Warn(w.String(), "path", path)
	}

	if res.Unchanged {
		if !params.Inplace && !params.Diff {
			io.WriteString(stdout, res.Text)
		}
		printStatus(stderr, statusOK, "%s is already formatted", path)
		return 0
	}

	switch {
	case params.Inplace:
		if err := pkg.WriteFileAtomic(path, []byte(res.Text), 0o644); err != nil {
			log.Debug("rewrite failed", "path", path, "error", err)
			printStatus(stderr, statusError, "Error: could not write to %s", path)
			return 1
		}
	case params.Diff:
		if err := writeDiff(stdout, path, text, res.Text); err != nil {
			printStatus(stderr, statusError, "Error: %v", err)
			return 1
		}
	default:
		io.WriteString(stdout, res.Text)
	}
	printStatus(stderr, statusFixed, "Fixing %s", path)
	return 1
}
