package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/dzjyyds666/inifix/parse"
	"github.com/dzjyyds666/inifix/parse/ini"
	"github.com/dzjyyds666/inifix/pkg"
	"github.com/dzjyyds666/inifix/pkg/json"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
)

type QueryParams struct {
	Input     string `json:"input"`     // 输入文件路径
	Section   string `json:"section"`   // 查找的section
	Find      string `json:"find"`      // 查找的key
	Output    string `json:"output"`    // 输出文件地址
	To        string `json:"to"`        // 输出格式: ini, json, yaml
	ENotation bool   `json:"enotation"` // ini输出时使用科学计数法
}

var queryParams = &QueryParams{}

var errNotFound = errors.New("not found")

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Print a parameter file, a section or a single key as ini, json or yaml",
	RunE: func(cmd *cobra.Command, args []string) error {
		return queryRun(queryParams, cmd.OutOrStdout())
	},
}

func init() {
	queryCmd.Flags().StringVarP(&queryParams.Input, "input", "i", "", "input file path")
	queryCmd.Flags().StringVarP(&queryParams.Section, "section", "s", "", "section to select")
	queryCmd.Flags().StringVarP(&queryParams.Find, "find", "f", "", "key to select")
	queryCmd.Flags().StringVarP(&queryParams.Output, "output", "o", "", "output path")
	queryCmd.Flags().StringVarP(&queryParams.To, "to", "t", "ini", "output format: ini, json or yaml")
	queryCmd.Flags().BoolVar(&queryParams.ENotation, "enotation", false, "write numbers in e-notation when shorter (ini output)")
}

func queryRun(params *QueryParams, stdout io.Writer) error {
	if len(params.Input) == 0 {
		return errors.New("no input file path")
	}
	exist, err := pkg.CheckFileExist(params.Input)
	if err != nil {
		return fmt.Errorf("check file exist error: %w", err)
	}
	if !exist {
		return fmt.Errorf("could not find %s", params.Input)
	}

	doc, err := ini.LoadFile(params.Input)
	if err != nil {
		return err
	}
	selected, err := selectNode(doc, params.Section, params.Find)
	if err != nil {
		return err
	}
	out, err := render(selected, params)
	if err != nil {
		return err
	}

	if params.Output != "" {
		return pkg.WriteFileAtomic(params.Output, out, 0o644)
	}
	_, err = stdout.Write(out)
	return err
}

// selectNode narrows doc to a section, a key, or a key inside a section.
// The result is always a document so that every renderer can handle it.
func selectNode(doc *ini.Document, section, find string) (*ini.Document, error) {
	if section == "" && find == "" {
		return doc, nil
	}
	n, ok := parse.Get(doc, section, find)
	if !ok {
		path := find
		if section != "" {
			path = "[" + section + "] " + find
		}
		return nil, fmt.Errorf("%s: %w", path, errNotFound)
	}
	key := find
	if key == "" {
		key = section
	}
	sub := ini.NewDocument()
	if err := sub.Set(key, n); err != nil {
		return nil, err
	}
	return sub, nil
}

func render(doc *ini.Document, params *QueryParams) ([]byte, error) {
	switch params.To {
	case "", "ini":
		var opts []ini.DumpOption
		if params.ENotation {
			opts = append(opts, ini.WithENotation())
		}
		text, err := ini.Dumps(doc, opts...)
		return []byte(text), err
	case "json":
		out, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	case "yaml":
		return yaml.Marshal(parse.ToMapSlice(doc))
	default:
		return nil, fmt.Errorf("unknown output format %q", params.To)
	}
}
