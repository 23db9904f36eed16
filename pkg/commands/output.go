package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/liip/sheriff"
	"github.com/urfave/cli/v2"
)

const (
	formatText = "text"
	formatJSON = "json"
)

// outputFormat validates --format before any lookup runs.
func outputFormat(c *cli.Context) (string, error) {
	format := c.String("format")

	if format != formatText && format != formatJSON {
		return "", cli.Exit(fmt.Sprintf("Format %s is not valid.", format), exitFormat)
	}

	return format, nil
}

func writeJSON(w io.Writer, data interface{}) error {
	reduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic"},
	}, data)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return encoder.Encode(reduced)
}

func capitalise(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}
