// Package docs renders the command reference from the command registry.
package docs

import (
	"io"
	"strings"
	"text/template"

	"github.com/keshon/btf-bot/pkg/cmd"
)

var referenceTmpl = template.Must(template.New("reference").Parse(`## Commands

| Command | Permission | Description |
|---|---|---|
{{- range .Commands}}
| ` + "`{{$.Prefix}}{{.Label}}`" + ` | ` + "`{{.Permission}}`" + ` | {{.Description}} |
{{- end}}
{{range .Commands}}
### {{$.Prefix}}{{.Label}}

{{.Help}}
{{end}}`))

// WriteCommandReference writes a markdown reference of cmds, labels shown
// with prefix.
func WriteCommandReference(w io.Writer, cmds []cmd.Command, prefix string) error {
	rows := make([]cmd.Command, len(cmds))
	for i, c := range cmds {
		c.Description = escapeCell(c.Description)
		rows[i] = c
	}
	return referenceTmpl.Execute(w, struct {
		Prefix   string
		Commands []cmd.Command
	}{Prefix: prefix, Commands: rows})
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
