// Package export renders label tables in the tab-separated, UTF-16 LE
// encoded layout GX Works 3 imports.
package export

import (
	"strings"
	"unicode/utf16"

	"github.com/nexus-controls/plcforge/pkg/models"
)

// gxHeader is the 27-column GX Works 3 label table header. Global exports
// append a 28th "Access from External Device" column.
var gxHeader = []string{
	"Class", "Label Name", "Data Type", "Constant", "Initial Value",
	"Assign (Device/Label)", "Address", "Comment", "Comment 2", "Comment 3",
	"Comment 4", "Comment 5", "Japanese/日本語", "English",
	"Chinese Simplified/简体中文", "Korean/한국어", "Chinese Traditional/繁體中文",
	"German/Deutsch", "Italian/Italiano", "Reserved1", "Reserved2", "Reserved3",
	"Reserved4", "Remark", "System Label Relation", "System Label Name",
	"Attribute",
}

const gxTitle = "(Untitled Project)"

// accessExternalDefault is the default for the global table's last column.
const accessExternalDefault = "0"

// StageLabels pairs a stage with its local label set for combined exports.
type StageLabels struct {
	StageNumber int
	StageName   string
	LocalLabels []models.Label
}

// GlobalLabelsGX renders the project's unified global label table. Every
// field is quoted and the table carries the 28-column global layout with the
// device in the Assign column.
func GlobalLabelsGX(labels []models.Label) []byte {
	var sb strings.Builder
	writeRowQuoted(&sb, titleRow(28))
	writeRowQuoted(&sb, append(append([]string{}, gxHeader...), "Access from External Device"))

	for _, label := range labels {
		row := make([]string, 28)
		row[0] = "VAR_GLOBAL"
		row[1] = label.Name
		row[2] = label.DataType
		row[5] = label.Device
		row[27] = accessExternalDefault
		writeRowQuoted(&sb, row)
	}
	return encodeUTF16LE(sb.String())
}

// LocalLabelsGX renders one stage's local label table in the 27-column
// layout. Fields are quoted only when they contain delimiters.
func LocalLabelsGX(labels []models.Label) []byte {
	var sb strings.Builder
	writeRowMinimal(&sb, titleRow(27))
	writeRowMinimal(&sb, gxHeader)

	for _, label := range labels {
		writeRowMinimal(&sb, localRow(label))
	}
	return encodeUTF16LE(sb.String())
}

// AllStagesLocalLabels renders the local labels of every stage into one
// combined 27-column table, in stage order.
func AllStagesLocalLabels(stages []StageLabels) []byte {
	var sb strings.Builder
	writeRowMinimal(&sb, titleRow(27))
	writeRowMinimal(&sb, gxHeader)

	for _, stage := range stages {
		for _, label := range stage.LocalLabels {
			row := localRow(label)
			if row[0] == "" {
				row[0] = "VAR"
			}
			writeRowMinimal(&sb, row)
		}
	}
	return encodeUTF16LE(sb.String())
}

func localRow(label models.Label) []string {
	row := make([]string, 27)
	row[0] = label.Class
	if row[0] == "" {
		row[0] = "VAR_INPUT"
	}
	row[1] = label.Name
	row[2] = label.DataType
	return row
}

func titleRow(columns int) []string {
	row := make([]string, columns)
	row[0] = gxTitle
	return row
}

// writeRowQuoted writes one tab-separated CRLF row with every field quoted.
func writeRowQuoted(sb *strings.Builder, fields []string) {
	for i, field := range fields {
		if i > 0 {
			sb.WriteByte('\t')
		}
		sb.WriteByte('"')
		sb.WriteString(strings.ReplaceAll(field, `"`, `""`))
		sb.WriteByte('"')
	}
	sb.WriteString("\r\n")
}

// writeRowMinimal writes one tab-separated CRLF row, quoting only fields
// that contain a tab, quote, or line break.
func writeRowMinimal(sb *strings.Builder, fields []string) {
	for i, field := range fields {
		if i > 0 {
			sb.WriteByte('\t')
		}
		if strings.ContainsAny(field, "\t\"\r\n") {
			sb.WriteByte('"')
			sb.WriteString(strings.ReplaceAll(field, `"`, `""`))
			sb.WriteByte('"')
		} else {
			sb.WriteString(field)
		}
	}
	sb.WriteString("\r\n")
}

// encodeUTF16LE encodes text as UTF-16 little-endian with the 0xFF 0xFE BOM
// GX Works 3 expects.
func encodeUTF16LE(text string) []byte {
	units := utf16.Encode([]rune(text))
	out := make([]byte, 2, 2+2*len(units))
	out[0], out[1] = 0xFF, 0xFE
	for _, u := range units {
		out = append(out, byte(u), byte(u>>8))
	}
	return out
}
