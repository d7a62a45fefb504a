package export

import (
	"strings"
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexus-controls/plcforge/pkg/models"
)

// decodeUTF16LE reverses the export encoding for assertions.
func decodeUTF16LE(t *testing.T, data []byte) string {
	t.Helper()
	require.GreaterOrEqual(t, len(data), 2)
	require.Equal(t, byte(0xFF), data[0])
	require.Equal(t, byte(0xFE), data[1])
	require.Zero(t, (len(data)-2)%2)

	units := make([]uint16, 0, (len(data)-2)/2)
	for i := 2; i < len(data); i += 2 {
		units = append(units, uint16(data[i])|uint16(data[i+1])<<8)
	}
	return string(utf16.Decode(units))
}

func TestGlobalLabelsGX(t *testing.T) {
	data := GlobalLabelsGX([]models.Label{
		{Name: "Start_Button", DataType: "Bool", Device: "X0"},
		{Name: "Motor", DataType: "Bool", Device: "Y0"},
	})
	text := decodeUTF16LE(t, data)

	lines := strings.Split(text, "\r\n")
	require.Len(t, lines, 5) // title + header + 2 rows + trailing empty
	assert.Equal(t, "", lines[4])

	// Title row: 28 quoted columns.
	title := strings.Split(lines[0], "\t")
	require.Len(t, title, 28)
	assert.Equal(t, `"(Untitled Project)"`, title[0])
	assert.Equal(t, `""`, title[27])

	header := strings.Split(lines[1], "\t")
	require.Len(t, header, 28)
	assert.Equal(t, `"Class"`, header[0])
	assert.Equal(t, `"Assign (Device/Label)"`, header[5])
	assert.Equal(t, `"Access from External Device"`, header[27])

	row := strings.Split(lines[2], "\t")
	require.Len(t, row, 28)
	assert.Equal(t, `"VAR_GLOBAL"`, row[0])
	assert.Equal(t, `"Start_Button"`, row[1])
	assert.Equal(t, `"Bool"`, row[2])
	assert.Equal(t, `"X0"`, row[5])
	assert.Equal(t, `"0"`, row[27])
}

func TestLocalLabelsGX(t *testing.T) {
	data := LocalLabelsGX([]models.Label{
		{Name: "Timer1", DataType: "Timer", Class: "VAR"},
		{Name: "Input1", DataType: "Bool"},
	})
	text := decodeUTF16LE(t, data)

	lines := strings.Split(text, "\r\n")
	require.Len(t, lines, 5)

	// Quote-minimal: unquoted title and plain fields.
	title := strings.Split(lines[0], "\t")
	require.Len(t, title, 27)
	assert.Equal(t, "(Untitled Project)", title[0])

	header := strings.Split(lines[1], "\t")
	require.Len(t, header, 27)
	assert.Equal(t, "Class", header[0])
	assert.Equal(t, "Attribute", header[26])

	row := strings.Split(lines[2], "\t")
	require.Len(t, row, 27)
	assert.Equal(t, "VAR", row[0])
	assert.Equal(t, "Timer1", row[1])

	// Missing class defaults to VAR_INPUT.
	row2 := strings.Split(lines[3], "\t")
	assert.Equal(t, "VAR_INPUT", row2[0])
}

func TestAllStagesLocalLabels(t *testing.T) {
	data := AllStagesLocalLabels([]StageLabels{
		{StageNumber: 1, StageName: "Init", LocalLabels: []models.Label{
			{Name: "Init_Done", DataType: "Bool", Class: "VAR"},
		}},
		{StageNumber: 2, StageName: "Run", LocalLabels: []models.Label{
			{Name: "Run_Timer", DataType: "Timer", Class: "VAR"},
			{Name: "Speed", DataType: "Word [Signed]", Class: "VAR_OUTPUT"},
		}},
	})
	text := decodeUTF16LE(t, data)

	lines := strings.Split(strings.TrimRight(text, "\r\n"), "\r\n")
	require.Len(t, lines, 5) // title + header + 3 label rows

	assert.Equal(t, "Init_Done", strings.Split(lines[2], "\t")[1])
	assert.Equal(t, "Run_Timer", strings.Split(lines[3], "\t")[1])
	assert.Equal(t, "VAR_OUTPUT", strings.Split(lines[4], "\t")[0])
}

func TestQuoting(t *testing.T) {
	// A tab inside a field forces quoting in the minimal writer.
	data := LocalLabelsGX([]models.Label{
		{Name: "Odd\tName", DataType: "Bool", Class: "VAR"},
	})
	text := decodeUTF16LE(t, data)
	assert.Contains(t, text, "\"Odd\tName\"")
}
