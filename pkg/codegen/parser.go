package codegen

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/nexus-controls/plcforge/pkg/models"
)

// ParseError is returned when generator output contained no recognizable
// program block. Snippet carries the head of the offending text for logs.
type ParseError struct {
	Snippet string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse generated output: %q", e.Snippet)
}

const parseSnippetLen = 200

// Top-level parser sections.
type section int

const (
	secNone section = iota
	secGlobal
	secProgram
	secFunction
	secFunctionBlock
	secSDT
)

// Sub-states within a program/function/function-block body.
type subsection int

const (
	subMeta subsection = iota
	subLabels
	subCode
)

var (
	numberPrefixRe = regexp.MustCompile(`^\d+\)\s*`)
	deviceCellRe   = regexp.MustCompile(`^(SB|ST|LC|[XYMDTCBFSL])[0-9A-F]+$`)
)

// Cells that mark a table header row rather than a data row.
var headerCellTokens = []string{"label name", "name", "column", "label"}

// Keywords that identify a table header line inside a code region.
var codeHeaderKeywords = []string{"label name", "data type", "class", "initial value", "constant", "english"}

// blockBuilder accumulates one program/function/function-block while the
// scanner walks its lines.
type blockBuilder struct {
	section       section
	stage         string
	name          string
	executionType string
	resultType    string
	fbType        string
	withEN        bool
	labels        []models.Label
	codeLines     []string
	skipNextEmpty bool
}

func newBlockBuilder(sec section) *blockBuilder {
	b := &blockBuilder{section: sec}
	switch sec {
	case secProgram:
		b.executionType = models.ExecutionScan
	case secFunction:
		b.resultType = "BOOL"
	case secFunctionBlock:
		b.fbType = "Subroutine Type"
	}
	return b
}

func (b *blockBuilder) code() string {
	return strings.TrimSpace(strings.Join(b.codeLines, "\n"))
}

// Parse scans generator output left to right and produces typed artifacts.
// The scan is defensive: unrecognized lines are skipped, every section is
// best-effort, and blocks without a name are dropped. A document yielding
// zero program blocks returns the partial result together with *ParseError.
func Parse(text string) (*models.ParsedProgram, error) {
	result := &models.ParsedProgram{
		GlobalLabels:   []models.Label{},
		ProgramBlocks:  []models.ProgramBlock{},
		Functions:      []models.Function{},
		FunctionBlocks: []models.FunctionBlock{},
		LocalLabels:    []models.Label{},
	}

	sec := secNone
	sub := subMeta
	var block *blockBuilder

	commit := func() {
		if block == nil {
			return
		}
		if block.name != "" {
			switch block.section {
			case secProgram:
				result.ProgramBlocks = append(result.ProgramBlocks, models.ProgramBlock{
					Stage:         block.stage,
					Name:          block.name,
					ExecutionType: block.executionType,
					LocalLabels:   block.labels,
					Code:          block.code(),
				})
			case secFunction:
				result.Functions = append(result.Functions, models.Function{
					Stage:       block.stage,
					Name:        block.name,
					ResultType:  block.resultType,
					WithEN:      block.withEN,
					LocalLabels: block.labels,
					Code:        block.code(),
				})
			case secFunctionBlock:
				result.FunctionBlocks = append(result.FunctionBlocks, models.FunctionBlock{
					Stage:       block.stage,
					Name:        block.name,
					FBType:      block.fbType,
					WithEN:      block.withEN,
					LocalLabels: block.labels,
					Code:        block.code(),
				})
			}
		}
		block = nil
	}

	for _, line := range strings.Split(text, "\n") {
		stripped := strings.TrimSpace(line)
		header := normalizeHeader(stripped)

		// Top-level boundaries commit whatever block is open.
		switch header {
		case "GLOBAL LABEL TABLE":
			commit()
			sec = secGlobal
			continue
		case "PROGRAM BLOCK":
			commit()
			sec = secProgram
			sub = subMeta
			block = newBlockBuilder(secProgram)
			continue
		case "FUNCTION":
			commit()
			sec = secFunction
			sub = subMeta
			block = newBlockBuilder(secFunction)
			continue
		case "FUNCTION BLOCK":
			commit()
			sec = secFunctionBlock
			sub = subMeta
			block = newBlockBuilder(secFunctionBlock)
			continue
		case "PROGRAM BLOCKS", "FUNCTIONS", "FUNCTION BLOCKS":
			// Section banners separate groups of blocks; the singular
			// header below each banner opens the actual block.
			commit()
			sec = secNone
			continue
		}
		if strings.HasPrefix(header, "STRUCTURED DATA TYPE TABLE") {
			commit()
			sec = secSDT
			continue
		}

		switch sec {
		case secGlobal:
			if isSeparator(stripped) || stripped == "" {
				continue
			}
			if label, ok := parseLabelRow(stripped); ok {
				result.GlobalLabels = append(result.GlobalLabels, label)
			}

		case secProgram, secFunction, secFunctionBlock:
			if block == nil {
				continue
			}
			switch header {
			case "LOCAL LABEL TABLE":
				sub = subLabels
				continue
			case "STRUCTURED TEXT CODE", "STRUCTURED TEXT":
				sub = subCode
				continue
			}

			switch sub {
			case subMeta:
				block.readMetadata(stripped)
			case subLabels:
				if isSeparator(stripped) || stripped == "" {
					continue
				}
				if label, ok := parseLabelRow(stripped); ok {
					block.labels = append(block.labels, label)
				}
			case subCode:
				block.readCodeLine(line, stripped)
			}
		}
	}
	commit()

	if len(result.ProgramBlocks) > 0 {
		result.LocalLabels = result.ProgramBlocks[0].LocalLabels
		result.ProgramBody = result.ProgramBlocks[0].Code
	} else {
		return result, &ParseError{Snippet: truncate(text, parseSnippetLen)}
	}

	return result, nil
}

func (b *blockBuilder) readMetadata(stripped string) {
	if value, ok := metaValue(stripped, "Stage:"); ok {
		b.stage = value
		return
	}
	if value, ok := metaValue(stripped, "Program Name:"); ok && b.section == secProgram {
		b.name = value
		return
	}
	if value, ok := metaValue(stripped, "Function Name:"); ok && b.section == secFunction {
		b.name = value
		return
	}
	if value, ok := metaValue(stripped, "Function Block Name:"); ok && b.section == secFunctionBlock {
		b.name = value
		return
	}
	if value, ok := metaValue(stripped, "Execution Type:"); ok {
		b.executionType = value
		return
	}
	if value, ok := metaValue(stripped, "Result Type:"); ok {
		b.resultType = value
		return
	}
	if value, ok := metaValue(stripped, "Function Block Type:"); ok {
		b.fbType = value
		return
	}
	if value, ok := metaValue(stripped, "With EN or Without EN:"); ok {
		lower := strings.ToLower(value)
		b.withEN = strings.Contains(lower, "with en") && !strings.Contains(lower, "without")
	}
}

// readCodeLine applies the code cleanup rules: drop stray section headers
// and table header rows, collapsing the blank line that follows a drop.
func (b *blockBuilder) readCodeLine(raw, stripped string) {
	if stripped == "" {
		if !b.skipNextEmpty {
			b.codeLines = append(b.codeLines, raw)
		}
		b.skipNextEmpty = false
		return
	}

	lower := strings.ToLower(stripped)
	if lower == "structured text code:" || lower == "structured text code" {
		b.skipNextEmpty = true
		return
	}
	if isSeparator(stripped) {
		b.skipNextEmpty = true
		return
	}
	if strings.Contains(raw, "|") && containsAnyKeyword(lower, codeHeaderKeywords) {
		b.skipNextEmpty = true
		return
	}

	b.codeLines = append(b.codeLines, raw)
	b.skipNextEmpty = false
}

// parseLabelRow splits a pipe-separated table row into a label. Rows with
// fewer than three cells, header rows, and placeholder names are rejected.
// The comment column shifts by one depending on whether the row carries a
// device cell.
func parseLabelRow(line string) (models.Label, bool) {
	if !strings.Contains(line, "|") {
		return models.Label{}, false
	}

	var parts []string
	for _, cell := range strings.Split(line, "|") {
		if trimmed := strings.TrimSpace(cell); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	if len(parts) < 3 {
		return models.Label{}, false
	}
	if containsAnyKeyword(strings.ToLower(parts[0]), headerCellTokens) {
		return models.Label{}, false
	}

	label := models.Label{
		Name:     parts[0],
		DataType: parts[1],
		Class:    parts[2],
	}
	if label.Name == "" || label.Name == "N/A" || strings.Trim(label.Name, "-: ") == "" {
		return models.Label{}, false
	}

	if len(parts) > 3 && deviceCellRe.MatchString(parts[3]) {
		label.Device = parts[3]
		label.InitialValue = cell(parts, 4)
		label.Constant = isTruthy(cell(parts, 5))
		label.Comment = cell(parts, 6)
		label.Remark = cell(parts, 7)
	} else {
		label.InitialValue = cell(parts, 3)
		label.Constant = isTruthy(cell(parts, 4))
		label.Comment = cell(parts, 5)
	}
	return label, true
}

// metaValue matches a "Key: value" metadata line case-insensitively.
func metaValue(stripped, prefix string) (string, bool) {
	if len(stripped) < len(prefix) || !strings.EqualFold(stripped[:len(prefix)], prefix) {
		return "", false
	}
	return strings.TrimSpace(stripped[len(prefix):]), true
}

func cell(parts []string, i int) string {
	if i < len(parts) {
		return parts[i]
	}
	return ""
}

func isTruthy(value string) bool {
	switch strings.ToLower(value) {
	case "yes", "true", "1":
		return true
	}
	return false
}

func containsAnyKeyword(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// normalizeHeader strips an optional "N)" prefix and a trailing colon, then
// upper-cases, so "2) Program Blocks" and "LOCAL LABEL TABLE:" both anchor.
func normalizeHeader(stripped string) string {
	header := numberPrefixRe.ReplaceAllString(stripped, "")
	header = strings.TrimSuffix(header, ":")
	return strings.ToUpper(strings.TrimSpace(header))
}

// isSeparator reports banner lines made of = or - characters.
func isSeparator(stripped string) bool {
	if len(stripped) < 4 {
		return false
	}
	for _, r := range stripped {
		if r != '=' && r != '-' {
			return false
		}
	}
	return true
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
