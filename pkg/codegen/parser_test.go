package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleOutput = `1) GLOBAL LABEL TABLE
=====================
| Label Name | Data Type | Class | Assign (Device/Label) | Initial Value | Constant | English(Display Target) |
|------------|-----------|-------|-----------------------|---------------|----------|-------------------------|
| Start_Button | Bool | VAR_GLOBAL | X0 | FALSE | No | Start push button |
| Run_Mode | Bool | VAR_GLOBAL | M0 | FALSE | No | Conveyor run flag |

2) PROGRAM BLOCKS
=================

PROGRAM BLOCK:
Stage: 1 - Conveyor Start
Program Name: STAGE_1_MAIN
Execution Type: Scan

LOCAL LABEL TABLE:
| Label Name | Data Type | Class | Initial Value | Constant | English(Display Target) |
|------------|-----------|-------|---------------|----------|--------------------------|
| Debounce_Timer | TON | VAR | T#100ms | No | Input debounce |

STRUCTURED TEXT CODE:
IF Start_Button THEN
    Run_Mode := TRUE;
END_IF;

PROGRAM BLOCK:
Stage: 1 - Conveyor Start
Program Name: STAGE_1_INIT
Execution Type: Initial

STRUCTURED TEXT CODE:
Run_Mode := FALSE;

3) FUNCTIONS
============

FUNCTION:
Stage: 1 - Conveyor Start
Function Name: FUN_ScaleSpeed
Result Type: INT
With EN or Without EN: With EN

LOCAL LABEL TABLE:
| Label Name | Data Type | Class | Initial Value | Constant | English(Display Target) |
| Speed_Raw | Word [Signed] | VAR_INPUT | 0 | No | Raw encoder value |

STRUCTURED TEXT CODE:
FUN_ScaleSpeed := Speed_Raw * 2;

4) FUNCTION BLOCKS
==================

FUNCTION BLOCK:
Stage: 1 - Conveyor Start
Function Block Name: FB_MotorControl
Function Block Type: Macro Type
With EN or Without EN: Without EN

STRUCTURED TEXT CODE:
Out_Run := In_Enable;
`

func TestParseSectionedOutput(t *testing.T) {
	parsed, err := Parse(sampleOutput)
	require.NoError(t, err)

	require.Len(t, parsed.GlobalLabels, 2)
	start := parsed.GlobalLabels[0]
	assert.Equal(t, "Start_Button", start.Name)
	assert.Equal(t, "Bool", start.DataType)
	assert.Equal(t, "VAR_GLOBAL", start.Class)
	assert.Equal(t, "X0", start.Device)
	assert.Equal(t, "FALSE", start.InitialValue)
	assert.False(t, start.Constant)
	assert.Equal(t, "Start push button", start.Comment)
	assert.Equal(t, "M0", parsed.GlobalLabels[1].Device)

	require.Len(t, parsed.ProgramBlocks, 2)
	main := parsed.ProgramBlocks[0]
	assert.Equal(t, "STAGE_1_MAIN", main.Name)
	assert.Equal(t, "Scan", main.ExecutionType)
	assert.Equal(t, "1 - Conveyor Start", main.Stage)
	require.Len(t, main.LocalLabels, 1)
	assert.Equal(t, "Debounce_Timer", main.LocalLabels[0].Name)
	assert.Contains(t, main.Code, "IF Start_Button THEN")
	assert.Contains(t, main.Code, "END_IF;")
	assert.NotContains(t, main.Code, "|")

	init := parsed.ProgramBlocks[1]
	assert.Equal(t, "STAGE_1_INIT", init.Name)
	assert.Equal(t, "Initial", init.ExecutionType)
	assert.Equal(t, "Run_Mode := FALSE;", init.Code)

	// Flat view mirrors the first program block.
	assert.Equal(t, main.Code, parsed.ProgramBody)
	assert.Equal(t, main.LocalLabels, parsed.LocalLabels)

	require.Len(t, parsed.Functions, 1)
	fn := parsed.Functions[0]
	assert.Equal(t, "FUN_ScaleSpeed", fn.Name)
	assert.Equal(t, "INT", fn.ResultType)
	assert.True(t, fn.WithEN)
	require.Len(t, fn.LocalLabels, 1)
	assert.Equal(t, "VAR_INPUT", fn.LocalLabels[0].Class)

	require.Len(t, parsed.FunctionBlocks, 1)
	fb := parsed.FunctionBlocks[0]
	assert.Equal(t, "FB_MotorControl", fb.Name)
	assert.Equal(t, "Macro Type", fb.FBType)
	assert.False(t, fb.WithEN)
}

func TestParseUnnumberedHeaders(t *testing.T) {
	text := `GLOBAL LABEL TABLE:
| Sensor1 | Bool | VAR_GLOBAL | X1 | FALSE | No | Photo eye |

PROGRAM BLOCK:
Program Name: STAGE_2
Execution Type: Scan

STRUCTURED TEXT CODE:
Run := Sensor1;
`
	parsed, err := Parse(text)
	require.NoError(t, err)
	require.Len(t, parsed.GlobalLabels, 1)
	assert.Equal(t, "X1", parsed.GlobalLabels[0].Device)
	require.Len(t, parsed.ProgramBlocks, 1)
	assert.Equal(t, "Run := Sensor1;", parsed.ProgramBody)
}

func TestParseNoProgramBlock(t *testing.T) {
	parsed, err := Parse("Sorry, I cannot generate code for this request.")

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.NotEmpty(t, parseErr.Snippet)
	require.NotNil(t, parsed)
	assert.Empty(t, parsed.ProgramBlocks)
	assert.Empty(t, parsed.GlobalLabels)
}

func TestParseNamelessBlockDropped(t *testing.T) {
	text := `PROGRAM BLOCK:
Execution Type: Scan

STRUCTURED TEXT CODE:
Run := TRUE;
`
	parsed, err := Parse(text)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Empty(t, parsed.ProgramBlocks)
}

func TestParseLabelRow(t *testing.T) {
	label, ok := parseLabelRow("| Stop_Button | Bool | VAR_GLOBAL | X2 | TRUE | Yes | E-stop | NC contact |")
	require.True(t, ok)
	assert.Equal(t, "X2", label.Device)
	assert.Equal(t, "TRUE", label.InitialValue)
	assert.True(t, label.Constant)
	assert.Equal(t, "E-stop", label.Comment)
	assert.Equal(t, "NC contact", label.Remark)

	// Without a device cell the columns shift left by one.
	label, ok = parseLabelRow("| Counter | Word [Signed] | VAR | 0 | No | Cycle counter |")
	require.True(t, ok)
	assert.Empty(t, label.Device)
	assert.Equal(t, "0", label.InitialValue)
	assert.Equal(t, "Cycle counter", label.Comment)

	_, ok = parseLabelRow("| Label Name | Data Type | Class |")
	assert.False(t, ok)
	_, ok = parseLabelRow("|---|---|---|---|")
	assert.False(t, ok)
	_, ok = parseLabelRow("plain prose line")
	assert.False(t, ok)
	_, ok = parseLabelRow("| N/A | Bool | VAR |")
	assert.False(t, ok)
}

func TestExecutionTypeFor(t *testing.T) {
	assert.Equal(t, "Initial", ExecutionTypeFor("idle"))
	assert.Equal(t, "Event", ExecutionTypeFor("fault"))
	assert.Equal(t, "Scan", ExecutionTypeFor("operation"))
	assert.Equal(t, "Scan", ExecutionTypeFor("safety"))
}

func TestParseErrorMessage(t *testing.T) {
	err := &ParseError{Snippet: "garbage"}
	assert.Contains(t, err.Error(), "garbage")
}
