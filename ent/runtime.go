// Code generated by ent, DO NOT EDIT.

package ent

import (
	"github.com/nexus-controls/plcforge/ent/project"
	"github.com/nexus-controls/plcforge/ent/safetymanual"
	"github.com/nexus-controls/plcforge/ent/schema"
	"github.com/nexus-controls/plcforge/ent/stage"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	generatedcodeFields := schema.GeneratedCode{}.Fields()
	_ = generatedcodeFields
	projectFields := schema.Project{}.Fields()
	_ = projectFields
	// projectDescName is the schema descriptor for name field.
	projectDescName := projectFields[0].Descriptor()
	// project.NameValidator is a validator for the "name" field. It is called by the builders before save.
	project.NameValidator = projectDescName.Validators[0].(func(string) error)
	safetymanualFields := schema.SafetyManual{}.Fields()
	_ = safetymanualFields
	// safetymanualDescIsEmbedded is the schema descriptor for is_embedded field.
	safetymanualDescIsEmbedded := safetymanualFields[3].Descriptor()
	// safetymanual.DefaultIsEmbedded holds the default value on creation for the is_embedded field.
	safetymanual.DefaultIsEmbedded = safetymanualDescIsEmbedded.Default.(bool)
	stageFields := schema.Stage{}.Fields()
	_ = stageFields
	// stageDescStageNumber is the schema descriptor for stage_number field.
	stageDescStageNumber := stageFields[1].Descriptor()
	// stage.StageNumberValidator is a validator for the "stage_number" field. It is called by the builders before save.
	stage.StageNumberValidator = stageDescStageNumber.Validators[0].(func(int) error)
	// stageDescStageName is the schema descriptor for stage_name field.
	stageDescStageName := stageFields[2].Descriptor()
	// stage.StageNameValidator is a validator for the "stage_name" field. It is called by the builders before save.
	stage.StageNameValidator = stageDescStageName.Validators[0].(func(string) error)
	// stageDescIsValidated is the schema descriptor for is_validated field.
	stageDescIsValidated := stageFields[7].Descriptor()
	// stage.DefaultIsValidated holds the default value on creation for the is_validated field.
	stage.DefaultIsValidated = stageDescIsValidated.Default.(bool)
	// stageDescIsFinalized is the schema descriptor for is_finalized field.
	stageDescIsFinalized := stageFields[8].Descriptor()
	// stage.DefaultIsFinalized holds the default value on creation for the is_finalized field.
	stage.DefaultIsFinalized = stageDescIsFinalized.Default.(bool)
	// stageDescVersionNumber is the schema descriptor for version_number field.
	stageDescVersionNumber := stageFields[10].Descriptor()
	// stage.DefaultVersionNumber holds the default value on creation for the version_number field.
	stage.DefaultVersionNumber = stageDescVersionNumber.Default.(string)
	versionentryFields := schema.VersionEntry{}.Fields()
	_ = versionentryFields
}
