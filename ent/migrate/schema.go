// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// GeneratedCodesColumns holds the columns for the "generated_codes" table.
	GeneratedCodesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "global_labels", Type: field.TypeJSON, Nullable: true},
		{Name: "local_labels", Type: field.TypeJSON, Nullable: true},
		{Name: "program_body", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "program_blocks", Type: field.TypeJSON, Nullable: true},
		{Name: "functions", Type: field.TypeJSON, Nullable: true},
		{Name: "function_blocks", Type: field.TypeJSON, Nullable: true},
		{Name: "program_name", Type: field.TypeString},
		{Name: "execution_type", Type: field.TypeEnum, Enums: []string{"Scan", "Initial", "Event", "Fixed Scan", "Standby"}, Default: "Scan"},
		{Name: "code_metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeInt},
		{Name: "stage_id", Type: field.TypeInt},
	}
	// GeneratedCodesTable holds the schema information for the "generated_codes" table.
	GeneratedCodesTable = &schema.Table{
		Name:       "generated_codes",
		Columns:    GeneratedCodesColumns,
		PrimaryKey: []*schema.Column{GeneratedCodesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "generated_codes_projects_codes",
				Columns:    []*schema.Column{GeneratedCodesColumns[11]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "generated_codes_stages_codes",
				Columns:    []*schema.Column{GeneratedCodesColumns[12]},
				RefColumns: []*schema.Column{StagesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "generatedcode_stage_id",
				Unique:  true,
				Columns: []*schema.Column{GeneratedCodesColumns[12]},
			},
			{
				Name:    "generatedcode_project_id",
				Unique:  false,
				Columns: []*schema.Column{GeneratedCodesColumns[11]},
			},
		},
	}
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "owner_id", Type: field.TypeInt},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "archived", "deleted"}, Default: "active"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "project_owner_id",
				Unique:  false,
				Columns: []*schema.Column{ProjectsColumns[3]},
			},
		},
	}
	// SafetyManualsColumns holds the columns for the "safety_manuals" table.
	SafetyManualsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "filename", Type: field.TypeString},
		{Name: "file_path", Type: field.TypeString},
		{Name: "is_embedded", Type: field.TypeBool, Default: false},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeInt},
	}
	// SafetyManualsTable holds the schema information for the "safety_manuals" table.
	SafetyManualsTable = &schema.Table{
		Name:       "safety_manuals",
		Columns:    SafetyManualsColumns,
		PrimaryKey: []*schema.Column{SafetyManualsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "safety_manuals_projects_safety_manuals",
				Columns:    []*schema.Column{SafetyManualsColumns[5]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "safetymanual_project_id",
				Unique:  false,
				Columns: []*schema.Column{SafetyManualsColumns[5]},
			},
		},
	}
	// StagesColumns holds the columns for the "stages" table.
	StagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "stage_number", Type: field.TypeInt},
		{Name: "stage_name", Type: field.TypeString},
		{Name: "stage_type", Type: field.TypeEnum, Enums: []string{"idle", "safety", "operation", "fault", "shutdown", "validation"}},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "original_logic", Type: field.TypeString, Size: 2147483647},
		{Name: "edited_logic", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "is_validated", Type: field.TypeBool, Default: false},
		{Name: "is_finalized", Type: field.TypeBool, Default: false},
		{Name: "dependencies", Type: field.TypeJSON, Nullable: true},
		{Name: "version_number", Type: field.TypeString, Default: "1.0.0"},
		{Name: "last_action", Type: field.TypeString, Nullable: true},
		{Name: "last_action_timestamp", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeInt},
	}
	// StagesTable holds the schema information for the "stages" table.
	StagesTable = &schema.Table{
		Name:       "stages",
		Columns:    StagesColumns,
		PrimaryKey: []*schema.Column{StagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "stages_projects_stages",
				Columns:    []*schema.Column{StagesColumns[15]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "stage_project_id_stage_number",
				Unique:  true,
				Columns: []*schema.Column{StagesColumns[15], StagesColumns[1]},
			},
		},
	}
	// UploadedFilesColumns holds the columns for the "uploaded_files" table.
	UploadedFilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeInt},
		{Name: "file_type", Type: field.TypeString},
		{Name: "original_filename", Type: field.TypeString},
		{Name: "stored_filename", Type: field.TypeString},
		{Name: "file_path", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt64},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeInt},
	}
	// UploadedFilesTable holds the schema information for the "uploaded_files" table.
	UploadedFilesTable = &schema.Table{
		Name:       "uploaded_files",
		Columns:    UploadedFilesColumns,
		PrimaryKey: []*schema.Column{UploadedFilesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "uploaded_files_projects_uploaded_files",
				Columns:    []*schema.Column{UploadedFilesColumns[8]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "uploadedfile_project_id",
				Unique:  false,
				Columns: []*schema.Column{UploadedFilesColumns[8]},
			},
		},
	}
	// VersionEntriesColumns holds the columns for the "version_entries" table.
	VersionEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "code_id", Type: field.TypeInt, Nullable: true},
		{Name: "stage_id", Type: field.TypeInt},
		{Name: "user_id", Type: field.TypeInt},
		{Name: "level", Type: field.TypeEnum, Enums: []string{"event", "session", "checkpoint"}, Default: "event"},
		{Name: "version_number", Type: field.TypeString},
		{Name: "old_code", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "new_code", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "diff", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "session_id", Type: field.TypeInt, Nullable: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
	}
	// VersionEntriesTable holds the schema information for the "version_entries" table.
	VersionEntriesTable = &schema.Table{
		Name:       "version_entries",
		Columns:    VersionEntriesColumns,
		PrimaryKey: []*schema.Column{VersionEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "versionentry_stage_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{VersionEntriesColumns[2], VersionEntriesColumns[10]},
			},
			{
				Name:    "versionentry_stage_id_version_number",
				Unique:  false,
				Columns: []*schema.Column{VersionEntriesColumns[2], VersionEntriesColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		GeneratedCodesTable,
		ProjectsTable,
		SafetyManualsTable,
		StagesTable,
		UploadedFilesTable,
		VersionEntriesTable,
	}
)

func init() {
	GeneratedCodesTable.ForeignKeys[0].RefTable = ProjectsTable
	GeneratedCodesTable.ForeignKeys[1].RefTable = StagesTable
	SafetyManualsTable.ForeignKeys[0].RefTable = ProjectsTable
	StagesTable.ForeignKeys[0].RefTable = ProjectsTable
	UploadedFilesTable.ForeignKeys[0].RefTable = ProjectsTable
}
