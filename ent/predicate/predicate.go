// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// GeneratedCode is the predicate function for generatedcode builders.
type GeneratedCode func(*sql.Selector)

// Project is the predicate function for project builders.
type Project func(*sql.Selector)

// SafetyManual is the predicate function for safetymanual builders.
type SafetyManual func(*sql.Selector)

// Stage is the predicate function for stage builders.
type Stage func(*sql.Selector)

// UploadedFile is the predicate function for uploadedfile builders.
type UploadedFile func(*sql.Selector)

// VersionEntry is the predicate function for versionentry builders.
type VersionEntry func(*sql.Selector)
