// Package schemas holds the JSON Schemas for artifacts the autograder writes.
package schemas

import _ "embed"

// ReportFile is the schema path relative to the repository root
const ReportFile = "schemas/report.schema.json"

// Report is the schema for the JSON report artifact
//
//go:embed report.schema.json
var Report string
