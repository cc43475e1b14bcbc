package config

const TestcaseFileExt = ".yaml"

// TestcaseFileExtensions are all recognized testcase file extensions
var TestcaseFileExtensions = []string{".yaml", ".yml"}

// Value domain names accepted in testcase files
const (
	IntTypeName    = "int"
	StringTypeName = "string"
)
