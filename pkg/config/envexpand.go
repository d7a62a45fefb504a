package config

import (
	"bytes"
	"os"
	"text/template"
)

// ExpandEnv substitutes {{.VAR}} references in raw config data with values
// from the process environment. Unset variables expand to the empty string.
// On template parse or execution errors the original data is returned
// unchanged so plain YAML passes through untouched.
func ExpandEnv(data []byte) []byte {
	tmpl, err := template.New("config").Option("missingkey=zero").Parse(string(data))
	if err != nil {
		return data
	}

	envMap := make(map[string]string)
	for _, env := range os.Environ() {
		// Split only on first = to handle values with = in them
		if idx := bytes.IndexByte([]byte(env), '='); idx > 0 {
			envMap[env[:idx]] = env[idx+1:]
		}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, envMap); err != nil {
		return data
	}
	return buf.Bytes()
}
