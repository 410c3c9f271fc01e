package clientconfig

import (
	"fmt"
	"strings"
	"text/template"
)

const (
	// MainConfigName is the file name of the client's main config.
	MainConfigName = "quartz-client.json5"
	// TestConfigName is the file name of the client's testing config.
	TestConfigName = "quartz-testing-client.json5"
)

// MainConfig is the client's main config as written for a test run.
type MainConfig struct {
	Debug bool
	Mode  string
}

// TestConfig enables the client's in-game test harness.
type TestConfig struct {
	Enabled bool
	AutoRun bool
}

// Document is a rendered config file.
type Document struct {
	Name    string
	Content string
}

var (
	mainTemplate = template.Must(template.New(MainConfigName).Parse(`
{
    debug: {{ .Debug }},
    mode: "{{ .Mode }}",
}
`))

	testTemplate = template.Must(template.New(TestConfigName).Parse(`
{
    Enabled: {{ .Enabled }},
    AutoRun: {{ .AutoRun }},
}
`))
)

// NewMainConfig returns the main config for mode. Debug is always off.
func NewMainConfig(mode string) MainConfig {
	return MainConfig{Debug: false, Mode: mode}
}

// NewTestConfig returns the testing config with both switches on.
func NewTestConfig() TestConfig {
	return TestConfig{Enabled: true, AutoRun: true}
}

// RenderMainConfig renders the main config document for mode.
func RenderMainConfig(mode string) (string, error) {
	return render(mainTemplate, NewMainConfig(mode))
}

// RenderTestConfig renders the testing config document.
func RenderTestConfig() (string, error) {
	return render(testTemplate, NewTestConfig())
}

// Documents renders both documents in the order they are written.
func Documents(mode string) ([]Document, error) {
	mainDoc, err := RenderMainConfig(mode)
	if err != nil {
		return nil, err
	}
	testDoc, err := RenderTestConfig()
	if err != nil {
		return nil, err
	}
	return []Document{
		{Name: MainConfigName, Content: mainDoc},
		{Name: TestConfigName, Content: testDoc},
	}, nil
}

// render uses text/template, not html/template: the mode goes in unescaped.
func render(tmpl *template.Template, data any) (string, error) {
	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", tmpl.Name(), err)
	}
	return sb.String(), nil
}
