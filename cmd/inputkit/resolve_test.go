package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/inputkit/internal/styling"
	"github.com/alexisbeaulieu97/inputkit/internal/theme"
	"github.com/alexisbeaulieu97/inputkit/internal/widgets/input"
)

type decodedReport struct {
	State     map[string]bool           `yaml:"state"`
	Resolved  map[string]any            `yaml:"resolved"`
	Container map[string]any            `yaml:"container"`
	Primitive map[string]any            `yaml:"primitive"`
	Overlays  map[string]map[string]any `yaml:"overlays"`
	Final     map[string]any            `yaml:"final"`
}

func runResolveCommand(t *testing.T, args ...string) decodedReport {
	t.Helper()
	stdout, err := executeCommand(append([]string{"resolve"}, args...)...)
	require.NoError(t, err)

	var report decodedReport
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &report))
	return report
}

func TestResolveCommandDefaultInput(t *testing.T) {
	report := runResolveCommand(t)

	assert.Equal(t, "#cbd5e1", report.Container["borderColor"])
	assert.Equal(t, "#cbd5e1", report.Final["borderColor"])
	assert.Equal(t, "outline", report.Resolved["variant"])
	assert.Equal(t, "unstyled", report.Primitive["variant"], "the field renders unstyled whatever the variant")
	assert.Equal(t, 1, report.Primitive["flex"])
	assert.NotContains(t, report.Primitive, "borderColor")
	assert.Contains(t, report.Primitive, "placeholderTextColor")
	assert.Equal(t, "#94a3b8", report.Overlays["hover"]["borderColor"])
}

func TestResolveCommandAppliesPropsAndStates(t *testing.T) {
	report := runResolveCommand(t,
		"--props", "_hover.borderColor=red.600",
		"--props", "mt=2",
		"--state", "hovered",
	)

	assert.True(t, report.State["hovered"])
	assert.False(t, report.State["focused"])
	assert.Equal(t, 2, report.Container["mt"])
	assert.Equal(t, "#dc2626", report.Final["borderColor"])
}

func TestResolveCommandFocusBeatsHover(t *testing.T) {
	report := runResolveCommand(t, "--state", "hovered,focused")
	assert.Equal(t, "#3b82f6", report.Final["borderColor"])
}

func TestResolveCommandRejectsBadInput(t *testing.T) {
	_, err := executeCommand("resolve", "--props", "borderColor")
	require.Error(t, err)
	require.Contains(t, err.Error(), "expected key=value")

	_, err = executeCommand("resolve", "--state", "pressed")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown state")
}

func TestParsePropsNestsDottedKeys(t *testing.T) {
	props, err := parseProps([]string{"_focus.borderColor=blue.500", "_focus.bg=white", "isDisabled=true", "label="})
	require.NoError(t, err)

	focus, ok := props.Nested(styling.KeyFocus)
	require.True(t, ok)
	assert.Equal(t, "blue.500", focus["borderColor"])
	assert.Equal(t, "white", focus["bg"])
	assert.Equal(t, true, props["isDisabled"])
	assert.Equal(t, "", props["label"])
}

func TestResolveCommandReportsWhatRenders(t *testing.T) {
	report := runResolveCommand(t, "--props", "variant=filled")

	for key, want := range map[string]any{
		"display":        "flex",
		"flexDirection":  "row",
		"alignItems":     "center",
		"justifyContent": "space-between",
		"overflow":       "hidden",
	} {
		assert.Equal(t, want, report.Container[key], key)
		assert.Equal(t, want, report.Final[key], key)
	}
	assert.Equal(t, "filled", report.Resolved["variant"])
	assert.Equal(t, "unstyled", report.Primitive["variant"])

	routed := input.Route(theme.Default().Resolve(input.ComponentName, styling.Props{"variant": "filled"}), styling.State{})
	assert.Equal(t, routed.Box["bg"], report.Final["bg"])
}

func TestResolveCommandLogsToErrorStream(t *testing.T) {
	root := newRootCmd()
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs([]string{"resolve", "--verbose", "--no-color", "--props", "mt=1"})

	require.NoError(t, root.Execute())
	assert.Contains(t, stderr.String(), "resolved props")
	assert.NotContains(t, stderr.String(), "\x1b[")

	var report decodedReport
	require.NoError(t, yaml.Unmarshal(stdout.Bytes(), &report))
	assert.Equal(t, 1, report.Container["mt"])
}
