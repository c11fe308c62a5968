package buildinfo

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrintBuildData_Defaults(t *testing.T) {
	var buf bytes.Buffer
	PrintBuildData(&buf)

	out := buf.String()
	require.Contains(t, out, "Build version: N/A")
	require.Contains(t, out, "Build date: N/A")
}

func TestPrintBuildData_Overridden(t *testing.T) {
	origVersion, origDate := buildVersion, buildDate
	t.Cleanup(func() {
		buildVersion, buildDate = origVersion, origDate
	})

	buildVersion = "v1.2.3"
	buildDate = "2026-01-15"

	var buf bytes.Buffer
	PrintBuildData(&buf)

	out := buf.String()
	require.Contains(t, out, "Build version: v1.2.3")
	require.Contains(t, out, "Build date: 2026-01-15")
}
