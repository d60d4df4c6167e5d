package utils

import (
	"bytes"
	"strings"
	"testing"
)

func newBufferedDiagnostics(level DiagnosticLevel) (*DiagnosticSystem, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	d := NewDiagnosticSystem(level)
	d.SetOutput(&out, &errOut)
	return d, &out, &errOut
}

func TestDiagnosticSystem_Levels(t *testing.T) {
	d, out, errOut := newBufferedDiagnostics(DiagnosticInfo)

	d.Error("broken %s", "input")
	d.Warn("careful")
	d.Info("found %d classes", 2)
	d.Verbose("hidden detail")
	d.Debug("hidden debug")

	if !strings.Contains(errOut.String(), "[ERROR] broken input") {
		t.Errorf("expected error on error output, got %q", errOut.String())
	}
	if !strings.Contains(out.String(), "[WARN] careful") {
		t.Errorf("expected warning, got %q", out.String())
	}
	if !strings.Contains(out.String(), "[INFO] found 2 classes") {
		t.Errorf("expected info, got %q", out.String())
	}
	if strings.Contains(out.String(), "hidden") {
		t.Errorf("verbose and debug output should be suppressed at info level, got %q", out.String())
	}
}

func TestDiagnosticSystem_Silent(t *testing.T) {
	d, out, errOut := newBufferedDiagnostics(DiagnosticSilent)

	d.Error("nope")
	d.Header("nope")
	d.PhaseItem("nope")
	d.Summary("nope", map[string]interface{}{"a": 1})

	if out.Len() != 0 || errOut.Len() != 0 {
		t.Errorf("expected no output when silent, got %q / %q", out.String(), errOut.String())
	}
}

func TestDiagnosticSystem_SummaryAndIndent(t *testing.T) {
	d, out, _ := newBufferedDiagnostics(DiagnosticInfo)

	d.Indent()
	d.List("DoStuffModel")
	d.Unindent()
	d.Unindent()
	d.List("top")
	d.Summary("Done", map[string]interface{}{"files": 4, "classes": 2})

	text := out.String()
	if !strings.Contains(text, "  - DoStuffModel\n") {
		t.Errorf("expected indented list item, got %q", text)
	}
	if !strings.Contains(text, "\n- top\n") {
		t.Errorf("expected unindented list item, got %q", text)
	}
	if strings.Index(text, "classes: 2") > strings.Index(text, "files: 4") {
		t.Errorf("expected summary keys sorted, got %q", text)
	}
}

func TestDiagnosticSystem_Phases(t *testing.T) {
	d, out, _ := newBufferedDiagnostics(DiagnosticInfo)

	d.Header("generating tldtest")
	d.PhaseHeader("Rendering")
	d.PhaseItem("jsp")
	d.PhaseProgress("Writing DoStuffTag.java")
	d.PhaseProgress("Skipping velocity")
	d.GenerationComplete()

	text := out.String()
	for _, want := range []string{
		"Autotag: generating tldtest",
		"Rendering:",
		"✓ jsp",
		"✏ Writing DoStuffTag.java",
		"- Skipping velocity",
		"Autotag: Generation complete!",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("expected %q in output %q", want, text)
		}
	}
}
