package doctor

import "testing"

// stubCheck returns a fixed result.
type stubCheck struct {
	name   string
	status Severity
}

func (s *stubCheck) Name() string     { return s.name }
func (s *stubCheck) Category() string { return "test" }
func (s *stubCheck) Run() *CheckResult {
	return &CheckResult{Name: s.name, Category: "test", Status: s.status}
}

func TestRunnerAggregatesResults(t *testing.T) {
	r := NewRunner()
	r.AddCheck(&stubCheck{name: "ok", status: SeverityPass})
	r.AddCheck(&stubCheck{name: "meh", status: SeverityWarning})
	r.AddCheck(&stubCheck{name: "bad", status: SeverityError})
	r.AddCheck(&stubCheck{name: "fyi", status: SeverityInfo})

	report := r.Run()

	if len(report.Results) != 4 {
		t.Fatalf("got %d results, want 4", len(report.Results))
	}
	if report.Summary.Passed != 1 || report.Summary.Warnings != 1 ||
		report.Summary.Errors != 1 || report.Summary.Info != 1 {
		t.Errorf("summary = %+v", report.Summary)
	}
	if !report.HasErrors() {
		t.Error("HasErrors() should be true")
	}
	if !report.HasWarnings() {
		t.Error("HasWarnings() should be true")
	}
}

func TestRunnerEmpty(t *testing.T) {
	report := NewRunner().Run()
	if report.HasErrors() || report.HasWarnings() {
		t.Error("empty run should have no errors or warnings")
	}
}

func TestSeverityString(t *testing.T) {
	tests := []struct {
		s    Severity
		want string
	}{
		{SeverityPass, "pass"},
		{SeverityInfo, "info"},
		{SeverityWarning, "warning"},
		{SeverityError, "error"},
		{Severity(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("Severity(%d).String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}
