package commands

import (
	"context"
	"log/slog"
	"testing"

	"github.com/jmwatte/myshorts/internal/logging"
)

func TestSetupLogging_VerbosityFlags(t *testing.T) {
	origVerbosity := verbosity
	defer func() { verbosity = origVerbosity }()

	tests := []struct {
		name      string
		verbosity int
		wantLevel slog.Level
	}{
		{"default (0)", 0, slog.LevelWarn},
		{"verbose (1)", 1, slog.LevelInfo},
		{"debug (2)", 2, slog.LevelDebug},
		{"trace (3)", 3, logging.LevelTrace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verbosity = tt.verbosity
			if err := setupLogging(rootCmd); err != nil {
				t.Fatalf("setupLogging failed: %v", err)
			}

			logger := slog.Default()
			if !logger.Enabled(context.Background(), tt.wantLevel) {
				t.Errorf("expected level %v to be enabled", tt.wantLevel)
			}
		})
	}
}

func TestSetupLogging_EnvVar(t *testing.T) {
	origVerbosity := verbosity
	defer func() { verbosity = origVerbosity }()

	tests := []struct {
		name      string
		envVal    string
		wantLevel slog.Level
	}{
		{"MYSHORTS_DEBUG=1", "1", slog.LevelDebug},
		{"MYSHORTS_DEBUG=true", "true", slog.LevelDebug},
		{"MYSHORTS_DEBUG=2", "2", logging.LevelTrace},
		{"MYSHORTS_DEBUG=0", "0", slog.LevelWarn},
		{"MYSHORTS_DEBUG=unknown", "foo", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verbosity = 0
			t.Setenv("MYSHORTS_DEBUG", tt.envVal)

			if err := setupLogging(rootCmd); err != nil {
				t.Fatalf("setupLogging failed: %v", err)
			}

			logger := slog.Default()
			if !logger.Enabled(context.Background(), tt.wantLevel) {
				t.Errorf("expected level %v to be enabled", tt.wantLevel)
			}
		})
	}
}

func TestSetupLogging_QuietAndVerboseConflict(t *testing.T) {
	origVerbosity := verbosity
	origQuiet := quiet
	defer func() {
		verbosity = origVerbosity
		quiet = origQuiet
	}()

	verbosity = 1
	quiet = true

	if err := setupLogging(rootCmd); err == nil {
		t.Error("expected error when combining --quiet and --verbose")
	}
}

func TestRootCommand_Metadata(t *testing.T) {
	if rootCmd.Use != "myshorts" {
		t.Errorf("Use = %q", rootCmd.Use)
	}
	if !rootCmd.SilenceErrors || !rootCmd.SilenceUsage {
		t.Error("root command should silence cobra's own error and usage output")
	}

	subs := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		subs[c.Name()] = true
	}
	for _, want := range []string{
		"add", "set", "remove", "list", "categories", "show",
		"run", "edit", "export", "sync", "doctor", "version",
	} {
		if !subs[want] {
			t.Errorf("root is missing subcommand %q", want)
		}
	}
}

func TestValidateDoctorFlags_MutuallyExclusive(t *testing.T) {
	defer func() {
		doctorJSON = false
		doctorQuiet = false
		doctorVerbose = false
	}()

	doctorJSON = true
	doctorQuiet = true
	if err := validateDoctorFlags(nil, nil); err == nil {
		t.Error("expected error for --json with --quiet")
	}

	doctorQuiet = false
	if err := validateDoctorFlags(nil, nil); err != nil {
		t.Errorf("single flag should be fine: %v", err)
	}
}
