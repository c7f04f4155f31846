package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// executeWithLogs runs the root command with logs captured at level.
func executeWithLogs(t *testing.T, ctx context.Context, level log.Level, args ...string) (string, error) {
	t.Helper()
	var logs, stdout, stderr bytes.Buffer
	c := New(&logs, level)
	root := c.RootCommand()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	return logs.String(), err
}

func TestLogTimestampFormat(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, LogInfo).Info("sized")

	if !regexp.MustCompile(`^\d{2}:\d{2}:\d{2}\.\d{2} `).MatchString(buf.String()) {
		t.Errorf("log line should start with an HH:MM:SS.ms timestamp, got %q", buf.String())
	}
}

func TestSizeLogsArtifactProgress(t *testing.T) {
	out := filepath.Join(t.TempDir(), "village")
	logs, err := executeWithLogs(t, context.Background(), LogInfo,
		append(villageArgs, "-o", out, "-f", "svg,json")...)
	if err != nil {
		t.Fatalf("size: %v", err)
	}

	if !strings.Contains(logs, "Wrote 2 artifact(s)") {
		t.Errorf("expected artifact progress line, got:\n%s", logs)
	}
	if !strings.Contains(logs, "sized wetland") {
		t.Errorf("pipeline should log through the command logger, got:\n%s", logs)
	}
}

func TestSizeWithoutOutputLogsNothingAtInfo(t *testing.T) {
	logs, err := executeWithLogs(t, context.Background(), LogInfo, villageArgs...)
	if err != nil {
		t.Fatalf("size: %v", err)
	}
	if logs != "" {
		t.Errorf("summary-only run should not log at info, got:\n%s", logs)
	}
}

func TestSizeRejectionLoggedAtDebug(t *testing.T) {
	args := []string{"size", "--population", "1000", "--flow", "150", "--ci", "30", "--ce", "30"}

	logs, err := executeWithLogs(t, context.Background(), LogInfo, args...)
	if err == nil {
		t.Fatal("expected degenerate error")
	}
	if strings.Contains(logs, "sizing rejected") {
		t.Errorf("rejection should be hidden at info level, got:\n%s", logs)
	}

	logs, _ = executeWithLogs(t, context.Background(), LogDebug, args...)
	if !strings.Contains(logs, "sizing rejected") {
		t.Errorf("rejection should be logged at debug level, got:\n%s", logs)
	}
}

func TestRootCommandAttachesLogger(t *testing.T) {
	c := New(&bytes.Buffer{}, LogInfo)
	root := c.RootCommand()

	var got *log.Logger
	root.AddCommand(&cobra.Command{
		Use: "capture",
		Run: func(cmd *cobra.Command, args []string) {
			got = loggerFromContext(cmd.Context())
		},
	})
	root.SetArgs([]string{"capture"})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatal(err)
	}

	if got != c.Logger {
		t.Error("subcommands should see the CLI logger in their context")
	}
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("a bare context should fall back to the default logger")
	}
}

func TestServeLogsThroughCommandLogger(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	time.AfterFunc(100*time.Millisecond, cancel)

	logs, err := executeWithLogs(t, ctx, LogInfo, "serve", "--addr", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("serve: %v", err)
	}
	if !strings.Contains(logs, "shutting down") {
		t.Errorf("server should log through the command logger, got:\n%s", logs)
	}
}
