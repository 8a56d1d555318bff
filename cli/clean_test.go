package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/urfave/cli/v2"

	"github.com/vaan/ogimage/core"
)

func outputConfig(dir string) core.Config {
	cfg := core.DefaultConfig()
	cfg.OutputDir = dir
	return cfg
}

func TestCleanCommand_CleansOutputDir(t *testing.T) {
	tmpDir := t.TempDir()

	dummyFile := filepath.Join(tmpDir, "word", "1.svg")
	_ = os.MkdirAll(filepath.Dir(dummyFile), 0755)
	if err := os.WriteFile(dummyFile, []byte("<svg/>"), 0644); err != nil {
		t.Fatal(err)
	}

	overrideLoadConfig(outputConfig(tmpDir), func() {
		app := &cli.App{Commands: []*cli.Command{CleanCommand}}
		if err := app.Run([]string{"cmd", "clean"}); err != nil {
			t.Fatalf("clean command failed: %v", err)
		}

		if _, err := os.Stat(dummyFile); !os.IsNotExist(err) {
			t.Errorf("expected file to be deleted, but still exists: %s", dummyFile)
		}
	})
}

func TestCleanCommand_CleansOneTemplate(t *testing.T) {
	tmpDir := t.TempDir()
	wordDir := filepath.Join(tmpDir, "word")
	babyDir := filepath.Join(tmpDir, "baby-name")
	_ = os.MkdirAll(wordDir, 0755)
	_ = os.MkdirAll(babyDir, 0755)

	overrideLoadConfig(outputConfig(tmpDir), func() {
		app := &cli.App{Commands: []*cli.Command{CleanCommand}}
		if err := app.Run([]string{"cmd", "clean", "word"}); err != nil {
			t.Fatalf("clean command failed: %v", err)
		}
	})

	if _, err := os.Stat(wordDir); !os.IsNotExist(err) {
		t.Error("expected word directory to be deleted")
	}
	if _, err := os.Stat(babyDir); err != nil {
		t.Error("expected baby-name directory to remain")
	}
}

func TestCleanCommand_ArgumentCannotEscapeOutputDir(t *testing.T) {
	root := t.TempDir()
	outDir := filepath.Join(root, "out")
	sibling := filepath.Join(root, "keep")
	_ = os.MkdirAll(outDir, 0755)
	_ = os.MkdirAll(sibling, 0755)

	overrideLoadConfig(outputConfig(outDir), func() {
		app := &cli.App{Commands: []*cli.Command{CleanCommand}}
		_ = app.Run([]string{"cmd", "clean", "../keep"})
	})

	if _, err := os.Stat(sibling); err != nil {
		t.Error("expected directory outside outputDir to survive")
	}
}

func TestCleanCommand_NoOpOnNonexistentDir(t *testing.T) {
	overrideLoadConfig(outputConfig(filepath.Join(t.TempDir(), "does-not-exist")), func() {
		app := &cli.App{Commands: []*cli.Command{CleanCommand}}
		if err := app.Run([]string{"cmd", "clean"}); err != nil {
			t.Fatalf("expected no error for nonexistent dir, got: %v", err)
		}
	})
}

func TestCleanCommand_ErrIfNotDirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "notadir")
	_ = os.WriteFile(file, []byte("I'm a file"), 0644)

	overrideLoadConfig(outputConfig(file), func() {
		app := &cli.App{Commands: []*cli.Command{CleanCommand}}
		err := app.Run([]string{"cmd", "clean"})
		if err == nil || err.Error() != fmt.Sprintf("not a directory: %s", file) {
			t.Errorf("expected 'not a directory' error, got: %v", err)
		}
	})
}

func TestCleanCommand_ErrIfStatFails(t *testing.T) {
	overrideLoadConfig(outputConfig("/hopefully/invalid/\x00"), func() {
		app := &cli.App{Commands: []*cli.Command{CleanCommand}}
		err := app.Run([]string{"cmd", "clean"})
		if err == nil || !strings.Contains(err.Error(), "failed to access path") {
			t.Fatalf("expected stat error, got: %v", err)
		}
	})
}
