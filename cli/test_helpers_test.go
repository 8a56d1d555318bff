package cli

import (
	"bytes"
	"io"
	"os"

	"github.com/vaan/ogimage/core"
)

func captureOutput(f func()) string {
	orig := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	f()

	w.Close()
	os.Stdout = orig

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

func overrideLoadConfig(cfg core.Config, testFn func()) {
	orig := loadConfig
	loadConfig = func(_ string) (core.Config, error) {
		return cfg, nil
	}
	defer func() { loadConfig = orig }()
	testFn()
}
