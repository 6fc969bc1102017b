package config

import (
	"flag"
	"os"
	"strings"
	"testing"
)

func TestParseFlags(t *testing.T) {
	// フラグをリセット
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)

	// テスト用の引数を設定
	os.Args = []string{"cmd", "-pack", "scene.pack", "-cue", "scene.csv", "-o", "/tmp", "-d", "-n"}

	cfg := ParseFlags()

	if cfg.PackPath != "scene.pack" {
		t.Errorf("Expected PackPath 'scene.pack', got '%s'", cfg.PackPath)
	}
	if cfg.CuePath != "scene.csv" {
		t.Errorf("Expected CuePath 'scene.csv', got '%s'", cfg.CuePath)
	}
	if cfg.OutputDir != "/tmp" {
		t.Errorf("Expected OutputDir '/tmp', got '%s'", cfg.OutputDir)
	}
	if !cfg.DebugMode {
		t.Error("Expected DebugMode to be true")
	}
	if !cfg.DryRun {
		t.Error("Expected DryRun to be true")
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	os.Args = []string{"cmd"}

	cfg := ParseFlags()

	if cfg.PackPath != "" || cfg.CuePath != "" {
		t.Errorf("Expected empty input paths, got %q / %q", cfg.PackPath, cfg.CuePath)
	}
	if cfg.OutputDir != "." {
		t.Errorf("Expected OutputDir '.', got '%s'", cfg.OutputDir)
	}
	if cfg.DebugMode || cfg.DryRun || cfg.ShowVersion {
		t.Error("Expected all boolean flags to default to false")
	}
}

func TestDebugLogger(t *testing.T) {
	// 出力をキャプチャするためのパイプ
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	// デバッグモード有効
	logger := NewDebugLogger(true)
	logger.Printf("test message %d\n", 123)

	w.Close()
	os.Stdout = oldStdout

	outputBytes := make([]byte, 1024)
	n, _ := r.Read(outputBytes)
	output := string(outputBytes[:n])

	if !strings.Contains(output, "test message 123") {
		t.Errorf("Expected debug output to contain 'test message 123', got '%s'", output)
	}

	// デバッグモード無効
	logger = NewDebugLogger(false)
	r, w, _ = os.Pipe()
	os.Stdout = w

	logger.Printf("should not appear\n")

	w.Close()
	os.Stdout = oldStdout

	outputBytes = make([]byte, 1024)
	n, _ = r.Read(outputBytes)
	output = string(outputBytes[:n])

	if strings.Contains(output, "should not appear") {
		t.Error("Debug output should not appear when debug mode is disabled")
	}
}
