package embedded

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	Reset()
	defer Reset()

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	Init(fstest.MapFS{})

	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}

	Init(nil)
	if IsInitialized() {
		t.Error("Init(nil) should leave the package uninitialized")
	}
}

// TestReadFileEmbedded 测试从嵌入文件系统读取 data/ 文件
func TestReadFileEmbedded(t *testing.T) {
	Reset()
	defer Reset()

	Init(fstest.MapFS{
		"data/game.yaml": &fstest.MapFile{Data: []byte("lives: 4\n")},
	})

	data, err := ReadFile("./data/game.yaml")
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "lives: 4\n" {
		t.Errorf("ReadFile = %q", data)
	}

	if !Exists("data/game.yaml") {
		t.Error("Exists(data/game.yaml) = false, want true")
	}
	if Exists("data/missing.yaml") {
		t.Error("Exists(data/missing.yaml) = true, want false")
	}

	_, err = ReadFile("data/missing.yaml")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}
}

// TestReadFileFromDisk 测试未初始化或非 data/ 路径走磁盘
func TestReadFileFromDisk(t *testing.T) {
	Reset()
	defer Reset()

	dir := t.TempDir()
	path := filepath.Join(dir, "override.yaml")
	if err := os.WriteFile(path, []byte("seed: 9\n"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	data, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "seed: 9\n" {
		t.Errorf("ReadFile = %q", data)
	}

	// 初始化后，绝对路径仍然从磁盘读取
	Init(fstest.MapFS{})
	if _, err := ReadFile(path); err != nil {
		t.Errorf("ReadFile after Init failed: %v", err)
	}

	if _, err := ReadFile(""); err == nil {
		t.Error("Expected error for empty path")
	}
}
