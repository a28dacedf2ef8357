// Package embedded 提供嵌入资源的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量必须声明在项目根目录（embed.go）。
// 本包提供包装函数，让 config 包可以读取嵌入的 data/ 文件。
//
// 未调用 Init() 时，所有路径都直接从磁盘读取（测试和 --config 覆盖文件走这条路径）。
package embedded

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var (
	dataFS      fs.FS
	initialized bool
)

// Init 初始化嵌入的 data 文件系统
// 必须在 main() 开始时、任何配置加载之前调用
func Init(data fs.FS) {
	dataFS = data
	initialized = data != nil
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// Reset 清除初始化状态（仅用于测试）
func Reset() {
	dataFS = nil
	initialized = false
}

// normalize 标准化路径分隔符并移除 "./" 前缀（embed.FS 使用正斜杠）
func normalize(path string) string {
	return strings.TrimPrefix(filepath.ToSlash(path), "./")
}

// isEmbedded 判断路径是否应从嵌入文件系统读取
func isEmbedded(path string) bool {
	return initialized && strings.HasPrefix(path, "data/")
}

// ReadFile 读取文件内容
// 已初始化且路径以 "data/" 开头时从嵌入文件系统读取，否则从磁盘读取
func ReadFile(path string) ([]byte, error) {
	if path == "" {
		return nil, fmt.Errorf("empty resource path")
	}

	p := normalize(path)
	if isEmbedded(p) {
		data, err := fs.ReadFile(dataFS, p)
		if err != nil {
			return nil, fmt.Errorf("read embedded %s: %w", p, err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// Exists 检查文件是否存在
func Exists(path string) bool {
	p := normalize(path)
	if isEmbedded(p) {
		_, err := fs.Stat(dataFS, p)
		return err == nil
	}
	_, err := os.Stat(path)
	return err == nil
}
