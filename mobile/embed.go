//go:build mobile

// embed.go - 移动端资源嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译。
// 构建前需要把 data/ 复制到此目录：
//
//	mkdir -p mobile/data && cp data/*.yaml mobile/data/
//	ebitenmobile bind -target android -tags mobile -javapkg com.decker.plasmaraid -o build/android/plasmaraid.aar ./mobile
package mobile

import "embed"

//go:embed data/game.yaml data/waves.yaml
var dataFS embed.FS
