// embed.go - 资源嵌入声明
// //go:embed 只能嵌入当前包目录及其子目录的文件，因此放在项目根目录（与 data/ 同级）
package main

import _ "embed"

//go:embed data/curve_presets.yaml
var curvePresetsYAML []byte
