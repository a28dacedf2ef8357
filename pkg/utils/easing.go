// Package utils 提供渲染层使用的小工具
package utils

// Easing Functions (缓动函数)
//
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
// 参考：https://easings.net/

// EaseInQuad 二次方缓入
// 公式：f(t) = t²
func EaseInQuad(t float64) float64 {
	return t * t
}

// EaseOutQuad 二次方缓出
// 公式：f(t) = 1 - (1-t)²
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// Lerp 线性插值，t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Progress 返回帧计数器的归一化进度，结果限制在 [0, 1]
// maxAge <= 0 时视为已结束
func Progress(age, maxAge int) float64 {
	if maxAge <= 0 {
		return 1
	}
	t := float64(age) / float64(maxAge)
	switch {
	case t < 0:
		return 0
	case t > 1:
		return 1
	}
	return t
}

// FadeAlpha 随年龄淡出的不透明度：前半段几乎不变，接近寿命时快速消失
func FadeAlpha(age, maxAge int) uint8 {
	return uint8(Lerp(255, 0, EaseInQuad(Progress(age, maxAge))))
}
