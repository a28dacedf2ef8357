package components

// ProjectileComponent 等离子弹
// 存在于弹池中即为存活，离开屏幕顶部或命中敌人后被移除
type ProjectileComponent struct {
	ID       uint64
	Position Coordinate
}
