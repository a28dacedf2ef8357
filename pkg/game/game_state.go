// Package game 保存一局游戏的计分状态
package game

// GameState 分数与生命
//
// 分数每摧毁一个敌人 +1，不会衰减。
// 生命从配置的总数开始，SubtractLife 是唯一的修改入口，钳制在 [0, TotalLives]。
// 生命归零是终止条件，由 world 在帧末观察并产出 GameOver。
type GameState struct {
	Score      int
	Lives      int
	TotalLives int
}

// NewGameState 创建新一局的状态
//
// 参数:
//   - lives: 初始生命数（负数按 0 处理）
func NewGameState(lives int) *GameState {
	lives = max(lives, 0)
	return &GameState{Lives: lives, TotalLives: lives}
}

// AddScore 增加分数（负数忽略）
func (gs *GameState) AddScore(n int) {
	if n > 0 {
		gs.Score += n
	}
}

// SubtractLife 扣除一条命
//
// 返回:
//   - bool: 本次调用是否使生命首次归零
func (gs *GameState) SubtractLife() bool {
	if gs.Lives == 0 {
		return false
	}
	gs.Lives--
	return gs.Lives == 0
}

// IsDead 生命是否已归零
func (gs *GameState) IsDead() bool {
	return gs.Lives == 0
}
