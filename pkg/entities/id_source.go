package entities

// IDSource 实体 ID 分配器
//
// 每个 world 持有一个，子弹和敌人共享同一个序列，ID 从 1 开始，0 保留为"无"。
// 单线程使用，不加锁。
type IDSource struct {
	next uint64
}

// Next 返回下一个 ID
func (s *IDSource) Next() uint64 {
	s.next++
	return s.next
}

// Peek 返回最近分配的 ID（尚未分配时为 0）
func (s *IDSource) Peek() uint64 {
	return s.next
}
