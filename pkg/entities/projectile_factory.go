package entities

import "github.com/decker502/plasmaraid/pkg/components"

// NewProjectile 在开火实体的坐标处创建一枚等离子弹
func NewProjectile(ids *IDSource, at components.Coordinate) components.ProjectileComponent {
	return components.ProjectileComponent{
		ID:       ids.Next(),
		Position: at,
	}
}
