package config

import "github.com/yohamta/donburi/ecs"

// Default is the single ECS layer used by every entity and renderer.
const Default ecs.LayerID = 0
