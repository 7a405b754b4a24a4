package component

// Sprite names the image a renderer should use for the entity.
type Sprite struct {
	Name string
}

var SpriteComponent = NewComponent[Sprite]()
