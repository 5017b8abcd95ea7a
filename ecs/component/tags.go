package component

type MaskTag struct{}

var MaskTagComponent = NewComponent[MaskTag]()

type EnemyTag struct{}

var EnemyTagComponent = NewComponent[EnemyTag]()

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()
