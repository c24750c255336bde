package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type CreatureTag struct{}

var CreatureTagComponent = NewComponent[CreatureTag]()

// PropTag marks destructible scenery that player swings can damage.
type PropTag struct{}

var PropTagComponent = NewComponent[PropTag]()
