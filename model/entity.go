package model

// EntityProperty is an ordered key/value pair. Keys are unique by
// convention within one entity; insertion order is preserved.
type EntityProperty struct {
	Key   string
	Value string
}

type Entity struct {
	properties []EntityProperty
}

func NewEntity(properties []EntityProperty) Entity {
	entity := Entity{}
	for _, property := range properties {
		entity.AddOrUpdateProperty(property.Key, property.Value)
	}
	return entity
}

// AddOrUpdateProperty overwrites the value in place if the key exists,
// otherwise appends.
func (e *Entity) AddOrUpdateProperty(key, value string) {
	for i := range e.properties {
		if e.properties[i].Key == key {
			e.properties[i].Value = value
			return
		}
	}
	e.properties = append(e.properties, EntityProperty{Key: key, Value: value})
}

func (e *Entity) RemoveProperty(key string) {
	for i := range e.properties {
		if e.properties[i].Key == key {
			e.properties = append(e.properties[:i], e.properties[i+1:]...)
			return
		}
	}
}

func (e *Entity) Property(key string) (value string, found bool) {
	for i := range e.properties {
		if e.properties[i].Key == key {
			return e.properties[i].Value, true
		}
	}
	return
}

func (e *Entity) HasProperty(key string) bool {
	_, found := e.Property(key)
	return found
}

// Properties returns a copy, so callers can merge without touching the
// entity itself.
func (e *Entity) Properties() []EntityProperty {
	properties := make([]EntityProperty, len(e.properties))
	copy(properties, e.properties)
	return properties
}

func (e *Entity) Clone() Entity {
	return Entity{properties: e.Properties()}
}
