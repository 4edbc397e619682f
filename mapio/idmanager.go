package mapio

import (
	"strconv"

	"mapwriter/model"
)

// idManager hands out stable textual ids for nodes, keyed by node
// identity. Ids start at 1 and are never reused within one pass; the
// manager lives exactly as long as one serialization pass.
type idManager struct {
	ids     map[model.Node]string
	current uint64
}

func newIdManager() *idManager {
	return &idManager{ids: make(map[model.Node]string)}
}

func (m *idManager) getId(node model.Node) string {
	if id, ok := m.ids[node]; ok {
		return id
	}
	m.current++
	id := strconv.FormatUint(m.current, 10)
	m.ids[node] = id
	return id
}
