package checkbox

import (
	"github.com/hnimtadd/datatable/body/column"
	"github.com/hnimtadd/datatable/body/node"
	"github.com/hnimtadd/datatable/logger"
)

// Slot locates a checkbox in the body.
type Slot struct {
	Row    node.Key
	Column column.Key
}

// Host mounts checkbox instances into slots. Mounting the same slot with the
// same instance key updates the existing instance; a different instance key
// destroys it and mounts a fresh one.
type Host struct {
	instances map[Slot]*Instance
	logger    logger.Logger
}

func NewHost(log logger.Logger) *Host {
	return &Host{
		instances: make(map[Slot]*Instance),
		logger:    logger.OrDiscard(log),
	}
}

// Mount returns the instance for slot after applying props.
func (h *Host) Mount(slot Slot, props Props) *Instance {
	if inst, ok := h.instances[slot]; ok {
		if inst.key == props.Key {
			inst.update(props)
			return inst
		}
		h.logger.Debug("remounting checkbox",
			"row", slot.Row,
			"column", slot.Column,
			"from", inst.key.Page,
			"to", props.Key.Page,
		)
		inst.destroy()
	}
	inst := newInstance(props)
	h.instances[slot] = inst
	return inst
}

// Retain destroys every instance whose slot is not in live.
func (h *Host) Retain(live map[Slot]struct{}) {
	for slot, inst := range h.instances {
		if _, ok := live[slot]; ok {
			continue
		}
		inst.destroy()
		delete(h.instances, slot)
	}
}

func (h *Host) Get(slot Slot) (*Instance, bool) {
	inst, ok := h.instances[slot]
	return inst, ok
}

func (h *Host) Len() int {
	return len(h.instances)
}
