// Package selection bridges a row's checkbox to the data source that owns
// the checked-key set.
package selection

import (
	"github.com/hnimtadd/datatable/body/keyset"
	"github.com/hnimtadd/datatable/body/node"
	"github.com/hnimtadd/datatable/logger"
)

// Source is the hierarchical data source. Check and Uncheck are pure: they
// return the complete set that results from the transition, including any
// propagation to ancestors or descendants, and leave current untouched.
type Source interface {
	Check(key node.Key, current keyset.Set) keyset.Set
	Uncheck(key node.Key, current keyset.Set) keyset.Set
}

// Membership is implemented by sources that know rows the table was not
// handed, such as the descendants of a collapsed node. The owner of the
// checked-key set keeps any key the source claims.
type Membership interface {
	Has(key node.Key) bool
}

// Publisher is the table-wide owner of the checked-key set.
type Publisher interface {
	CheckedRowKeys() keyset.Set
	UpdateCheckedRowKeys(keys keyset.Set)
}

type Bridge struct {
	source    Source
	publisher Publisher
	logger    logger.Logger
}

func NewBridge(source Source, publisher Publisher, log logger.Logger) *Bridge {
	return &Bridge{
		source:    source,
		publisher: publisher,
		logger:    logger.OrDiscard(log),
	}
}

// OnRowCheckChanged requests the transition of row to checked and publishes
// the resulting set as a whole. Keys the source does not know are its
// business; the bridge publishes whatever it gets back.
func (b *Bridge) OnRowCheckChanged(row *node.Node, checked bool) {
	current := b.publisher.CheckedRowKeys()

	var next keyset.Set
	if checked {
		next = b.source.Check(row.Key, current)
	} else {
		next = b.source.Uncheck(row.Key, current)
	}

	b.logger.Debug("row check changed",
		"key", row.Key,
		"checked", checked,
		"before", current.Len(),
		"after", next.Len(),
	)
	b.publisher.UpdateCheckedRowKeys(next)
}

// FlatSource is a Source for tables without hierarchy: checking a key adds
// exactly that key.
type FlatSource struct{}

func (FlatSource) Check(key node.Key, current keyset.Set) keyset.Set {
	return current.With(key)
}

func (FlatSource) Uncheck(key node.Key, current keyset.Set) keyset.Set {
	return current.Without(key)
}
