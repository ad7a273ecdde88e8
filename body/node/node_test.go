package node

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntKey(t *testing.T) {
	assert.Equal(t, Key("1"), IntKey(1))
	assert.Equal(t, Key("-12"), IntKey(-12))
}

func TestNode_Hierarchy(t *testing.T) {
	parent := &Node{Key: "p", ChildKeys: []Key{"c1", "c2"}}
	child := &Node{Key: "c1", ParentKey: "p", Level: 1}

	assert.False(t, parent.IsLeaf())
	assert.True(t, child.IsLeaf())
	assert.True(t, New("x", nil).IsLeaf())
}
