package selection

import (
	"testing"

	"github.com/hnimtadd/datatable/body/keyset"
	"github.com/hnimtadd/datatable/body/node"
	"github.com/hnimtadd/datatable/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockSource struct {
	mock.Mock
}

func (m *mockSource) Check(key node.Key, current keyset.Set) keyset.Set {
	return m.Called(key, current).Get(0).(keyset.Set)
}

func (m *mockSource) Uncheck(key node.Key, current keyset.Set) keyset.Set {
	return m.Called(key, current).Get(0).(keyset.Set)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) CheckedRowKeys() keyset.Set {
	return m.Called().Get(0).(keyset.Set)
}

func (m *mockPublisher) UpdateCheckedRowKeys(keys keyset.Set) {
	m.Called(keys)
}

// memoryPublisher stores the last published set.
type memoryPublisher struct {
	keys      keyset.Set
	published int
}

func (p *memoryPublisher) CheckedRowKeys() keyset.Set { return p.keys }

func (p *memoryPublisher) UpdateCheckedRowKeys(keys keyset.Set) {
	p.keys = keys
	p.published++
}

func TestBridge_CheckPublishesSourceResult(t *testing.T) {
	current := keyset.New("2")
	// A hierarchical source may check more than the requested key.
	propagated := keyset.New("1", "1.1", "1.2", "2")

	source := &mockSource{}
	source.On("Check", node.Key("1"), current).Return(propagated).Once()
	publisher := &mockPublisher{}
	publisher.On("CheckedRowKeys").Return(current).Once()
	publisher.On("UpdateCheckedRowKeys", propagated).Once()

	b := NewBridge(source, publisher, logger.Discard)
	b.OnRowCheckChanged(node.New("1", nil), true)

	source.AssertExpectations(t)
	publisher.AssertExpectations(t)
	source.AssertNotCalled(t, "Uncheck", mock.Anything, mock.Anything)
}

func TestBridge_UncheckPublishesSourceResult(t *testing.T) {
	current := keyset.New("1", "2")
	next := keyset.New("2")

	source := &mockSource{}
	source.On("Uncheck", node.Key("1"), current).Return(next).Once()
	publisher := &mockPublisher{}
	publisher.On("CheckedRowKeys").Return(current).Once()
	publisher.On("UpdateCheckedRowKeys", next).Once()

	NewBridge(source, publisher, nil).OnRowCheckChanged(node.New("1", nil), false)

	source.AssertExpectations(t)
	publisher.AssertExpectations(t)
	source.AssertNotCalled(t, "Check", mock.Anything, mock.Anything)
}

func TestBridge_RoundTrip(t *testing.T) {
	for _, start := range []keyset.Set{
		keyset.New(),
		keyset.New("2", "3"),
	} {
		publisher := &memoryPublisher{keys: start}
		b := NewBridge(FlatSource{}, publisher, logger.Discard)
		row := node.New("1", nil)

		b.OnRowCheckChanged(row, true)
		assert.True(t, publisher.keys.Has("1"))

		b.OnRowCheckChanged(row, false)
		assert.True(t, start.Equal(publisher.keys),
			"check then uncheck should restore %s, got %s", start, publisher.keys)
		assert.Equal(t, 2, publisher.published, "every toggle publishes once")
	}
}

func TestBridge_UnknownKeyIsPublishedAsReturned(t *testing.T) {
	current := keyset.New("1")
	source := &mockSource{}
	// The source ignores keys it does not own.
	source.On("Check", node.Key("ghost"), current).Return(current).Once()
	publisher := &memoryPublisher{keys: current}

	NewBridge(source, publisher, logger.Discard).OnRowCheckChanged(node.New("ghost", nil), true)

	assert.True(t, current.Equal(publisher.keys))
	assert.Equal(t, 1, publisher.published)
}

func TestFlatSource(t *testing.T) {
	var s FlatSource
	start := keyset.New("a")

	checked := s.Check("b", start)
	assert.Equal(t, []node.Key{"a", "b"}, checked.Keys())
	assert.Equal(t, []node.Key{"a"}, start.Keys(), "current must not be mutated")

	assert.Equal(t, []node.Key{"b"}, s.Uncheck("a", checked).Keys())
	assert.Equal(t, []node.Key{"a"}, s.Uncheck("missing", start).Keys())
}
