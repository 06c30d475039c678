package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_StoreOrdersLines(t *testing.T) {
	s := NewStore()

	s.Set(20, "20 PRINT 2")
	s.Set(10, "10 PRINT 1")
	s.Set(30, "30 PRINT 3")

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []string{"10 PRINT 1", "20 PRINT 2", "30 PRINT 3"}, s.Lines())
}

func Test_StoreReplaceAndDelete(t *testing.T) {
	s := NewStore()
	s.Set(10, "10 PRINT 1")
	s.Set(20, "20 PRINT 2")

	s.Set(10, "10 PRINT 100")
	assert.Equal(t, []string{"10 PRINT 100", "20 PRINT 2"}, s.Lines())

	assert.True(t, s.Delete(20))
	assert.False(t, s.Delete(20))
	assert.Equal(t, []string{"10 PRINT 100"}, s.Lines())

	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Lines())
}
