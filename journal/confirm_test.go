package journal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmationYesRuns(t *testing.T) {
	t.Parallel()

	var c Confirmation
	ran := 0
	assert.False(t, c.Stage("t", "b", func() error { ran++; return nil }))

	p, ok := c.Pending()
	require.True(t, ok)
	assert.Equal(t, "t", p.Title)
	assert.Equal(t, "b", p.Body)

	require.NoError(t, c.Resolve(true))
	assert.Equal(t, 1, ran)

	_, ok = c.Pending()
	assert.False(t, ok)
	assert.ErrorIs(t, c.Resolve(true), ErrNoPending)
	assert.Equal(t, 1, ran)
}

func TestConfirmationNoDiscards(t *testing.T) {
	t.Parallel()

	var c Confirmation
	ran := false
	c.Stage("t", "b", func() error { ran = true; return nil })

	require.NoError(t, c.Resolve(false))
	assert.False(t, ran)
	_, ok := c.Pending()
	assert.False(t, ok)
}

func TestConfirmationStageReplaces(t *testing.T) {
	t.Parallel()

	var c Confirmation
	var ran []string
	c.Stage("first", "", func() error { ran = append(ran, "first"); return nil })
	assert.True(t, c.Stage("second", "", func() error { ran = append(ran, "second"); return nil }))

	require.NoError(t, c.Resolve(true))
	assert.Equal(t, []string{"second"}, ran)
}

func TestConfirmationPropagatesError(t *testing.T) {
	t.Parallel()

	var c Confirmation
	boom := errors.New("boom")
	c.Stage("t", "b", func() error { return boom })
	assert.ErrorIs(t, c.Resolve(true), boom)
}
