package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkhrunov/newsdigest/pkg/config"
)

func TestNewRegistry(t *testing.T) {
	reg, err := NewRegistry([]config.CategoryConfig{
		{ID: 3, Name: "Security", Keywords: []config.KeywordConfig{
			{Word: "Vulnerability", Weight: 2}, {Word: "  breach  "}, {Word: "   "},
		}},
		{ID: 1, Name: "AI & Machine Learning", Keywords: []config.KeywordConfig{
			{Word: "GPT"}, {Word: "llm", Weight: 0},
		}},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, reg.Len())

	cat, err := reg.Get(3)
	require.NoError(t, err)
	assert.Equal(t, "Security", cat.Name)
	require.Len(t, cat.Keywords, 2, "blank keyword dropped")
	assert.Equal(t, Keyword{Word: "vulnerability", Weight: 2}, cat.Keywords[0])
	assert.Equal(t, Keyword{Word: "breach", Weight: 1}, cat.Keywords[1], "keyword trimmed and lowercased")

	cat, err = reg.Get(1)
	require.NoError(t, err)
	assert.Equal(t, Keyword{Word: "gpt", Weight: 1}, cat.Keywords[0])
	assert.Equal(t, 1, cat.Keywords[1].Weight, "weight below one raised to one")
}

func TestNewRegistry_DuplicateID(t *testing.T) {
	_, err := NewRegistry([]config.CategoryConfig{
		{ID: 1, Name: "AI"},
		{ID: 1, Name: "Security"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate category id 1")
}

func TestRegistry_Get_Unknown(t *testing.T) {
	reg, err := NewRegistry([]config.CategoryConfig{{ID: 1, Name: "AI"}})
	require.NoError(t, err)

	_, err = reg.Get(99)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownCategory)
	assert.Contains(t, err.Error(), "category 99")
}

func TestRegistry_All_Ordered(t *testing.T) {
	reg, err := NewRegistry([]config.CategoryConfig{
		{ID: 5, Name: "Gaming"},
		{ID: 1, Name: "AI"},
		{ID: 3, Name: "Security"},
	})
	require.NoError(t, err)

	ids := make([]int64, 0, reg.Len())
	for _, cat := range reg.All() {
		ids = append(ids, cat.ID)
	}
	assert.Equal(t, []int64{1, 3, 5}, ids)
}

func TestNewRegistry_Empty(t *testing.T) {
	reg, err := NewRegistry(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, reg.Len())
	assert.Empty(t, reg.All())
}
