package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFindQuery_NoFilters(t *testing.T) {
	query, args := buildFindQuery(resourceSpec, nil, "", 9, 0)

	assert.Contains(t, query, "FROM resources WHERE 1=1")
	assert.Contains(t, query, "ORDER BY created_at DESC LIMIT $1 OFFSET $2")
	assert.Equal(t, []interface{}{9, 0}, args)
}

func TestBuildFindQuery_SearchWithStructuredFilter(t *testing.T) {
	// type = 'Fiat-Backed' AND (name ILIKE '%usdc%' OR description ILIKE '%usdc%')
	filters := []equalityFilter{{column: "type", value: "Fiat-Backed"}}
	query, args := buildFindQuery(stablecoinSpec, filters, "usdc", 9, 18)

	assert.Contains(t, query, "AND type = $1")
	assert.Contains(t, query, "AND (name ILIKE $2 OR description ILIKE $2)")
	assert.Contains(t, query, "LIMIT $3 OFFSET $4")

	require.Len(t, args, 4)
	assert.Equal(t, "Fiat-Backed", args[0])
	assert.Equal(t, "%usdc%", args[1])
	assert.Equal(t, 9, args[2])
	assert.Equal(t, 18, args[3])
}

func TestBuildFindQuery_SkipsEmptyFilters(t *testing.T) {
	filters := []equalityFilter{
		{column: "type", value: ""},
		{column: "audience", value: "Developers"},
	}
	query, args := buildFindQuery(resourceSpec, filters, "", 9, 0)

	assert.NotContains(t, query, "type =")
	assert.Contains(t, query, "AND audience = $1")
	assert.Equal(t, []interface{}{"Developers", 9, 0}, args)
}

func TestBuildFindQuery_SearchOnly(t *testing.T) {
	query, args := buildFindQuery(regulationSpec, nil, "mica", 9, 0)

	assert.Contains(t, query, "AND (title ILIKE $1 OR summary ILIKE $1)")
	assert.Equal(t, []interface{}{"%mica%", 9, 0}, args)
}
