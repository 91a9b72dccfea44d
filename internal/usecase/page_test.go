package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageInput_Normalize(t *testing.T) {
	p := PageInput{}.Normalize(20)
	assert.Equal(t, PageInput{Page: 1, Limit: 20}, p)
	assert.Equal(t, 0, p.Offset())

	p = PageInput{Page: 3, Limit: 50}.Normalize(20)
	assert.Equal(t, 100, p.Offset())
}

func TestNewPage(t *testing.T) {
	page := NewPage([]string(nil), 41, PageInput{Page: 2, Limit: 20})

	assert.Equal(t, []string{}, page.Items)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 2, page.Page)

	assert.Equal(t, 0, NewPage([]int{}, 0, PageInput{Page: 1, Limit: 20}).TotalPages)
}
