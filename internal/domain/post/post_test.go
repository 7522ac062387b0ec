package post

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strptr(s string) *string { return &s }

func TestUpdatePatchApplyMergesPresentFieldsOnly(t *testing.T) {
	p := Post{Title: "old title", Content: "old content"}

	patch := UpdatePatch{Title: strptr("new title")}
	patch.Apply(&p)

	assert.Equal(t, "new title", p.Title)
	assert.Equal(t, "old content", p.Content)
}

func TestUpdatePatchApplyIsIdempotent(t *testing.T) {
	p := Post{Title: "old", Content: "old"}

	patch := UpdatePatch{Title: strptr("T"), Content: strptr("C")}
	patch.Apply(&p)
	first := p
	patch.Apply(&p)

	assert.Equal(t, first, p)
}

func TestUpdatePatchIsEmpty(t *testing.T) {
	assert.True(t, UpdatePatch{}.IsEmpty())
	assert.False(t, UpdatePatch{Title: strptr("")}.IsEmpty())
	assert.False(t, UpdatePatch{Content: strptr("x")}.IsEmpty())
}
