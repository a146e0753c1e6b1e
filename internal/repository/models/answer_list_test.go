package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnswerListValue(t *testing.T) {
	list := AnswerList{
		{Text: "Paris", IsCorrect: true},
		{Text: "Lyon", IsCorrect: false},
	}
	v, err := list.Value()
	assert.NoError(t, err)
	assert.JSONEq(t, `[{"text":"Paris","is_correct":true},{"text":"Lyon","is_correct":false}]`, v.(string))
}

func TestAnswerListValue_Nil(t *testing.T) {
	var list AnswerList
	v, err := list.Value()
	assert.NoError(t, err)
	assert.Equal(t, "[]", v)
}

func TestAnswerListScan(t *testing.T) {
	var list AnswerList
	err := list.Scan(`[{"text":"a","is_correct":false},{"text":"b","is_correct":true}]`)
	assert.NoError(t, err)
	assert.Len(t, list, 2)
	assert.True(t, list[1].IsCorrect)
}

func TestAnswerListScan_NullVariants(t *testing.T) {
	var list AnswerList
	assert.NoError(t, list.Scan(nil))
	assert.Empty(t, list)
	assert.NoError(t, list.Scan(""))
	assert.Empty(t, list)
	assert.NoError(t, list.Scan("null"))
	assert.Empty(t, list)
}

func TestAnswerListScan_RejectsLooseShape(t *testing.T) {
	var list AnswerList
	// Free-form payloads must not cross the storage boundary.
	assert.Error(t, list.Scan(`[{"label":"a"},{"text":"","is_correct":true}]`))
	assert.Error(t, list.Scan(`{"text":"not an array"}`))
	assert.Error(t, list.Scan(12.5))
}

func TestIntSliceRoundTrip(t *testing.T) {
	s := IntSlice{0, 2}
	v, err := s.Value()
	assert.NoError(t, err)

	var out IntSlice
	assert.NoError(t, out.Scan(v))
	assert.Equal(t, s, out)
}
