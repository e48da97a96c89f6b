package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReport_String(t *testing.T) {
	r := NewError(SemanticStage, 3, 7, "Method %s is not declared", "foo")
	assert.Equal(t, "ERROR SEMANTIC 3:7 Method foo is not declared", r.String())
}

func TestErrors(t *testing.T) {
	reports := []Report{
		NewError(SemanticStage, 1, 1, "first"),
		{Type: WarningReport, Stage: SemanticStage, Message: "careful"},
		NewError(GenerationStage, 2, 2, "second"),
	}
	errs := Errors(reports)
	assert.Len(t, errs, 2)
	assert.Equal(t, "first", errs[0].Message)
	assert.Equal(t, "second", errs[1].Message)
	assert.Nil(t, Errors(nil))
}
