package compiler

import (
	govaluateLib "github.com/Knetic/govaluate"

	engineTypes "github.com/robbyt/go-polyquad/engines/types"
)

// Executable implements script.ExecutableContent for govaluate
type Executable struct {
	source     string
	rendered   string
	expression *govaluateLib.EvaluableExpression
}

func newExecutable(source, rendered string, expression *govaluateLib.EvaluableExpression) *Executable {
	if source == "" || rendered == "" || expression == nil {
		return nil
	}
	return &Executable{
		source:     source,
		rendered:   rendered,
		expression: expression,
	}
}

// GetSource returns the expression text as it was read
func (e *Executable) GetSource() string {
	return e.source
}

// GetRendered returns the expression as handed to govaluate
func (e *Executable) GetRendered() string {
	return e.rendered
}

// GetByteCode returns the evaluable expression as a generic interface
func (e *Executable) GetByteCode() any {
	return e.expression
}

// GetGovaluateExpression returns the evaluable expression with its proper type
func (e *Executable) GetGovaluateExpression() *govaluateLib.EvaluableExpression {
	return e.expression
}

// GetEngineType returns the govaluate engine type
func (e *Executable) GetEngineType() engineTypes.Type {
	return engineTypes.Govaluate
}
