// Package engines selects an expression engine by type.
package engines

import (
	"fmt"
	"log/slog"

	"github.com/robbyt/go-polyquad/engines/govaluate"
	"github.com/robbyt/go-polyquad/engines/native"
	"github.com/robbyt/go-polyquad/engines/starlark"
	"github.com/robbyt/go-polyquad/engines/types"
	"github.com/robbyt/go-polyquad/platform"
	"github.com/robbyt/go-polyquad/platform/script/loader"
)

// NewEvaluator compiles the expression read from ldr with the given engine.
func NewEvaluator(
	engineType types.Type,
	logHandler slog.Handler,
	ldr loader.Loader,
) (platform.Evaluator, error) {
	switch engineType {
	case types.Native, "":
		return native.NewEvaluator(logHandler, ldr)
	case types.Starlark:
		return starlark.NewEvaluator(logHandler, ldr)
	case types.Govaluate:
		return govaluate.NewEvaluator(logHandler, ldr)
	}
	return nil, fmt.Errorf("unsupported engine type %q", engineType)
}
