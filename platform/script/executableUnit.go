package script

import (
	"fmt"
	"log/slog"
	"time"

	engineTypes "github.com/robbyt/go-polyquad/engines/types"
	"github.com/robbyt/go-polyquad/internal/helpers"
	"github.com/robbyt/go-polyquad/platform/script/loader"
)

const checksumLength = 12

// ExecutableUnit is one compiled expression together with where it came from.
// It is built once and evaluated many times, once per sample point.
type ExecutableUnit struct {
	// ID identifies the unit, typically the loader's source URL or a hash of
	// the expression text.
	ID string

	// CreatedAt records when this executable unit was instantiated.
	CreatedAt time.Time

	// ScriptLoader produced the expression source.
	ScriptLoader loader.Loader

	// Compiler is the engine-specific compiler that produced Content.
	Compiler Compiler

	// Content holds the compiled form and the source of the expression.
	Content ExecutableContent

	logger *slog.Logger
}

// NewExecutableUnit reads the expression from scriptLoader and compiles it.
// When versionID is empty, a checksum of the compiled source is used.
func NewExecutableUnit(
	handler slog.Handler,
	versionID string,
	scriptLoader loader.Loader,
	compiler Compiler,
) (*ExecutableUnit, error) {
	_, logger := helpers.SetupLogger(handler, "script", "ExecutableUnit")

	if compiler == nil {
		return nil, ErrCompilerNil
	}
	if scriptLoader == nil {
		return nil, ErrLoaderNil
	}

	reader, err := scriptLoader.GetReader()
	if err != nil {
		return nil, fmt.Errorf("failed to get reader from loader: %w", err)
	}

	exe, err := compiler.Compile(reader)
	if err != nil {
		return nil, fmt.Errorf("compiler failed: %w", err)
	}

	if versionID == "" {
		versionID = helpers.ShortSHA256(exe.GetSource(), checksumLength)
	}

	logger = logger.With("ID", versionID)
	logger.Debug("executable unit created", "engine", exe.GetEngineType())

	return &ExecutableUnit{
		ID:           versionID,
		CreatedAt:    time.Now(),
		ScriptLoader: scriptLoader,
		Content:      exe,
		Compiler:     compiler,
		logger:       logger,
	}, nil
}

func (exe *ExecutableUnit) String() string {
	return fmt.Sprintf("ExecutableUnit{ID: %s, CreatedAt: %s, Compiler: %s, Loader: %s}",
		exe.ID, exe.CreatedAt, exe.Compiler, exe.ScriptLoader)
}

// GetID returns the unique identifier of this unit.
func (exe *ExecutableUnit) GetID() string {
	return exe.ID
}

// GetContent returns the compiled expression.
func (exe *ExecutableUnit) GetContent() ExecutableContent {
	return exe.Content
}

// GetCreatedAt returns the timestamp when the unit was created.
func (exe *ExecutableUnit) GetCreatedAt() time.Time {
	return exe.CreatedAt
}

// GetEngineType returns the engine the expression was compiled for.
func (exe *ExecutableUnit) GetEngineType() engineTypes.Type {
	return exe.Content.GetEngineType()
}

// GetCompiler returns the compiler used to build the unit.
func (exe *ExecutableUnit) GetCompiler() Compiler {
	return exe.Compiler
}

// GetLoader returns the loader used to read the expression.
func (exe *ExecutableUnit) GetLoader() loader.Loader {
	return exe.ScriptLoader
}
