package compiler

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/robbyt/go-polyquad/engines/native/ast"
	engineTypes "github.com/robbyt/go-polyquad/engines/types"
	"github.com/robbyt/go-polyquad/platform/calcerr"
)

// mockReadCloser tracks Close calls on an in-memory expression
type mockReadCloser struct {
	mock.Mock
	io.Reader
}

func newMockReadCloser(content string) *mockReadCloser {
	return &mockReadCloser{Reader: strings.NewReader(content)}
}

func (m *mockReadCloser) Close() error {
	args := m.Called()
	return args.Error(0)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk gone") }
func (failingReader) Close() error             { return nil }

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		comp, err := New()
		require.NoError(t, err)
		assert.Equal(t, "native.Compiler", comp.String())
	})

	t.Run("with log handler", func(t *testing.T) {
		comp, err := New(WithLogHandler(slog.NewTextHandler(os.Stdout, nil)))
		require.NoError(t, err)
		require.NotNil(t, comp)
	})

	t.Run("with logger", func(t *testing.T) {
		var buf bytes.Buffer
		comp, err := New(WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))
		require.NoError(t, err)
		require.NotNil(t, comp)
	})

	t.Run("nil handler rejected", func(t *testing.T) {
		_, err := New(WithLogHandler(nil))
		require.Error(t, err)
	})

	t.Run("nil logger rejected", func(t *testing.T) {
		_, err := New(WithLogger(nil))
		require.Error(t, err)
	})
}

func TestCompiler_Compile(t *testing.T) {
	t.Parallel()
	handler := slog.NewTextHandler(os.Stdout, nil)

	t.Run("success cases", func(t *testing.T) {
		tests := []struct {
			name      string
			source    string
			canonical string
		}{
			{name: "polynomial", source: "x^3 - 2x^2 + 3x - 5", canonical: "x^3-2*x^2+3*x-5"},
			{name: "function", source: "sin(x)", canonical: "sin(x)"},
			{name: "surrounding whitespace", source: "\n  sqrt(x) \t", canonical: "sqrt(x)"},
			{name: "ln alias", source: "ln(x)", canonical: "log(x)"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				comp, err := New(WithLogHandler(handler))
				require.NoError(t, err)

				reader := newMockReadCloser(tt.source)
				reader.On("Close").Return(nil)

				content, err := comp.Compile(reader)
				require.NoError(t, err)
				reader.AssertExpectations(t)

				exe, ok := content.(*Executable)
				require.True(t, ok)
				assert.Equal(t, strings.TrimSpace(tt.source), exe.GetSource())
				assert.Equal(t, engineTypes.Native, exe.GetEngineType())
				assert.Equal(t, tt.canonical, exe.GetProgram().String())

				_, ok = exe.GetByteCode().(*ast.Program)
				assert.True(t, ok)
			})
		}
	})

	t.Run("error cases", func(t *testing.T) {
		tests := []struct {
			name   string
			source string
			kind   error
		}{
			{name: "lex error", source: "x # 2", kind: calcerr.ErrLex},
			{name: "unclosed parenthesis", source: "(x+1", kind: calcerr.ErrParse},
			{name: "empty", source: "   ", kind: calcerr.ErrParse},
			{name: "unknown identifier", source: "y+1", kind: calcerr.ErrParse},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				comp, err := New(WithLogHandler(handler))
				require.NoError(t, err)

				reader := newMockReadCloser(tt.source)
				reader.On("Close").Return(nil)

				_, err = comp.Compile(reader)
				require.ErrorIs(t, err, ErrValidationFailed)
				require.ErrorIs(t, err, tt.kind)
				reader.AssertExpectations(t)
			})
		}
	})

	t.Run("nil reader", func(t *testing.T) {
		comp, err := New(WithLogHandler(handler))
		require.NoError(t, err)
		_, err = comp.Compile(nil)
		require.ErrorIs(t, err, ErrContentNil)
	})

	t.Run("read failure", func(t *testing.T) {
		comp, err := New(WithLogHandler(handler))
		require.NoError(t, err)
		_, err = comp.Compile(failingReader{})
		require.ErrorIs(t, err, ErrReadFailed)
	})

	t.Run("close failure is not fatal", func(t *testing.T) {
		comp, err := New(WithLogHandler(handler))
		require.NoError(t, err)

		reader := newMockReadCloser("x")
		reader.On("Close").Return(errors.New("close failed"))

		_, err = comp.Compile(reader)
		require.NoError(t, err)
		reader.AssertExpectations(t)
	})
}

func TestExecutable(t *testing.T) {
	t.Parallel()

	b := ast.NewBuilder(1)
	program, err := b.Build(b.Variable())
	require.NoError(t, err)

	t.Run("valid creation", func(t *testing.T) {
		exe := newExecutable("x", program)
		require.NotNil(t, exe)
		assert.Equal(t, "x", exe.GetSource())
		assert.Equal(t, program, exe.GetByteCode())
		assert.Equal(t, program, exe.GetProgram())
	})

	t.Run("empty source", func(t *testing.T) {
		assert.Nil(t, newExecutable("", program))
	})

	t.Run("nil program", func(t *testing.T) {
		assert.Nil(t, newExecutable("x", nil))
	})
}
