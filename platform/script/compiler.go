package script

import "io"

// Compiler validates an expression and returns it as ExecutableContent.
//
// Example usage:
//
//	comp, _ := compiler.New()
//	content, err := comp.Compile(reader)
//	if err != nil {
//	    // lex or parse error, see calcerr
//	}
type Compiler interface {
	// Compile reads the whole expression from scriptReader, closes it, and
	// returns the compiled content.
	Compile(scriptReader io.ReadCloser) (ExecutableContent, error)
}
