package cli

import (
	"io"
	"os"
	"strings"
)

// readExpression resolves an EGIF argument. The argument is treated as a
// file path if it names an existing file, as stdin if it is "-", and as a
// literal expression otherwise.
func readExpression(arg string) (string, error) {
	if arg == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	if looksLikeFile(arg) {
		data, err := os.ReadFile(arg)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	return arg, nil
}

// looksLikeFile returns true if arg appears to be a file path rather than
// an inline expression. EGIF expressions contain parens, brackets, or
// quotes; plain paths don't.
func looksLikeFile(arg string) bool {
	if _, err := os.Stat(arg); err == nil {
		return true
	}
	lower := strings.ToLower(arg)
	return strings.HasSuffix(lower, ".egif") ||
		strings.HasSuffix(lower, ".json")
}

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
