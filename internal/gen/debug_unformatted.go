package gen

import (
	"os"
	"strings"
)

// writeDebugUnformatted writes unformatted code to a sidecar file next to the
// intended output. This is best-effort and should never make generation fail
// harder.
func writeDebugUnformatted(filename string, content []byte) error {
	if filename == "" || os.Getenv("ALIASGEN_DEBUG") == "" {
		return nil
	}

	// Keep it a .go file so editors can syntax highlight, but avoid colliding with
	// real output.
	debugName := strings.TrimSuffix(filename, ".go") + ".unformatted.go"

	return os.WriteFile(debugName, content, filePerm)
}
