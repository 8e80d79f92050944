package utils

import (
	"io"
	"os"
	"strings"
)

// ReadFromStdin reads all piped content from in, trimmed.
// A terminal or an empty regular file yields "" without blocking.
func ReadFromStdin(in *os.File) (string, error) {
	stat, err := in.Stat()
	if err != nil {
		return "", err
	}

	if (stat.Mode() & os.ModeCharDevice) != 0 {
		return "", nil
	}

	if stat.Mode().IsRegular() && stat.Size() == 0 {
		return "", nil
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(data)), nil
}
