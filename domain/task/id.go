package task

import (
	"regexp"

	"github.com/jaevor/go-nanoid"
)

// Task IDs follow the cuid shape: a literal 'c' followed by 24 lowercase
// base36 characters. Collision-resistant, not sortable.
const (
	idAlphabet     = "0123456789abcdefghijklmnopqrstuvwxyz"
	idSuffixLength = 24
)

var idPattern = regexp.MustCompile(`^c[0-9a-z]{24}$`)

var newIDSuffix = mustGenerator()

func mustGenerator() func() string {
	gen, err := nanoid.CustomASCII(idAlphabet, idSuffixLength)
	if err != nil {
		panic(err)
	}
	return gen
}

// NewID generates a new task ID.
func NewID() string {
	return "c" + newIDSuffix()
}

// IsValidID reports whether id matches the task ID format.
func IsValidID(id string) bool {
	return idPattern.MatchString(id)
}
