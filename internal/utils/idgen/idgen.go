package idgen

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

const (
	PrefixConversation = "conv"
	PrefixFile         = "file"
	PrefixContact      = "contact"
)

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
)

// New returns prefix_<lowercase ulid>.
func New(prefix string) string {
	entropyMu.Lock()
	id := ulid.MustNew(ulid.Timestamp(time.Now()), entropy)
	entropyMu.Unlock()
	return prefix + "_" + strings.ToLower(id.String())
}

// Parse strips prefix_ and returns the ULID.
func Parse(prefix, value string) (ulid.ULID, error) {
	value = strings.TrimSpace(value)
	if !strings.HasPrefix(strings.ToLower(value), prefix+"_") {
		return ulid.ULID{}, fmt.Errorf("id %q does not start with %s_", value, prefix)
	}
	return ulid.Parse(strings.ToUpper(value[len(prefix)+1:]))
}

// IsValid reports whether value is a prefix_ ULID.
func IsValid(prefix, value string) bool {
	_, err := Parse(prefix, value)
	return err == nil
}
