package types

import (
	"fmt"
	"strings"
	"sync"

	"github.com/oklog/ulid/v2"
	"github.com/teris-io/shortid"
)

// GenerateUUID returns a k-sortable unique identifier
func GenerateUUID() string {
	return ulid.Make().String()
}

// GenerateUUIDWithPrefix returns a k-sortable unique identifier
// with a prefix ex lead_0ujsswThIGTUYm2K8FjOOfXtY1K
func GenerateUUIDWithPrefix(prefix string) string {
	if prefix == "" {
		return GenerateUUID()
	}
	return fmt.Sprintf("%s_%s", prefix, GenerateUUID())
}

var (
	sidGenerator *shortid.Shortid
	once         sync.Once
)

func initializeSID() {
	var err error
	sidGenerator, err = shortid.New(1, shortid.DefaultABC, 2342)
	if err != nil {
		panic("failed to initialize shortid generator: " + err.Error())
	}
}

// GenerateShortIDWithPrefix returns a short, human-readable ID with a
// prefix, e.g. `QT-X4ZK2A8Q`. Used for customer-facing quote numbers.
func GenerateShortIDWithPrefix(prefix string) string {
	once.Do(initializeSID)

	id, err := sidGenerator.Generate()
	if err != nil {
		return ""
	}
	id = strings.ReplaceAll(id, "-", "")

	availableLen := 12 - len(prefix)
	if availableLen <= 0 {
		return ""
	}

	if len(id) > availableLen {
		id = id[:availableLen]
	}

	return strings.ToUpper(fmt.Sprintf("%s%s", prefix, id))
}

const (
	// Prefixes for all domains and entities

	UUID_PREFIX_AGENCY       = "agency"
	UUID_PREFIX_USER         = "user"
	UUID_PREFIX_CLIENT       = "client"
	UUID_PREFIX_LEAD         = "lead"
	UUID_PREFIX_PRODUCT      = "prod"
	UUID_PREFIX_QUOTE        = "quote"
	UUID_PREFIX_QUOTE_ITEM   = "quote_line"
	UUID_PREFIX_PROJECT      = "proj"
	UUID_PREFIX_TASK         = "task"
	UUID_PREFIX_ASSET        = "asset"
	UUID_PREFIX_CONVERSATION = "conv"
	UUID_PREFIX_MESSAGE      = "msg"
)

const (
	SHORT_ID_PREFIX_QUOTE = "QT-"
)
