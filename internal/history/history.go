package history

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("conversion not found")

// Conversion is one recorded statement conversion.
type Conversion struct {
	ID             uuid.UUID
	Filename       string
	OutputFilename string
	BankCode       string
	// TotalRows is the number of data rows found below the header.
	TotalRows int
	// ValidTransactions is the number of rows emitted into the document.
	ValidTransactions int
	// InvalidRows are the 1-based sheet rows excluded for unparseable dates.
	InvalidRows []int
	CreatedAt   time.Time
}
