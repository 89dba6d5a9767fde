package core

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Hash identifies content by its xxhash64 digest, rendered as 16 hex digits
type Hash string

// NewHash creates a new hash from data
func NewHash(data []byte) Hash {
	return Hash(fmt.Sprintf("%016x", xxhash.Sum64(data)))
}

// String returns the string representation
func (h Hash) String() string {
	return string(h)
}

// IsEmpty checks if the hash is empty
func (h Hash) IsEmpty() bool {
	return h == ""
}

// Short returns the first 8 digits for display
func (h Hash) Short() string {
	if len(h) <= 8 {
		return string(h)
	}
	return string(h[:8])
}

// DatasetID identifies an uploaded workbook by its content
type DatasetID Hash

// NewDatasetID hashes uploaded bytes
func NewDatasetID(content []byte) DatasetID { return DatasetID(NewHash(content)) }

func (id DatasetID) String() string { return string(id) }

// Short returns the first 8 digits for display
func (id DatasetID) Short() string { return Hash(id).Short() }

// ComputeSelectionHash hashes a dataset ID and a column→values selection.
// Column order does not matter; value order does not matter; a nil value
// list differs from an empty one.
func ComputeSelectionHash(id DatasetID, selection map[string][]string) Hash {
	keys := make([]string, 0, len(selection))
	for k := range selection {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var data strings.Builder
	data.WriteString(id.String())
	for _, key := range keys {
		data.WriteString("\x00")
		data.WriteString(key)
		values := selection[key]
		if values == nil {
			data.WriteString("\x01unset")
			continue
		}
		sorted := make([]string, len(values))
		copy(sorted, values)
		sort.Strings(sorted)
		for _, v := range sorted {
			data.WriteString("\x02")
			data.WriteString(v)
		}
		data.WriteString("\x03")
	}

	return NewHash([]byte(data.String()))
}
