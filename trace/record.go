// Package trace reads textual memory-access traces and replays them against
// a simulated cache.
package trace

// Kind identifies the operation of one trace record.
type Kind byte

const (
	// KindLoad is a data load.
	KindLoad Kind = 'L'

	// KindStore is a data store. Loads and stores are indistinguishable to
	// the cache model.
	KindStore Kind = 'S'

	// KindModify is a load followed by a store to the same address.
	KindModify Kind = 'M'
)

// A Record is one tokenized trace line. Size is carried through for
// reporting but never affects the simulation, as block contents are not
// modeled. Kinds other than the three named ones are preserved by the
// scanner and skipped by the replayer.
type Record struct {
	Kind    Kind
	Address uint64
	Size    int
}
