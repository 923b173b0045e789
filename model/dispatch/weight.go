package dispatch

import "fmt"

// WeightRefTimePerNanos is the number of ref time units per nanosecond of execution.
const WeightRefTimePerNanos uint64 = 1_000

// Weight is the declared upper bound of the cost of executing an operation.
// RefTime is the computation time, ProofSize the size of the storage proof
// the operation requires.
type Weight struct {
	RefTime   uint64
	ProofSize uint64
}

// NewWeight returns a weight with the given ref time and proof size.
func NewWeight(refTime, proofSize uint64) Weight {
	return Weight{RefTime: refTime, ProofSize: proofSize}
}

// Add returns the saturating sum of both weights.
func (w Weight) Add(other Weight) Weight {
	return Weight{
		RefTime:   saturatingAdd(w.RefTime, other.RefTime),
		ProofSize: saturatingAdd(w.ProofSize, other.ProofSize),
	}
}

// Mul returns the saturating product of the weight and a scalar.
func (w Weight) Mul(n uint64) Weight {
	return Weight{
		RefTime:   saturatingMul(w.RefTime, n),
		ProofSize: saturatingMul(w.ProofSize, n),
	}
}

// AllLTE returns true if both components are less than or equal to the other weight's.
func (w Weight) AllLTE(other Weight) bool {
	return w.RefTime <= other.RefTime && w.ProofSize <= other.ProofSize
}

func (w Weight) String() string {
	return fmt.Sprintf("Weight(ref_time: %d, proof_size: %d)", w.RefTime, w.ProofSize)
}

// RuntimeDbWeight is the ref time charged per database read and write.
type RuntimeDbWeight struct {
	Read  uint64
	Write uint64
}

// RocksDbWeight is the default database weight, matching the cost of a
// read and a write against a RocksDB-like LSM store.
var RocksDbWeight = RuntimeDbWeight{
	Read:  25_000 * WeightRefTimePerNanos,
	Write: 100_000 * WeightRefTimePerNanos,
}

// Reads returns the weight of n reads.
func (db RuntimeDbWeight) Reads(n uint64) Weight {
	return Weight{RefTime: saturatingMul(db.Read, n)}
}

// Writes returns the weight of n writes.
func (db RuntimeDbWeight) Writes(n uint64) Weight {
	return Weight{RefTime: saturatingMul(db.Write, n)}
}

// ReadsWrites returns the weight of r reads and w writes.
func (db RuntimeDbWeight) ReadsWrites(r, w uint64) Weight {
	return db.Reads(r).Add(db.Writes(w))
}

func saturatingAdd(a, b uint64) uint64 {
	c := a + b
	if c < a {
		return ^uint64(0)
	}
	return c
}

func saturatingMul(a, b uint64) uint64 {
	if a == 0 || b == 0 {
		return 0
	}
	c := a * b
	if c/b != a {
		return ^uint64(0)
	}
	return c
}
