package dispatch

// Pays declares whether the sender of an operation pays a fee for it.
type Pays uint8

const (
	// PaysYes charges the fee derived from the operation's weight.
	PaysYes Pays = iota
	// PaysNo exempts the operation from fees.
	PaysNo
)

func (p Pays) String() string {
	switch p {
	case PaysYes:
		return "yes"
	case PaysNo:
		return "no"
	default:
		return "unknown"
	}
}

// DispatchClass groups operations by how the block builder must treat them.
type DispatchClass uint8

const (
	// Normal operations are user transactions.
	Normal DispatchClass = iota
	// Operational operations are privileged but optional.
	Operational
	// Mandatory operations must be included in every block regardless of
	// the block's weight limit. Inherents fall into this class.
	Mandatory
)

func (c DispatchClass) String() string {
	switch c {
	case Normal:
		return "normal"
	case Operational:
		return "operational"
	case Mandatory:
		return "mandatory"
	default:
		return "unknown"
	}
}

// DispatchInfo is the information known about an operation before it runs.
type DispatchInfo struct {
	Weight Weight
	Class  DispatchClass
	Pays   Pays
}

// PostDispatchInfo is the information returned by an operation after it ran.
// A nil ActualWeight means the declared weight applies.
type PostDispatchInfo struct {
	ActualWeight *Weight
	Pays         Pays
}

// PaysNoInfo is the result of a fee-free operation that consumed its declared weight.
func PaysNoInfo() PostDispatchInfo {
	return PostDispatchInfo{Pays: PaysNo}
}

// CalcActualWeight returns the weight the operation consumed, bounded by the declared weight.
func (p PostDispatchInfo) CalcActualWeight(info DispatchInfo) Weight {
	if p.ActualWeight == nil || !p.ActualWeight.AllLTE(info.Weight) {
		return info.Weight
	}
	return *p.ActualWeight
}

// PaysFee returns whether the fee must be charged. An operation can only waive
// the fee it declared, never introduce one.
func (p PostDispatchInfo) PaysFee(info DispatchInfo) Pays {
	if info.Pays == PaysNo || p.Pays == PaysNo {
		return PaysNo
	}
	return PaysYes
}
