// Package steprequest defines the administrative era-end "step" request
// submitted to the execution engine, together with a fluent builder for
// constructing one. Every type here implements the serial contracts, so a
// request round-trips through the canonical encoding like any other
// consensus value.
package steprequest

import (
	"github.com/oy3o/serial"
)

// EraID identifies a consensus era.
type EraID uint64

var _ serial.Codec = (*EraID)(nil)

func (e EraID) SerializedLength() int { return serial.U64SerializedLength }

func (e EraID) ToBytes() ([]byte, error) { return serial.U64(e).ToBytes() }

func (e EraID) IntoBytes() ([]byte, error) { return e.ToBytes() }

func (e *EraID) FromBytes(data []byte) ([]byte, error) {
	var v serial.U64
	rem, err := v.FromBytes(data)
	if err != nil {
		return nil, err
	}
	*e = EraID(v)
	return rem, nil
}

func (e *EraID) FromVec(data []byte) ([]byte, error) { return e.FromBytes(data) }

// ProtocolVersion is a semver-style protocol version.
type ProtocolVersion struct {
	Major uint32
	Minor uint32
	Patch uint32
}

var _ serial.Codec = (*ProtocolVersion)(nil)

func (p ProtocolVersion) SerializedLength() int {
	return 3 * serial.U32SerializedLength
}

func (p ProtocolVersion) ToBytes() ([]byte, error) {
	buf := serial.AllocateBuffer(p)
	buf = serial.AppendUint(buf, p.Major, serial.U32SerializedLength)
	buf = serial.AppendUint(buf, p.Minor, serial.U32SerializedLength)
	buf = serial.AppendUint(buf, p.Patch, serial.U32SerializedLength)
	return buf, nil
}

func (p ProtocolVersion) IntoBytes() ([]byte, error) { return p.ToBytes() }

func (p *ProtocolVersion) FromBytes(data []byte) ([]byte, error) {
	major, rem, err := serial.SplitUint[uint32](data, serial.U32SerializedLength)
	if err != nil {
		return nil, err
	}
	minor, rem, err := serial.SplitUint[uint32](rem, serial.U32SerializedLength)
	if err != nil {
		return nil, err
	}
	patch, rem, err := serial.SplitUint[uint32](rem, serial.U32SerializedLength)
	if err != nil {
		return nil, err
	}
	p.Major, p.Minor, p.Patch = major, minor, patch
	return rem, nil
}

func (p *ProtocolVersion) FromVec(data []byte) ([]byte, error) { return p.FromBytes(data) }

// SlashItem marks a validator for slashing at the era boundary.
type SlashItem struct {
	ValidatorID serial.Bytes
}

var _ serial.Codec = (*SlashItem)(nil)

func (s SlashItem) SerializedLength() int { return s.ValidatorID.SerializedLength() }

func (s SlashItem) ToBytes() ([]byte, error) { return s.ValidatorID.ToBytes() }

func (s SlashItem) IntoBytes() ([]byte, error) { return s.ToBytes() }

func (s *SlashItem) FromBytes(data []byte) ([]byte, error) {
	return s.ValidatorID.FromBytes(data)
}

func (s *SlashItem) FromVec(data []byte) ([]byte, error) {
	return s.ValidatorID.FromVec(data)
}

// RewardItem credits a validator with a reward amount at the era boundary.
type RewardItem struct {
	ValidatorID serial.Bytes
	Value       uint64
}

var _ serial.Codec = (*RewardItem)(nil)

func (r RewardItem) SerializedLength() int {
	return r.ValidatorID.SerializedLength() + serial.U64SerializedLength
}

func (r RewardItem) ToBytes() ([]byte, error) {
	buf := serial.AllocateBuffer(r)
	id, err := r.ValidatorID.ToBytes()
	if err != nil {
		return nil, err
	}
	buf = append(buf, id...)
	return serial.AppendUint(buf, r.Value, serial.U64SerializedLength), nil
}

func (r RewardItem) IntoBytes() ([]byte, error) { return r.ToBytes() }

func (r *RewardItem) FromBytes(data []byte) ([]byte, error) {
	rem, err := r.ValidatorID.FromBytes(data)
	if err != nil {
		return nil, err
	}
	value, rem, err := serial.SplitUint[uint64](rem, serial.U64SerializedLength)
	if err != nil {
		return nil, err
	}
	r.Value = value
	return rem, nil
}

func (r *RewardItem) FromVec(data []byte) ([]byte, error) {
	rem, err := r.ValidatorID.FromVec(data)
	if err != nil {
		return nil, err
	}
	value, rem, err := serial.SplitUint[uint64](rem, serial.U64SerializedLength)
	if err != nil {
		return nil, err
	}
	r.Value = value
	return rem, nil
}

// EvictItem marks an inactive validator for eviction at the era boundary.
type EvictItem struct {
	ValidatorID serial.Bytes
}

var _ serial.Codec = (*EvictItem)(nil)

func (e EvictItem) SerializedLength() int { return e.ValidatorID.SerializedLength() }

func (e EvictItem) ToBytes() ([]byte, error) { return e.ValidatorID.ToBytes() }

func (e EvictItem) IntoBytes() ([]byte, error) { return e.ToBytes() }

func (e *EvictItem) FromBytes(data []byte) ([]byte, error) {
	return e.ValidatorID.FromBytes(data)
}

func (e *EvictItem) FromVec(data []byte) ([]byte, error) {
	return e.ValidatorID.FromVec(data)
}

// StepRequest asks the execution engine to run the era-end step against the
// state identified by ParentStateHash. It is the worked example of a
// composite structure on the encoding substrate: fields decode sequentially
// from one contiguous buffer, each consuming its own prefix.
type StepRequest struct {
	ParentStateHash       serial.Digest
	ProtocolVersion       ProtocolVersion
	SlashItems            []SlashItem
	RewardItems           []RewardItem
	EvictItems            []EvictItem
	RunAuction            bool
	NextEraID             EraID
	EraEndTimestampMillis uint64
}

var _ serial.Codec = (*StepRequest)(nil)

func (r StepRequest) SerializedLength() int {
	return r.ParentStateHash.SerializedLength() +
		r.ProtocolVersion.SerializedLength() +
		serial.SliceSerializedLength(r.SlashItems) +
		serial.SliceSerializedLength(r.RewardItems) +
		serial.SliceSerializedLength(r.EvictItems) +
		serial.BoolSerializedLength +
		r.NextEraID.SerializedLength() +
		serial.U64SerializedLength
}

func (r StepRequest) ToBytes() ([]byte, error) {
	buf := serial.AllocateBuffer(r)
	for _, enc := range []serial.Encoder{r.ParentStateHash, r.ProtocolVersion} {
		b, err := enc.ToBytes()
		if err != nil {
			return nil, err
		}
		buf = append(buf, b...)
	}
	slashes, err := serial.SliceToBytes(r.SlashItems)
	if err != nil {
		return nil, err
	}
	buf = append(buf, slashes...)
	rewards, err := serial.SliceToBytes(r.RewardItems)
	if err != nil {
		return nil, err
	}
	buf = append(buf, rewards...)
	evicts, err := serial.SliceToBytes(r.EvictItems)
	if err != nil {
		return nil, err
	}
	buf = append(buf, evicts...)
	auction, err := serial.Bool(r.RunAuction).ToBytes()
	if err != nil {
		return nil, err
	}
	buf = append(buf, auction...)
	era, err := r.NextEraID.ToBytes()
	if err != nil {
		return nil, err
	}
	buf = append(buf, era...)
	return serial.AppendUint(buf, r.EraEndTimestampMillis, serial.U64SerializedLength), nil
}

func (r StepRequest) IntoBytes() ([]byte, error) { return r.ToBytes() }

func (r *StepRequest) FromBytes(data []byte) ([]byte, error) {
	rem, err := r.ParentStateHash.FromBytes(data)
	if err != nil {
		return nil, err
	}
	rem, err = r.ProtocolVersion.FromBytes(rem)
	if err != nil {
		return nil, err
	}
	r.SlashItems, rem, err = serial.SliceFromBytes[SlashItem](rem)
	if err != nil {
		return nil, err
	}
	r.RewardItems, rem, err = serial.SliceFromBytes[RewardItem](rem)
	if err != nil {
		return nil, err
	}
	r.EvictItems, rem, err = serial.SliceFromBytes[EvictItem](rem)
	if err != nil {
		return nil, err
	}
	var auction serial.Bool
	rem, err = auction.FromBytes(rem)
	if err != nil {
		return nil, err
	}
	r.RunAuction = bool(auction)
	rem, err = r.NextEraID.FromBytes(rem)
	if err != nil {
		return nil, err
	}
	millis, rem, err := serial.SplitUint[uint64](rem, serial.U64SerializedLength)
	if err != nil {
		return nil, err
	}
	r.EraEndTimestampMillis = millis
	return rem, nil
}

func (r *StepRequest) FromVec(data []byte) ([]byte, error) {
	rem, err := r.ParentStateHash.FromVec(data)
	if err != nil {
		return nil, err
	}
	rem, err = r.ProtocolVersion.FromVec(rem)
	if err != nil {
		return nil, err
	}
	r.SlashItems, rem, err = serial.SliceFromVec[SlashItem](rem)
	if err != nil {
		return nil, err
	}
	r.RewardItems, rem, err = serial.SliceFromVec[RewardItem](rem)
	if err != nil {
		return nil, err
	}
	r.EvictItems, rem, err = serial.SliceFromVec[EvictItem](rem)
	if err != nil {
		return nil, err
	}
	var auction serial.Bool
	rem, err = auction.FromVec(rem)
	if err != nil {
		return nil, err
	}
	r.RunAuction = bool(auction)
	rem, err = r.NextEraID.FromVec(rem)
	if err != nil {
		return nil, err
	}
	millis, rem, err := serial.SplitUint[uint64](rem, serial.U64SerializedLength)
	if err != nil {
		return nil, err
	}
	r.EraEndTimestampMillis = millis
	return rem, nil
}

// Hash returns the digest of the request's canonical encoding.
func (r StepRequest) Hash() (serial.Digest, error) {
	return serial.HashOf(r)
}
