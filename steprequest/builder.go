package steprequest

import "github.com/oy3o/serial"

// Builder constructs a StepRequest field by field. The zero request it
// starts from runs the auction, which is what operators want in almost
// every step.
type Builder struct {
	request StepRequest
}

// NewBuilder returns a builder for a default request.
func NewBuilder() *Builder {
	return &Builder{
		request: StepRequest{RunAuction: true},
	}
}

// WithParentStateHash sets the state root the step executes against.
func (b *Builder) WithParentStateHash(hash serial.Digest) *Builder {
	b.request.ParentStateHash = hash
	return b
}

// WithProtocolVersion sets the protocol version of the request.
func (b *Builder) WithProtocolVersion(version ProtocolVersion) *Builder {
	b.request.ProtocolVersion = version
	return b
}

// WithSlashItem appends a validator to slash.
func (b *Builder) WithSlashItem(item SlashItem) *Builder {
	b.request.SlashItems = append(b.request.SlashItems, item)
	return b
}

// WithRewardItem appends a validator reward.
func (b *Builder) WithRewardItem(item RewardItem) *Builder {
	b.request.RewardItems = append(b.request.RewardItems, item)
	return b
}

// WithEvictItem appends a validator to evict.
func (b *Builder) WithEvictItem(item EvictItem) *Builder {
	b.request.EvictItems = append(b.request.EvictItems, item)
	return b
}

// WithRunAuction overrides whether the step runs the auction.
func (b *Builder) WithRunAuction(run bool) *Builder {
	b.request.RunAuction = run
	return b
}

// WithNextEraID sets the era the step transitions into.
func (b *Builder) WithNextEraID(era EraID) *Builder {
	b.request.NextEraID = era
	return b
}

// WithEraEndTimestampMillis sets the wall-clock end of the closing era.
func (b *Builder) WithEraEndTimestampMillis(millis uint64) *Builder {
	b.request.EraEndTimestampMillis = millis
	return b
}

// Build returns the assembled request.
func (b *Builder) Build() StepRequest {
	return b.request
}
