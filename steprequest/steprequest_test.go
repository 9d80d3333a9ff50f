package steprequest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oy3o/serial"
	"github.com/oy3o/serial/serialtest"
	"github.com/oy3o/serial/steprequest"
)

func validatorID(b byte) serial.Bytes {
	return serial.CopyBytes([]byte{b, b, b, b})
}

func sampleRequest() steprequest.StepRequest {
	return steprequest.NewBuilder().
		WithParentStateHash(serial.HashBytes([]byte("parent state"))).
		WithProtocolVersion(steprequest.ProtocolVersion{Major: 2, Minor: 1, Patch: 0}).
		WithSlashItem(steprequest.SlashItem{ValidatorID: validatorID(1)}).
		WithRewardItem(steprequest.RewardItem{ValidatorID: validatorID(2), Value: 5000}).
		WithRewardItem(steprequest.RewardItem{ValidatorID: validatorID(3), Value: 1}).
		WithEvictItem(steprequest.EvictItem{ValidatorID: validatorID(4)}).
		WithNextEraID(steprequest.EraID(42)).
		WithEraEndTimestampMillis(1_700_000_000_000).
		Build()
}

func TestBuilderDefaults(t *testing.T) {
	req := steprequest.NewBuilder().Build()
	assert.True(t, req.RunAuction, "a default step runs the auction")
	assert.Empty(t, req.SlashItems)
	assert.Empty(t, req.RewardItems)
	assert.Empty(t, req.EvictItems)
	assert.Equal(t, steprequest.EraID(0), req.NextEraID)
}

func TestBuilderAccumulatesItems(t *testing.T) {
	req := sampleRequest()
	assert.Len(t, req.SlashItems, 1)
	assert.Len(t, req.RewardItems, 2)
	assert.Len(t, req.EvictItems, 1)
	assert.True(t, req.RunAuction)
	assert.Equal(t, steprequest.EraID(42), req.NextEraID)
	assert.Equal(t, uint64(1_700_000_000_000), req.EraEndTimestampMillis)
}

func TestFieldRoundTrips(t *testing.T) {
	serialtest.RoundTrip[steprequest.EraID](t, steprequest.EraID(7))
	serialtest.RoundTrip[steprequest.ProtocolVersion](t, steprequest.ProtocolVersion{Major: 1, Minor: 4, Patch: 2})
	serialtest.RoundTrip[steprequest.SlashItem](t, steprequest.SlashItem{ValidatorID: validatorID(9)})
	serialtest.RoundTrip[steprequest.RewardItem](t, steprequest.RewardItem{ValidatorID: validatorID(9), Value: 123})
	serialtest.RoundTrip[steprequest.EvictItem](t, steprequest.EvictItem{ValidatorID: validatorID(9)})
}

func TestStepRequestRoundTrip(t *testing.T) {
	serialtest.RoundTrip[steprequest.StepRequest](t, sampleRequest())
}

func TestStepRequestDefaultRoundTrip(t *testing.T) {
	serialtest.RoundTrip[steprequest.StepRequest](t, steprequest.NewBuilder().Build())
}

func TestProtocolVersionEncodedForm(t *testing.T) {
	enc, err := steprequest.ProtocolVersion{Major: 1, Minor: 2, Patch: 3}.ToBytes()
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 0, 0, 0, 2, 0, 0, 0, 3, 0, 0, 0}, enc)
}

func TestStepRequestHashIsStable(t *testing.T) {
	a, err := sampleRequest().Hash()
	require.NoError(t, err)
	b, err := sampleRequest().Hash()
	require.NoError(t, err)
	assert.Equal(t, a, b)

	mutated := sampleRequest()
	mutated.NextEraID = 43
	c, err := mutated.Hash()
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestStepRequestSequentialDecode(t *testing.T) {
	// Two requests concatenated in one buffer decode in sequence, each
	// consuming exactly its own bytes.
	first := sampleRequest()
	second := steprequest.NewBuilder().WithNextEraID(99).WithRunAuction(false).Build()

	b1, err := serial.Serialize(first)
	require.NoError(t, err)
	b2, err := serial.Serialize(second)
	require.NoError(t, err)
	buf := append(b1, b2...)

	var got1 steprequest.StepRequest
	rem, err := got1.FromBytes(buf)
	require.NoError(t, err)
	var got2 steprequest.StepRequest
	rem, err = got2.FromBytes(rem)
	require.NoError(t, err)
	assert.Empty(t, rem)
	assert.Equal(t, first, got1)
	assert.Equal(t, second, got2)
}
