package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qfund/sdk"
)

func TestConfigCodecRoundTrip(t *testing.T) {
	cfg := &Config{
		Admin:           "hive:admin",
		LeftoverAddr:    "hive:left",
		Budget:          sdk.NewCoin(sdk.DenomHive, 123456789),
		ProposalPeriod:  Expiration{AtHeight: 500},
		VotingPeriod:    Expiration{AtHeight: 900, AtTime: 1700000000},
		CreateWhitelist: []sdk.Address{"hive:a", "hive:b"},
		Algorithm:       AlgorithmCLR,
	}
	got, err := decodeConfig(encodeConfig(cfg))
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestProposalCodecMetadataOptional(t *testing.T) {
	withMeta := &Proposal{ID: 7, Title: "t", Description: "d", Metadata: []byte{0x00, 0xff}, FundAddress: "hive:f", CollectedFunds: 9}
	got, err := decodeProposal(encodeProposal(withMeta))
	require.NoError(t, err)
	assert.Equal(t, withMeta, got)

	noMeta := &Proposal{ID: 8, Title: "t2", FundAddress: "hive:f"}
	got, err = decodeProposal(encodeProposal(noMeta))
	require.NoError(t, err)
	assert.Nil(t, got.Metadata)
	assert.Equal(t, noMeta, got)
}

func TestDecodeTruncatedRecordFails(t *testing.T) {
	data := encodeVote(&Vote{ProposalID: 1, Voter: "hive:v", Fund: sdk.NewCoin(sdk.DenomHive, 10)})
	_, err := decodeVote(data[:len(data)-3])
	assert.Error(t, err)

	_, err = decodeConfig(nil)
	assert.Error(t, err)
}
