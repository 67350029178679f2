package contract

import "qfund/sdk"

// Storage key prefixes. Keeping each entity under its own byte keeps related
// records contiguous in ordered backends.
const (
	// kConfig stores the encoded singleton Config.
	kConfig byte = 0x01
	// kProposalSeq holds the decimal proposal-id counter.
	kProposalSeq byte = 0x02
	// kDistributed flags that the one-shot distribution already ran.
	kDistributed byte = 0x03
	// kProposal contains encoded Proposal records keyed by id.
	kProposal byte = 0x10
	// kVote houses encoded Vote records keyed by proposal id plus voter.
	kVote byte = 0x20
	// kVoters lists voter addresses per proposal for deterministic iteration.
	kVoters byte = 0x21
)

// packU64LEInline sprinkles a uint64 into dst in little-endian order so keys stay compact.
func packU64LEInline(x uint64, dst []byte) {
	dst[0] = byte(x)
	dst[1] = byte(x >> 8)
	dst[2] = byte(x >> 16)
	dst[3] = byte(x >> 24)
	dst[4] = byte(x >> 32)
	dst[5] = byte(x >> 40)
	dst[6] = byte(x >> 48)
	dst[7] = byte(x >> 56)
}

// packU64LE appends the encoded number to dst and returns the new slice.
func packU64LE(x uint64, dst []byte) []byte {
	return append(dst,
		byte(x),
		byte(x>>8),
		byte(x>>16),
		byte(x>>24),
		byte(x>>32),
		byte(x>>40),
		byte(x>>48),
		byte(x>>56),
	)
}

// configKey is the singleton config slot.
func configKey() string {
	return string([]byte{kConfig})
}

// proposalSeqKey holds the monotonically increasing id counter.
func proposalSeqKey() string {
	return string([]byte{kProposalSeq})
}

// distributedKey flags the single-shot distribution.
func distributedKey() string {
	return string([]byte{kDistributed})
}

// proposalKey builds the storage key for a proposal by id.
func proposalKey(id uint64) string {
	var buf [9]byte
	buf[0] = kProposal
	packU64LEInline(id, buf[1:])
	return string(buf[:])
}

// voteKey mixes proposal id plus voter address to avoid nested maps in host storage.
func voteKey(proposalID uint64, voter sdk.Address) string {
	addr := voter.String()
	buf := make([]byte, 0, 1+8+len(addr))
	buf = append(buf, kVote)
	buf = packU64LE(proposalID, buf)
	buf = append(buf, addr...)
	return string(buf)
}

// votersKey stores the per-proposal voter index list.
func votersKey(proposalID uint64) string {
	var buf [9]byte
	buf[0] = kVoters
	packU64LEInline(proposalID, buf[1:])
	return string(buf[:])
}
