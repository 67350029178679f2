package contract

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"

	"qfund/sdk"
)

// Stored records use a hand-rolled deterministic binary layout: big-endian
// fixed ints, varint-prefixed strings and lists. No reflection so every
// replica encodes byte-identically.

type binWriter struct {
	buf bytes.Buffer
}

func newWriter() *binWriter { return &binWriter{} }

func (w *binWriter) bytes() []byte { return w.buf.Bytes() }

// writeUint64 writes big endian numbers so tooling can read them without guessing.
func (w *binWriter) writeUint64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])
}

// writeInt64 reuses the uint routine since casting keeps the sign bits intact.
func (w *binWriter) writeInt64(v int64) {
	w.writeUint64(uint64(v))
}

// writeVarUint uses varints to keep counts and lens compact.
func (w *binWriter) writeVarUint(v uint64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v)
	w.buf.Write(tmp[:n])
}

// writeString prefixes its length then dumps UTF-8 directly.
func (w *binWriter) writeString(s string) {
	w.writeVarUint(uint64(len(s)))
	w.buf.WriteString(s)
}

// writeBytes mirrors writeString for raw blobs like proposal metadata.
func (w *binWriter) writeBytes(b []byte) {
	w.writeVarUint(uint64(len(b)))
	w.buf.Write(b)
}

// writeAddress keeps one call site in case address encoding ever changes.
func (w *binWriter) writeAddress(a sdk.Address) {
	w.writeString(a.String())
}

// writeCoin stores denom then amount.
func (w *binWriter) writeCoin(c sdk.Coin) {
	w.writeString(c.Denom.String())
	w.writeUint64(c.Amount)
}

// writeExpiration stores both bounds; zero means unset.
func (w *binWriter) writeExpiration(e Expiration) {
	w.writeUint64(e.AtHeight)
	w.writeInt64(e.AtTime)
}

// writeAddressList prefixes the count then each entry.
func (w *binWriter) writeAddressList(list []sdk.Address) {
	w.writeVarUint(uint64(len(list)))
	for _, a := range list {
		w.writeAddress(a)
	}
}

type binReader struct {
	r *bytes.Reader
}

func newReader(data []byte) *binReader {
	return &binReader{r: bytes.NewReader(data)}
}

var errTruncated = errors.New("truncated record")

func (r *binReader) readUint64() (uint64, error) {
	var b [8]byte
	if _, err := io.ReadFull(r.r, b[:]); err != nil {
		return 0, errTruncated
	}
	return binary.BigEndian.Uint64(b[:]), nil
}

func (r *binReader) readInt64() (int64, error) {
	v, err := r.readUint64()
	return int64(v), err
}

func (r *binReader) readVarUint() (uint64, error) {
	v, err := binary.ReadUvarint(r.r)
	if err != nil {
		return 0, errTruncated
	}
	return v, nil
}

func (r *binReader) readString() (string, error) {
	n, err := r.readVarUint()
	if err != nil {
		return "", err
	}
	if n > uint64(r.r.Len()) {
		return "", errTruncated
	}
	buf := make([]byte, n)
	if n > 0 {
		if _, err := io.ReadFull(r.r, buf); err != nil {
			return "", errTruncated
		}
	}
	return string(buf), nil
}

func (r *binReader) readBytes() ([]byte, error) {
	s, err := r.readString()
	if err != nil {
		return nil, err
	}
	if len(s) == 0 {
		return nil, nil
	}
	return []byte(s), nil
}

func (r *binReader) readAddress() (sdk.Address, error) {
	s, err := r.readString()
	return sdk.Address(s), err
}

func (r *binReader) readCoin() (sdk.Coin, error) {
	denom, err := r.readString()
	if err != nil {
		return sdk.Coin{}, err
	}
	amount, err := r.readUint64()
	if err != nil {
		return sdk.Coin{}, err
	}
	return sdk.Coin{Denom: sdk.Denom(denom), Amount: amount}, nil
}

func (r *binReader) readExpiration() (Expiration, error) {
	height, err := r.readUint64()
	if err != nil {
		return Expiration{}, err
	}
	t, err := r.readInt64()
	if err != nil {
		return Expiration{}, err
	}
	return Expiration{AtHeight: height, AtTime: t}, nil
}

func (r *binReader) readAddressList() ([]sdk.Address, error) {
	n, err := r.readVarUint()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	list := make([]sdk.Address, 0, n)
	for i := uint64(0); i < n; i++ {
		a, err := r.readAddress()
		if err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return list, nil
}

// -----------------------------------------------------------------------------
// Record encodings
// -----------------------------------------------------------------------------

func encodeConfig(cfg *Config) []byte {
	w := newWriter()
	w.writeAddress(cfg.Admin)
	w.writeAddress(cfg.LeftoverAddr)
	w.writeCoin(cfg.Budget)
	w.writeExpiration(cfg.ProposalPeriod)
	w.writeExpiration(cfg.VotingPeriod)
	w.writeAddressList(cfg.CreateWhitelist)
	w.writeAddressList(cfg.VoteWhitelist)
	w.buf.WriteByte(byte(cfg.Algorithm))
	return w.bytes()
}

func decodeConfig(data []byte) (*Config, error) {
	r := newReader(data)
	cfg := &Config{}
	var err error
	if cfg.Admin, err = r.readAddress(); err != nil {
		return nil, err
	}
	if cfg.LeftoverAddr, err = r.readAddress(); err != nil {
		return nil, err
	}
	if cfg.Budget, err = r.readCoin(); err != nil {
		return nil, err
	}
	if cfg.ProposalPeriod, err = r.readExpiration(); err != nil {
		return nil, err
	}
	if cfg.VotingPeriod, err = r.readExpiration(); err != nil {
		return nil, err
	}
	if cfg.CreateWhitelist, err = r.readAddressList(); err != nil {
		return nil, err
	}
	if cfg.VoteWhitelist, err = r.readAddressList(); err != nil {
		return nil, err
	}
	alg, err := r.r.ReadByte()
	if err != nil {
		return nil, errTruncated
	}
	cfg.Algorithm = Algorithm(alg)
	return cfg, nil
}

func encodeProposal(p *Proposal) []byte {
	w := newWriter()
	w.writeUint64(p.ID)
	w.writeString(p.Title)
	w.writeString(p.Description)
	w.writeBytes(p.Metadata)
	w.writeAddress(p.FundAddress)
	w.writeUint64(p.CollectedFunds)
	return w.bytes()
}

func decodeProposal(data []byte) (*Proposal, error) {
	r := newReader(data)
	p := &Proposal{}
	var err error
	if p.ID, err = r.readUint64(); err != nil {
		return nil, err
	}
	if p.Title, err = r.readString(); err != nil {
		return nil, err
	}
	if p.Description, err = r.readString(); err != nil {
		return nil, err
	}
	if p.Metadata, err = r.readBytes(); err != nil {
		return nil, err
	}
	if p.FundAddress, err = r.readAddress(); err != nil {
		return nil, err
	}
	if p.CollectedFunds, err = r.readUint64(); err != nil {
		return nil, err
	}
	return p, nil
}

func encodeVote(v *Vote) []byte {
	w := newWriter()
	w.writeUint64(v.ProposalID)
	w.writeAddress(v.Voter)
	w.writeCoin(v.Fund)
	return w.bytes()
}

func decodeVote(data []byte) (*Vote, error) {
	r := newReader(data)
	v := &Vote{}
	var err error
	if v.ProposalID, err = r.readUint64(); err != nil {
		return nil, err
	}
	if v.Voter, err = r.readAddress(); err != nil {
		return nil, err
	}
	if v.Fund, err = r.readCoin(); err != nil {
		return nil, err
	}
	return v, nil
}

func encodeAddressList(list []sdk.Address) []byte {
	w := newWriter()
	w.writeAddressList(list)
	return w.bytes()
}

func decodeAddressList(data []byte) ([]sdk.Address, error) {
	return newReader(data).readAddressList()
}
