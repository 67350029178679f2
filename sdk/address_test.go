package sdk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddressValidation(t *testing.T) {
	cases := []struct {
		addr  Address
		valid bool
		typ   AddressType
	}{
		{"hive:alice", true, AddressTypeHive},
		{"did:key:z6Mk", true, AddressTypeKey},
		{"did:pkh:eip155:1:0xabc", true, AddressTypeEVM},
		{"system:treasury", true, AddressTypeSystem},
		{"hive:", false, AddressTypeHive},
		{"alice", false, AddressTypeUnknown},
		{"", false, AddressTypeUnknown},
		{"not-an-address", false, AddressTypeUnknown},
	}
	for _, tc := range cases {
		t.Run(string(tc.addr), func(t *testing.T) {
			assert.Equal(t, tc.typ, tc.addr.Type())
			assert.Equal(t, tc.valid, tc.addr.IsValid())
		})
	}
}

func TestAddressDomain(t *testing.T) {
	assert.Equal(t, AddressDomainUser, Address("hive:alice").Domain())
	assert.Equal(t, AddressDomainContract, Address("contract:qfund").Domain())
	assert.Equal(t, AddressDomainSystem, Address("system:treasury").Domain())
}
