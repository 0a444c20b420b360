// Package chaincfg holds the per-network chain parameter tables: pure
// data consumed by the surrounding node, with no algorithmic content.
package chaincfg

import (
	"fmt"

	"minerid.dev/node/consensus"
)

type DNSSeed struct {
	Name string
	Host string
}

type Checkpoint struct {
	Height int32
	Hash   consensus.Hash
}

type Params struct {
	Name             string
	NetMagic         [4]byte
	DiskMagic        [4]byte
	DefaultPort      uint16
	PruneAfterHeight uint64
	DNSSeeds         []DNSSeed
	GenesisHash      consensus.Hash
	Checkpoints      []Checkpoint

	PubKeyHashPrefix byte
	ScriptHashPrefix byte
	SecretKeyPrefix  byte
}

func mustHash(s string) consensus.Hash {
	h, err := consensus.HashFromHex(s)
	if err != nil {
		panic(fmt.Sprintf("chaincfg: bad hash literal %q: %v", s, err))
	}
	return h
}

// MainNet's genesis block is mined at first node start, so the table
// carries no fixed genesis hash or checkpoints for it.
var MainNet = Params{
	Name:             "main",
	NetMagic:         [4]byte{0xf9, 0xbe, 0xb4, 0xd9},
	DiskMagic:        [4]byte{0xf1, 0xc7, 0xb2, 0xd8},
	DefaultPort:      8333,
	PruneAfterHeight: 100000,
	DNSSeeds: []DNSSeed{
		{"seed1", "seed1.yourfork.org"},
		{"seed2", "seed2.yourfork.org"},
	},
	PubKeyHashPrefix: 0,
	ScriptHashPrefix: 5,
	SecretKeyPrefix:  128,
}

var STN = Params{
	Name:             "stn",
	NetMagic:         [4]byte{0xfb, 0xce, 0xc4, 0xf9},
	DiskMagic:        [4]byte{0xfb, 0xce, 0xc4, 0xf9},
	DefaultPort:      9333,
	PruneAfterHeight: 1000,
	DNSSeeds: []DNSSeed{
		{"bitcoinsv.io", "stn-seed.bitcoinsv.io"},
		{"bitcoinseed.directory", "stn-seed.bitcoinseed.directory"},
	},
	GenesisHash: mustHash("000000000933ea01ad0ee984209779baaec3ced90fa3f408719526f8d77f4943"),
	Checkpoints: []Checkpoint{
		{0, mustHash("000000000933ea01ad0ee984209779baaec3ced90fa3f408719526f8d77f4943")},
		{1, mustHash("00000000e23f9436cc8a6d6aaaa515a7b84e7a1720fc9f92805c0007c77420c4")},
		{2, mustHash("0000000040f8f40b5111d037b8b7ff69130de676327bcbd76ca0e0498a06c44a")},
		{4, mustHash("00000000d33661d5a6906f84e3c64ea6101d144ec83760bcb4ba81edcb15e68d")},
		{5, mustHash("00000000e9222ebe623bf53f6ec774619703c113242327bdc24ac830787873d6")},
		{6, mustHash("00000000764a4ff15c2645e8ede0d0f2af169f7a517dd94a6778684ed85a51e4")},
		{7, mustHash("000000001f15fe3dac966c6bb873c63348ca3d877cd606759d26bd9ad41e5545")},
		{8, mustHash("0000000074230d332b2ed9d87af3ad817b6f2616c154372311c9b2e4f386c24c")},
		{9, mustHash("00000000ca21de811f04f5ec031aa3a102f8e27f2a436cde588786da1996ec9b")},
		{10, mustHash("0000000046ceee1b7d771594c6c75f11f14f96822fd520e86ec5c703ec231e87")},
	},
	PubKeyHashPrefix: 111,
	ScriptHashPrefix: 196,
	SecretKeyPrefix:  239,
}

var TestNet = Params{
	Name:             "test",
	NetMagic:         [4]byte{0xf4, 0xe5, 0xf3, 0xf4},
	DiskMagic:        [4]byte{0x0b, 0x11, 0x09, 0x07},
	DefaultPort:      18333,
	PruneAfterHeight: 1000,
	DNSSeeds: []DNSSeed{
		{"bitcoinsv.io", "testnet-seed.bitcoinsv.io"},
		{"bitcoincloud.net", "testnet-seed.bitcoincloud.net"},
		{"bitcoinseed.directory", "testnet-seed.bitcoinseed.directory"},
	},
	GenesisHash: mustHash("000000000933ea01ad0ee984209779baaec3ced90fa3f408719526f8d77f4943"),
	Checkpoints: []Checkpoint{
		{546, mustHash("000000002a936ca763904c3c35fce2f3556c559c0214345d31b1bcebf76acb70")},
		{1155875, mustHash("00000000f17c850672894b9a75b63a1e72830bbd5f4c8889b5c1a80e7faef138")},
		{1188697, mustHash("0000000000170ed0918077bde7b4d36cc4c91be69fa09211f748240dabe047fb")},
	},
	PubKeyHashPrefix: 111,
	ScriptHashPrefix: 196,
	SecretKeyPrefix:  239,
}

var RegTest = Params{
	Name:             "regtest",
	NetMagic:         [4]byte{0xda, 0xb5, 0xbf, 0xfa},
	DiskMagic:        [4]byte{0xfa, 0xbf, 0xb5, 0xda},
	DefaultPort:      18444,
	PruneAfterHeight: 1000,
	GenesisHash:      mustHash("0f9188f13cb7b2c71f2a335e3a4fc328bf5beb436012afca590b1a11466e2206"),
	Checkpoints: []Checkpoint{
		{0, mustHash("0f9188f13cb7b2c71f2a335e3a4fc328bf5beb436012afca590b1a11466e2206")},
	},
	PubKeyHashPrefix: 111,
	ScriptHashPrefix: 196,
	SecretKeyPrefix:  239,
}

var networks = map[string]*Params{
	MainNet.Name: &MainNet,
	STN.Name:     &STN,
	TestNet.Name: &TestNet,
	RegTest.Name: &RegTest,
}

// Lookup resolves a network name to its parameter table.
func Lookup(name string) (*Params, error) {
	p, ok := networks[name]
	if !ok {
		return nil, fmt.Errorf("unknown chain %q", name)
	}
	return p, nil
}

// Names lists the known network names.
func Names() []string {
	return []string{MainNet.Name, STN.Name, TestNet.Name, RegTest.Name}
}
