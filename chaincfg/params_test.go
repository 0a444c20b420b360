package chaincfg

import "testing"

func TestLookup_KnownNetworks(t *testing.T) {
	for _, name := range Names() {
		p, err := Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", name, err)
		}
		if p.Name != name {
			t.Fatalf("Lookup(%q).Name = %q", name, p.Name)
		}
		if p.DefaultPort == 0 {
			t.Fatalf("%s: missing default port", name)
		}
	}
}

func TestLookup_UnknownNetwork(t *testing.T) {
	if _, err := Lookup("simnet"); err == nil {
		t.Fatalf("expected error for unknown network")
	}
}

func TestNetMagicsDistinct(t *testing.T) {
	seen := make(map[[4]byte]string)
	for _, name := range Names() {
		p, err := Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", name, err)
		}
		if prev, ok := seen[p.NetMagic]; ok {
			t.Fatalf("networks %s and %s share net magic % x", prev, name, p.NetMagic)
		}
		seen[p.NetMagic] = name
	}
}

func TestCheckpointsAscending(t *testing.T) {
	for _, name := range Names() {
		p, err := Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", name, err)
		}
		for i := 1; i < len(p.Checkpoints); i++ {
			if p.Checkpoints[i].Height <= p.Checkpoints[i-1].Height {
				t.Fatalf("%s: checkpoint heights not ascending at %d", name, i)
			}
		}
	}
}

func TestGenesisCheckpointMatchesGenesisHash(t *testing.T) {
	for _, p := range []*Params{&STN, &RegTest} {
		if len(p.Checkpoints) == 0 || p.Checkpoints[0].Height != 0 {
			t.Fatalf("%s: missing genesis checkpoint", p.Name)
		}
		if p.Checkpoints[0].Hash != p.GenesisHash {
			t.Fatalf("%s: genesis checkpoint differs from genesis hash", p.Name)
		}
	}
}
