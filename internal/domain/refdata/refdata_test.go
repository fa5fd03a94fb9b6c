package refdata

import "testing"

func TestLookupName_KnownTournament(t *testing.T) {
	if got := LookupName(17, "fallback"); got != "Premier League" {
		t.Fatalf("LookupName(17)=%q", got)
	}
}

func TestLookupName_UnknownTournamentFallsBack(t *testing.T) {
	if got := LookupName(99999, "Coastal League"); got != "Coastal League" {
		t.Fatalf("LookupName(99999)=%q", got)
	}
}

func TestKnown_CoversEveryLookup(t *testing.T) {
	all := Known()
	if len(all) == 0 {
		t.Fatal("Known() returned nothing")
	}
	for _, l := range all {
		got, ok := Lookup(l.ID)
		if !ok {
			t.Fatalf("Lookup(%d) missing", l.ID)
		}
		if got.Name == "" || got.CountryCode == "" {
			t.Fatalf("league %d has incomplete metadata: %+v", l.ID, got)
		}
	}
}
