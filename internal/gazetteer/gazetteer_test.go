package gazetteer

import "testing"

func TestFind(t *testing.T) {
	c, ok := Find("mumbai")
	if !ok {
		t.Fatal("Find(mumbai) should match case-insensitively")
	}
	if c.State != "Maharashtra" || c.Lat != 19.0760 || c.Lon != 72.8777 {
		t.Errorf("unexpected city: %+v", c)
	}

	if _, ok := Find("atlantis"); ok {
		t.Error("Find(atlantis) should not match")
	}
}

func TestMentionedIn(t *testing.T) {
	found := MentionedIn("flooding between delhi and noida after heavy rain")
	if len(found) != 2 {
		t.Fatalf("found %d cities, want 2: %+v", len(found), found)
	}
	// Table order, not text order.
	if found[0].Name != "Delhi" || found[1].Name != "Noida" {
		t.Errorf("order = %s, %s", found[0].Name, found[1].Name)
	}

	if got := MentionedIn("quiet day in the countryside"); got != nil {
		t.Errorf("expected nil for no mentions, got %+v", got)
	}
}

func TestStateIn(t *testing.T) {
	if got := StateIn("landslide in uttar pradesh hills"); got != "Uttar Pradesh" {
		t.Errorf("StateIn = %q, want Uttar Pradesh", got)
	}
	if got := StateIn("storm over the ocean"); got != "" {
		t.Errorf("StateIn = %q, want empty", got)
	}
}

func TestTitle(t *testing.T) {
	if got := Title("west bengal"); got != "West Bengal" {
		t.Errorf("Title = %q", got)
	}
	if got := Title("delhi"); got != "Delhi" {
		t.Errorf("Title = %q", got)
	}
}

func TestTables(t *testing.T) {
	if len(Cities) < 90 {
		t.Errorf("cities table has %d entries, expected the full list", len(Cities))
	}
	if len(Regions) != 20 {
		t.Errorf("regions table has %d entries, want 20", len(Regions))
	}

	seen := make(map[string]bool)
	for _, c := range Cities {
		if seen[c.Name+"_"+c.State] {
			t.Errorf("duplicate city %s, %s", c.Name, c.State)
		}
		seen[c.Name+"_"+c.State] = true
		if c.Lat < 6 || c.Lat > 37 || c.Lon < 68 || c.Lon > 98 {
			t.Errorf("%s coordinates outside India: %f, %f", c.Name, c.Lat, c.Lon)
		}
	}
}
