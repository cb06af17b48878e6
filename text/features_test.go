package text

import "testing"

func TestOpenTypeFeaturesAddGetRemove(t *testing.T) {
	f := NewOpenTypeFeatures()
	f.Add('l', 'i', 'g', 'a', 0)
	f.Add('k', 'e', 'r', 'n', 1)
	f.Add('l', 'i', 'g', 'a', 1) // replaces

	if f.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", f.Len())
	}
	if v, ok := f.Get('l', 'i', 'g', 'a'); !ok || v != 1 {
		t.Errorf("Get(liga) = %d, %v; want 1, true", v, ok)
	}

	f.Remove('l', 'i', 'g', 'a')
	f.Remove('s', 's', '0', '1')
	if _, ok := f.Get('l', 'i', 'g', 'a'); ok {
		t.Error("liga still present after Remove")
	}
	if f.Len() != 1 {
		t.Errorf("Len() = %d, want 1", f.Len())
	}
}

func TestOpenTypeFeaturesForEachSorted(t *testing.T) {
	f := NewOpenTypeFeatures()
	f.Add('s', 'm', 'c', 'p', 1)
	f.Add('c', 'a', 'l', 't', 0)
	f.Add('l', 'i', 'g', 'a', 1)

	var got []string
	f.ForEach(func(tag Tag, _ uint32) bool {
		got = append(got, tag.String())
		return true
	})
	want := []string{"calt", "liga", "smcp"}
	if len(got) != len(want) {
		t.Fatalf("ForEach visited %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ForEach[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	calls := 0
	f.ForEach(func(Tag, uint32) bool {
		calls++
		return false
	})
	if calls != 1 {
		t.Errorf("ForEach after false: %d calls, want 1", calls)
	}
}

func TestOpenTypeFeaturesCloneEqual(t *testing.T) {
	f := NewOpenTypeFeatures()
	f.Add('l', 'i', 'g', 'a', 1)

	c := f.Clone()
	if !f.Equal(c) {
		t.Fatal("clone not equal to original")
	}
	c.Add('k', 'e', 'r', 'n', 0)
	if f.Equal(c) || f.Len() != 1 {
		t.Error("changing the clone affected the original")
	}

	var nilSet *OpenTypeFeatures
	if !nilSet.Equal(NewOpenTypeFeatures()) {
		t.Error("nil set should equal an empty set")
	}
	if nilSet.Clone() != nil {
		t.Error("Clone of nil should be nil")
	}
}

func TestOpenTypeFeaturesShapingFeatures(t *testing.T) {
	var nilSet *OpenTypeFeatures
	if got := nilSet.shapingFeatures(); got != nil {
		t.Errorf("nil set: %v, want nil", got)
	}

	f := NewOpenTypeFeatures()
	f.Add('l', 'i', 'g', 'a', 0)
	f.Add('d', 'l', 'i', 'g', 1)
	got := f.shapingFeatures()
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Tag != NewTag('d', 'l', 'i', 'g') || got[0].Value != 1 {
		t.Errorf("got[0] = %v", got[0])
	}
	if got[1].Tag != NewTag('l', 'i', 'g', 'a') || got[1].Value != 0 {
		t.Errorf("got[1] = %v", got[1])
	}
}
