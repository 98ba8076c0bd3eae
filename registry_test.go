package dnd

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRegistryIDsUniqueAndIncreasing(t *testing.T) {
	reg := NewRegistry()
	var sources, targets []ID
	for i := 0; i < 5; i++ {
		id, _ := reg.RegisterSource("item", &stubSource{})
		sources = append(sources, id)
		tid, _ := reg.RegisterTarget("item", &stubTarget{})
		targets = append(targets, tid)
	}
	for i := range sources {
		if want := ID(fmt.Sprintf("DragSource(%d)", i)); sources[i] != want {
			t.Errorf("source %d = %s, want %s", i, sources[i], want)
		}
		if want := ID(fmt.Sprintf("DropTarget(%d)", i)); targets[i] != want {
			t.Errorf("target %d = %s, want %s", i, targets[i], want)
		}
	}
}

func TestRegistryIDsNeverReused(t *testing.T) {
	reg := NewRegistry()
	first, unregister := reg.RegisterSource("item", &stubSource{})
	unregister()
	second, _ := reg.RegisterSource("item", &stubSource{})
	if first == second {
		t.Errorf("id %s reused after unregister", first)
	}
}

func TestRegistryLookups(t *testing.T) {
	reg := NewRegistry()
	src := &stubSource{}
	tgt := &stubTarget{}
	sid, _ := reg.RegisterSource("card", src)
	tid, _ := reg.RegisterTarget("pile", tgt)

	if got, ok := reg.Source(sid); !ok || got != src {
		t.Errorf("Source(%s) = %v, %t", sid, got, ok)
	}
	if got, ok := reg.Target(tid); !ok || got != tgt {
		t.Errorf("Target(%s) = %v, %t", tid, got, ok)
	}
	if got, _ := reg.ItemType(sid); got != "card" {
		t.Errorf("ItemType(%s) = %q, want card", sid, got)
	}
	if got, _ := reg.ItemType(tid); got != "pile" {
		t.Errorf("ItemType(%s) = %q, want pile", tid, got)
	}
	if _, ok := reg.Source(tid); ok {
		t.Error("target id should not resolve as a source")
	}
	if _, ok := reg.ItemType("DragSource(99)"); ok {
		t.Error("unknown id should report ok=false")
	}
}

func TestRegistryUnregisterIdempotent(t *testing.T) {
	reg := NewRegistry()
	a, _ := reg.RegisterTarget("item", &stubTarget{})
	b, unregisterB := reg.RegisterTarget("item", &stubTarget{})
	c, _ := reg.RegisterTarget("item", &stubTarget{})

	unregisterB()
	unregisterB()

	if _, ok := reg.Target(b); ok {
		t.Error("b should be gone")
	}
	if _, ok := reg.ItemType(b); ok {
		t.Error("b's item type should be gone")
	}
	if diff := cmp.Diff([]ID{a, c}, reg.TargetIDs()); diff != "" {
		t.Errorf("TargetIDs (-want +got):\n%s", diff)
	}
}

func TestRegistryIDListsAreCopies(t *testing.T) {
	reg := NewRegistry()
	id, _ := reg.RegisterSource("item", &stubSource{})
	ids := reg.SourceIDs()
	ids[0] = "mutated"
	if got := reg.SourceIDs(); got[0] != id {
		t.Errorf("SourceIDs()[0] = %s, want %s", got[0], id)
	}
}
