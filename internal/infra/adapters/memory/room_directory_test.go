package memory

import (
	"fmt"
	"reflect"
	"sync"
	"testing"
)

func TestRoomDirectory_CreateAndDeleteOnEmpty(t *testing.T) {
	d := NewRoomDirectory()

	if created := d.Add("r", "a"); !created {
		t.Fatal("first add must create the room")
	}
	if created := d.Add("r", "b"); created {
		t.Fatal("second add must not create the room")
	}

	if removed, deleted := d.Remove("r", "a"); !removed || deleted {
		t.Fatalf("got removed=%v deleted=%v", removed, deleted)
	}
	if removed, deleted := d.Remove("r", "b"); !removed || !deleted {
		t.Fatalf("got removed=%v deleted=%v", removed, deleted)
	}

	if d.RoomCount() != 0 {
		t.Fatalf("empty room survived, count=%d", d.RoomCount())
	}
}

func TestRoomDirectory_RemoveUnknownIsNoop(t *testing.T) {
	d := NewRoomDirectory()
	d.Add("r", "a")

	if removed, _ := d.Remove("nope", "a"); removed {
		t.Fatal("unknown room must be a no-op")
	}
	if removed, _ := d.Remove("r", "ghost"); removed {
		t.Fatal("unknown member must be a no-op")
	}
	if !d.Contains("r", "a") {
		t.Fatal("existing member lost")
	}
}

func TestRoomDirectory_MembersInJoinOrder(t *testing.T) {
	d := NewRoomDirectory()

	for _, id := range []string{"c", "a", "b"} {
		d.Add("r", id)
	}

	if got := d.Members("r"); !reflect.DeepEqual(got, []string{"c", "a", "b"}) {
		t.Fatalf("got %v", got)
	}

	if got := d.Members("missing"); got == nil || len(got) != 0 {
		t.Fatalf("missing room must give an empty list, got %#v", got)
	}
}

func TestRoomDirectory_ConcurrentJoinLeave(t *testing.T) {
	d := NewRoomDirectory()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			id := fmt.Sprintf("c%d", i)
			d.Add("r", id)
			if i%2 == 0 {
				d.Remove("r", id)
			}
		}(i)
	}
	wg.Wait()

	if got := len(d.Members("r")); got != 25 {
		t.Fatalf("expected 25 members, got %d", got)
	}
}
