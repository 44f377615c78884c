package cpu

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
)

func callAll(h *Hooks) {
	h.OnCode(0x1001, 4)
	h.OnMem(MEM_WRITE, 0x1002, 4, 0xffffffff)
	h.OnMem(MEM_READ, 0x1004, 4, 1)
	h.OnFault(MEM_WRITE_UNMAPPED, 0x1003, 4, 0xfffffffe)
}

// this test ensures it's safe to dispatch all hooks while empty
func TestHooksEmpty(t *testing.T) {
	callAll(NewHooks(nil))
}

// checks if two lists of strings are equal
func strseq(a []string, b []string) error {
	if len(a) != len(b) {
		return errors.Errorf("output list length mismatch: %d != %d", len(a), len(b))
	}
	for i, v := range a {
		if v != b[i] {
			return errors.Errorf("output list value mismatch: %s != %s", v, b[i])
		}
	}
	return nil
}

func TestHooks(t *testing.T) {
	h := NewHooks(nil)
	compare := []string{
		"code(0x1001, 0x4)",
		"write(16, 0x1002, 4, 0xffffffff)",
		"fault(20, 0x1003, 4, 0xfffffffe)",
	}
	var results []string
	codeCb := func(addr, size uint32) {
		results = append(results, fmt.Sprintf("code(%#x, %#x)", addr, size))
	}
	writeCb := func(access int, addr uint32, size int, val uint32) {
		results = append(results, fmt.Sprintf("write(%d, %#x, %d, %#x)", access, addr, size, val))
	}
	faultCb := MemFaultCb(func(enum int, addr uint32, size int, val uint32) {
		results = append(results, fmt.Sprintf("fault(%d, %#x, %d, %#x)", enum, addr, size, val))
	})
	var hooks []Hook
	add := func(htype int, cb interface{}) {
		hh, err := h.HookAdd(htype, cb, 1, 0)
		if err != nil {
			t.Fatal(err)
		}
		hooks = append(hooks, hh)
	}
	add(HOOK_CODE, codeCb)
	add(HOOK_MEM_WRITE, writeCb)
	add(HOOK_MEM_ERR, faultCb)

	callAll(h)
	if err := strseq(results, compare); err != nil {
		t.Fatal(err)
	}

	for _, hh := range hooks {
		if err := h.HookDel(hh); err != nil {
			t.Fatal(err)
		}
	}
	results = nil
	callAll(h)
	if len(results) != 0 {
		t.Fatalf("deleted hooks still fired: %v", results)
	}
}

func TestHookRange(t *testing.T) {
	h := NewHooks(nil)
	var hits []uint32
	_, err := h.HookAdd(HOOK_CODE, func(addr, size uint32) { hits = append(hits, addr) }, 0x1000, 0x1fff)
	if err != nil {
		t.Fatal(err)
	}
	for _, addr := range []uint32{0xffc, 0x1000, 0x1ffc, 0x2000} {
		h.OnCode(addr, 4)
	}
	if len(hits) != 2 || hits[0] != 0x1000 || hits[1] != 0x1ffc {
		t.Fatalf("bad hook range hits: %#x", hits)
	}
}

func TestHookBadCallback(t *testing.T) {
	h := NewHooks(nil)
	if _, err := h.HookAdd(HOOK_CODE, func() {}, 1, 0); err == nil {
		t.Error("HookAdd accepted a mistyped code callback")
	}
	if _, err := h.HookAdd(12345, func(addr, size uint32) {}, 1, 0); err == nil {
		t.Error("HookAdd accepted an unknown hook type")
	}
}

// memory hooks fire from Mem once attached
func TestMemHooks(t *testing.T) {
	mem := makeMem(t)
	h := NewHooks(mem)
	var reads, writes, faults int
	h.HookAdd(HOOK_MEM_READ, func(access int, addr uint32, size int, val uint32) { reads++ }, 1, 0)
	h.HookAdd(HOOK_MEM_WRITE, func(access int, addr uint32, size int, val uint32) { writes++ }, 1, 0)
	h.HookAdd(HOOK_MEM_ERR, func(enum int, addr uint32, size int, val uint32) { faults++ }, 1, 0)

	mem.WriteUint(0x2000, 4, 1)
	mem.ReadUint(0x2000, 4, MEM_READ)
	mem.ReadUint(0x1000, 4, MEM_FETCH)
	mem.ReadUint(0x0, 4, MEM_READ)
	mem.WriteUint(0x0, 4, 1)
	if reads != 1 || writes != 1 || faults != 2 {
		t.Fatalf("reads=%d writes=%d faults=%d", reads, writes, faults)
	}
}
