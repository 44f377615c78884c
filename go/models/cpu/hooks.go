package cpu

import (
	"github.com/pkg/errors"
)

type Hook interface{}

// callback signatures accepted by HookAdd
type CodeCb func(addr uint32, size uint32)
type MemCb func(access int, addr uint32, size int, val uint32)
type MemFaultCb func(enum int, addr uint32, size int, val uint32)

type hookInfo struct {
	htype int
	start uint32
	end   uint32
}

func (h *hookInfo) Type() int {
	return h.htype
}

// start > end hooks the whole address space
func (h *hookInfo) Contains(addr uint32) bool {
	return h.start > h.end || addr >= h.start && addr <= h.end
}

type hinfo interface {
	Type() int
}

type codeHook struct {
	hookInfo
	cb CodeCb
}

type memHook struct {
	hookInfo
	cb MemCb
}

type memFaultHook struct {
	hookInfo
	cb MemFaultCb
}

type Hooks struct {
	code     []*codeHook
	mem      []*memHook
	memFault []*memFaultHook
}

// creates &Hooks{}, optionally attaching to a *Mem instance
func NewHooks(mem *Mem) *Hooks {
	h := &Hooks{}
	if mem != nil {
		// mem will dispatch hooks automatically
		mem.hooks = h
	}
	return h
}

// any combination of read, write and fetch
func memHookType(htype int) bool {
	return htype != 0 && htype&^(HOOK_MEM_READ|HOOK_MEM_WRITE|HOOK_MEM_FETCH) == 0
}

func (h *Hooks) HookAdd(htype int, cb interface{}, start, end uint32) (Hook, error) {
	info := hookInfo{htype, start, end}
	var hook Hook
	switch {
	case htype == HOOK_CODE:
		var fn CodeCb
		switch v := cb.(type) {
		case CodeCb:
			fn = v
		case func(uint32, uint32):
			fn = v
		default:
			return nil, errors.Errorf("bad code hook callback: %T", cb)
		}
		hh := &codeHook{info, fn}
		h.code, hook = append(h.code, hh), hh

	case memHookType(htype):
		var fn MemCb
		switch v := cb.(type) {
		case MemCb:
			fn = v
		case func(int, uint32, int, uint32):
			fn = v
		default:
			return nil, errors.Errorf("bad memory hook callback: %T", cb)
		}
		hh := &memHook{info, fn}
		h.mem, hook = append(h.mem, hh), hh

	case htype == HOOK_MEM_ERR:
		var fn MemFaultCb
		switch v := cb.(type) {
		case MemFaultCb:
			fn = v
		case func(int, uint32, int, uint32):
			fn = v
		default:
			return nil, errors.Errorf("bad fault hook callback: %T", cb)
		}
		hh := &memFaultHook{info, fn}
		h.memFault, hook = append(h.memFault, hh), hh

	default:
		return nil, errors.Errorf("unknown hook type: %d", htype)
	}
	return hook, nil
}

func (h *Hooks) HookDel(hh Hook) error {
	info, ok := hh.(hinfo)
	if !ok {
		return errors.Errorf("not a hook: %T", hh)
	}
	switch htype := info.Type(); {
	case htype == HOOK_CODE:
		var tmp []*codeHook
		for _, v := range h.code {
			if v != hh {
				tmp = append(tmp, v)
			}
		}
		h.code = tmp
	case memHookType(htype):
		var tmp []*memHook
		for _, v := range h.mem {
			if v != hh {
				tmp = append(tmp, v)
			}
		}
		h.mem = tmp
	case htype == HOOK_MEM_ERR:
		var tmp []*memFaultHook
		for _, v := range h.memFault {
			if v != hh {
				tmp = append(tmp, v)
			}
		}
		h.memFault = tmp
	}
	return nil
}

func (h *Hooks) OnCode(addr uint32, size uint32) {
	for _, v := range h.code {
		if v.Contains(addr) {
			v.cb(addr, size)
		}
	}
}

func (h *Hooks) OnMem(access int, addr uint32, size int, val uint32) {
	for _, v := range h.mem {
		if v.Contains(addr) && v.wants(access) {
			v.cb(access, addr, size, val)
		}
	}
}

func (h *Hooks) OnFault(enum int, addr uint32, size int, val uint32) {
	for _, v := range h.memFault {
		if v.Contains(addr) {
			v.cb(enum, addr, size, val)
		}
	}
}

func (m *memHook) wants(access int) bool {
	switch access {
	case MEM_READ:
		return m.htype&HOOK_MEM_READ != 0
	case MEM_WRITE:
		return m.htype&HOOK_MEM_WRITE != 0
	case MEM_FETCH:
		return m.htype&HOOK_MEM_FETCH != 0
	}
	return false
}
