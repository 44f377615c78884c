package lua

var cmdRc = `
_builtins = {}
for name, _ in pairs(_G) do
    _builtins[name] = true
end

func _fallback(name, val)
    if type(val) == 'function' then
        val()
    else
        print val
    end
end

func _is_public(name)
    return _builtins[name] != true and name:sub(1, 1) != '_'
end

func help()
    local funcs = {}
    local vars = {}
    local vkeys = {}
    for name, val in pairs(_G) do
        if _is_public(name) then
            if type(val) == 'function' then
                table.insert(funcs, name)
            else
                vars[name] = val
                table.insert(vkeys, name)
            end
        end
    end
    table.sort(funcs)
    print 'Functions:'
    for _, name in ipairs(funcs) do
        print(name)
    end
    print

    table.sort(vkeys)
    print 'Variables:'
    for _, name in ipairs(vkeys) do
        local val = vars[name]
        print name '=' val
    end
end

func dir()
    local ret = {}
    for name, _ in pairs(_G) do
        if _is_public(name) then
            table.insert(ret, name)
        end
    end
    table.sort(ret)
    return ret
end

local _hook_types = {
    code = cpu.HOOK_CODE,
    read = cpu.HOOK_MEM_READ,
    write = cpu.HOOK_MEM_WRITE,
    fetch = cpu.HOOK_MEM_FETCH,
    fault = cpu.HOOK_MEM_ERR,
}

-- target of the "on <type> [start] [stop] do ... end" statement
func _on_hook(name, fn, start, stop)
    local type = _hook_types[name]
    if type == nil then
        print 'unknown hook type %s' % name
        return
    end
    if start == nil then
        hh = u.hook_add(type, fn)
    else
        if stop == nil then stop = start end
        hh = u.hook_add(type, fn, start, stop)
    end
    return hh
end

func off(id)
    if id == nil then id = hh end
    if id != nil then
        u.hook_del(id)
        if id == hh then hh = nil end
    end
end

func read(addr, size)
    if size == nil then size = 16 end
    return u.mem_read(addr, size)
end

func write(addr, s)
    u.mem_write(addr, s)
end

func maps()
    print 'Memory map:'
    print(u.maps())
end

func s(steps)
    if steps == nil then steps = 1 end
    return u.step(steps)
end

func b(baddr)
    return _on_hook('code', func(addr)
        if not u.halted() then
            print 'Breakpoint hit at 0x%08x' % addr
        end
    end, baddr)
end
`
