package lua

var sugarRc = `
-- "fmt" % x and "fmt" % {x, y} format like string.format
getmetatable("").__mod = func(a, b)
    if type(b) == 'table' then
        return string.format(a, unpack(b))
    end
    return string.format(a, b)
end

func hex(n) return '0x%08x' % n end
func word(addr) return u.read32(addr) end
`
