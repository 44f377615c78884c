package lua

import (
	"fmt"
	"strings"

	"github.com/lunixbochs/luaish"
)

// small ints print in decimal, anything word sized prints as a padded word
func prettyInt(n int64) string {
	switch {
	case n >= 0 && n < 10:
		return fmt.Sprintf("%d", n)
	case n >= 0 && n <= 0xffffffff:
		return fmt.Sprintf("0x%08x(%d)", n, n)
	default:
		return fmt.Sprintf("%#x", n)
	}
}

func (L *LuaRepl) prettydump(lv []lua.LValue, implicit bool, outer bool, seen map[lua.LValue]bool) []string {
	pretty := make([]string, len(lv))
	for i, v := range lv {
		switch s := v.(type) {
		case *lua.LTable:
			// skip recursive table references
			if seen[v] {
				pretty[i] = `{"<recursion>"}`
				continue
			}
			seen[v] = true

			table := make([]string, 0, s.Len())
			idx := 1
			s.ForEach(func(k, v lua.LValue) {
				tmp := L.prettydump([]lua.LValue{k, v}, implicit, false, seen)
				if n, ok := k.(lua.LInt); ok && int(n) == idx {
					idx += 1
					table = append(table, tmp[1])
				} else {
					table = append(table, strings.Join(tmp, " = "))
				}
			})

			seen[v] = false
			sep := ", "
			if outer {
				sep = ",\n "
			}
			pretty[i] = "{" + strings.Join(table, sep) + "}"
		case lua.LFloat:
			pretty[i] = fmt.Sprintf("%f", float64(s))
		case lua.LInt:
			pretty[i] = prettyInt(int64(s))
		case lua.LString:
			if implicit {
				pretty[i] = fmt.Sprintf("%#v", string(s))
			} else {
				pretty[i] = string(s)
			}
		default:
			pretty[i] = fmt.Sprintf("%s", s)
		}
	}
	return pretty
}

func (L *LuaRepl) PrettyDump(lv []lua.LValue, implicit bool, outer bool) []string {
	return L.prettydump(lv, implicit, outer, make(map[lua.LValue]bool))
}

func (L *LuaRepl) PrettyPrint(lv []lua.LValue, implicit bool) {
	L.Printf("%s\n", strings.Join(L.PrettyDump(lv, implicit, true), " "))
}
