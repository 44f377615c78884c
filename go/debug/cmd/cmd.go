package cmd

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/lunixbochs/argjoy"
	"github.com/mattn/go-shellwords"
	"github.com/pkg/errors"
)

type Command struct {
	Name string
	Desc string
	Run  interface{}
}

var Commands = make(map[string]*Command)

func cmd(c *Command) *Command {
	fn := reflect.ValueOf(c.Run)
	if !fn.IsValid() || fn.Kind() != reflect.Func {
		panic(fmt.Sprintf("Command.Run must be a func: got (%T) %#v\n", c.Run, c.Run))
	}
	Commands[c.Name] = c
	return c
}

var aj = argjoy.NewArgjoy()

func init() {
	aj.Register(argCodec)
}

// parseWord accepts anything strtol/strtoul would: decimal, 0x hex, 0 octal,
// and negative values which wrap to their two's complement.
func parseWord(s string) (uint32, error) {
	if len(s) > 0 && s[0] == '-' {
		n, err := strconv.ParseInt(s, 0, 32)
		if err != nil {
			return 0, errors.Errorf("unable to parse '%s' as a 32-bit integer", s)
		}
		return uint32(n), nil
	}
	n, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, errors.Errorf("unable to parse '%s' as a 32-bit integer", s)
	}
	return uint32(n), nil
}

// converts shell words into typed command arguments
func argCodec(arg interface{}, vals []interface{}) error {
	if c, ok := vals[0].(*Context); ok {
		if v, ok := arg.(**Context); ok {
			*v = c
			return nil
		}
		return argjoy.NoMatch
	}
	s, ok := vals[0].(string)
	if !ok {
		return argjoy.NoMatch
	}
	switch v := arg.(type) {
	case *string:
		*v = s
	case *uint32:
		n, err := parseWord(s)
		if err != nil {
			return err
		}
		*v = n
	case *int:
		n, err := strconv.ParseInt(s, 0, 0)
		if err != nil {
			return errors.Errorf("unable to parse '%s' as an int", s)
		}
		*v = int(n)
	default:
		return argjoy.NoMatch
	}
	return nil
}

// Run parses and executes one shell line. Command errors are printed, not
// returned, so a bad command never ends the session.
func Run(c *Context, line string) error {
	args, err := shellwords.Parse(line)
	if err != nil {
		c.Printf("parse error: %v\n", err)
		return nil
	}
	if len(args) == 0 {
		return nil
	}
	name, args := args[0], args[1:]
	if cmd, ok := Commands[name]; ok {
		vals := make([]interface{}, 0, len(args)+1)
		vals = append(vals, c)
		for _, arg := range args {
			vals = append(vals, arg)
		}
		out, err := aj.Call(cmd.Run, vals...)
		if err != nil {
			c.Printf("error: %v\n", err)
		}
		if len(out) > 0 {
			if err, ok := out[0].(error); ok {
				c.Printf("error: %v\n", err)
			}
		}
	} else {
		c.Printf("command not found: %s\n", name)
	}
	return nil
}
