package models

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// PrintFlags writes flag usage in aligned columns, wrapping descriptions at
// 80 columns.
func PrintFlags(w io.Writer, flags []*flag.Flag) {
	wname := 0
	wdef := 0
	for _, f := range flags {
		if len(f.Name) > wname {
			wname = len(f.Name)
		}
		if len(f.DefValue) > wdef {
			wdef = len(f.DefValue)
		}
	}
	wdesc := 80 - wname - wdef - 7

	namefmt := fmt.Sprintf("%%-%ds", wname)
	deffmt := fmt.Sprintf("%%-%ds ", wdef+2)
	lpad := strings.Repeat(" ", wname+wdef+7)
	for _, f := range flags {
		fmt.Fprintf(w, "  -"+namefmt, f.Name)
		if f.DefValue != "" && f.DefValue != "false" && f.DefValue != "0" {
			fmt.Fprintf(w, " "+deffmt, "("+f.DefValue+")")
		} else {
			fmt.Fprintf(w, " "+deffmt, "")
		}
		usage := f.Usage
		for i := 0; i < len(usage); {
			if i > 0 {
				io.WriteString(w, lpad)
			}
			l := wdesc
			skip := false
			if i+wdesc > len(usage) {
				l = len(usage) - i
			} else if s := strings.LastIndexAny(usage[i:i+l], " \n"); s > 0 {
				// break on whitespace when we can
				l = s
				skip = true
			}
			fmt.Fprintf(w, "%s\n", usage[i:i+l])
			i += l
			if skip {
				i++
			}
		}
		if usage == "" {
			io.WriteString(w, "\n")
		}
	}
}
