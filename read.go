package prizm

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadObj loads previously written obj text so it can be appended to another
// Obj. It is not a parser and does not validate its input: the text is kept
// verbatim, record counters are rebuilt by counting v, vn and vt lines, and
// positive indices in p, l and f lines mark the result as using absolute
// indices.
func ReadObj(r io.Reader) (*Obj, error) {
	o := NewObj()

	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			o.obj.WriteString(line)
			o.scanLine(strings.TrimSuffix(line, "\n"))
			if strings.HasSuffix(line, "\n") {
				o.hashCount = 0
			}
		}
		if err == io.EOF {
			return o, nil
		}
		if err != nil {
			return nil, fmt.Errorf("could not read obj: %w", err)
		}
	}
}

func (o *Obj) scanLine(line string) {
	o.hashCount = min(strings.Count(line, "#"), 2)

	body, _, _ := strings.Cut(line, "#")
	fields := strings.Fields(body)
	if len(fields) == 0 {
		return
	}

	switch fields[0] {
	case "v":
		o.vCount++
	case "vn":
		o.vnCount++
	case "vt":
		o.vtCount++
	case "p", "l", "f":
		for _, ref := range fields[1:] {
			for _, part := range strings.Split(ref, "/") {
				if i, err := strconv.Atoi(part); err == nil && i > 0 {
					o.absoluteRefs++
				}
			}
		}
	}
}
