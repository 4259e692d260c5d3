package series

import (
	"bufio"
	"fmt"
	"strings"
)

// ParseText reads pasted points, one "x y" or "x,y" pair per line.
// A "# name" line starts a new named series, as does a blank line after
// points. Lines that do not parse are skipped.
func ParseText(text string) (Data, error) {
	var d Data
	cur := Series{}
	n := 0
	flush := func() {
		if cur.Len() == 0 {
			return
		}
		n++
		if cur.Name == "" {
			cur.Name = fmt.Sprintf("paste%d", n)
		}
		d.add(cur)
		cur = Series{}
	}

	sc := bufio.NewScanner(strings.NewReader(text))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "":
			flush()
		case strings.HasPrefix(line, "#"):
			flush()
			cur.Name = strings.TrimSpace(strings.TrimPrefix(line, "#"))
		default:
			fields := strings.FieldsFunc(line, func(r rune) bool {
				return r == ',' || r == ';' || r == ' ' || r == '\t'
			})
			if len(fields) < 2 {
				continue
			}
			x, err1 := parseFloat(fields[0])
			y, err2 := parseFloat(fields[1])
			if err1 != nil || err2 != nil {
				continue
			}
			cur.Add(x, y)
		}
	}
	if err := sc.Err(); err != nil {
		return Data{}, err
	}
	flush()
	if d.empty() {
		return Data{}, fmt.Errorf("text: %w", ErrNoPoints)
	}
	return d, nil
}
