package series

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
)

// LoadJSON reads a JSON file; see ReadJSON.
func LoadJSON(path string) (Data, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Data{}, err
	}
	d, err := ReadJSON(b)
	if err != nil {
		return Data{}, fmt.Errorf("%s: %w", path, err)
	}
	d.Source = path
	return d, nil
}

// ReadJSON accepts three shapes:
//
//	[[x, y], ...]                                   one unnamed series
//	{"series": [{"name": "a", "points": [[x, y]]}]} named series
//	{"x": [...], "a": [...], "b": [...]}            columns sharing x
func ReadJSON(b []byte) (Data, error) {
	if !gjson.ValidBytes(b) {
		return Data{}, fmt.Errorf("json: invalid document")
	}
	root := gjson.ParseBytes(b)

	var d Data
	switch {
	case root.IsArray():
		d.add(pairs("series", root))
	case root.Get("series").IsArray():
		for i, s := range root.Get("series").Array() {
			name := s.Get("name").String()
			if name == "" {
				name = fmt.Sprintf("series%d", i+1)
			}
			d.add(pairs(name, s.Get("points")))
		}
	case root.Get("x").IsArray():
		xs := root.Get("x").Array()
		root.ForEach(func(key, value gjson.Result) bool {
			if key.String() == "x" || !value.IsArray() {
				return true
			}
			d.add(columns(key.String(), xs, value.Array()))
			return true
		})
	default:
		return Data{}, fmt.Errorf("json: %w: expected an array, a series list or x columns", ErrUnsupported)
	}
	if d.empty() {
		return Data{}, fmt.Errorf("json: %w", ErrNoPoints)
	}
	return d, nil
}

// pairs reads [[x, y], ...], skipping malformed entries.
func pairs(name string, arr gjson.Result) Series {
	s := Series{Name: name}
	arr.ForEach(func(_, p gjson.Result) bool {
		xy := p.Array()
		if len(xy) >= 2 && xy[0].Type == gjson.Number && xy[1].Type == gjson.Number {
			s.Add(xy[0].Float(), xy[1].Float())
		}
		return true
	})
	return s
}

func columns(name string, xs, ys []gjson.Result) Series {
	s := Series{Name: name}
	for i := 0; i < len(xs) && i < len(ys); i++ {
		if xs[i].Type != gjson.Number || ys[i].Type != gjson.Number {
			continue
		}
		s.Add(xs[i].Float(), ys[i].Float())
	}
	return s
}
