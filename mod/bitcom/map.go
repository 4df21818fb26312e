package bitcom

import (
	"bytes"
	"encoding/json"
	"strings"
	"unicode/utf8"
)

var MAP_PROTO = "1PuQa7K62MiKCtssSLKy1kh56WWU7MtUR5"

const MAP_TAG = "map"

type Map map[string]interface{}

func (m Map) Merge(m2 Map) Map {
	r := make(Map, len(m)+len(m2))
	for k, v := range m {
		r[k] = v
	}
	for k, v := range m2 {
		r[k] = v
	}
	return r
}

func cleanNulls(b []byte) string {
	return strings.Replace(string(bytes.Replace(b, []byte{0}, []byte{' '}, -1)), "\\u0000", " ", -1)
}

// ParseMAP applies a MAP SET command to mp. Keys and values alternate after
// the SET verb.
func ParseMAP(mp Map, bc *Bitcom) {
	cells := bc.Cells
	if len(cells) == 0 || cells[0].S == nil || *cells[0].S != "SET" {
		return
	}
	for i := 1; i+1 < len(cells); i += 2 {
		key, val := cells[i].Bytes(), cells[i+1].Bytes()
		if key == nil || val == nil {
			break
		}
		opKey := cleanNulls(key)
		if len(opKey) > 256 || len(val) > 1024 {
			continue
		}
		if !utf8.Valid([]byte(opKey)) || !utf8.Valid(val) {
			continue
		}
		mp[opKey] = cleanNulls(val)
	}
	if val, ok := mp["subTypeData"].(string); ok {
		if strings.Contains(val, "\x00") || strings.Contains(val, "\\u0000") {
			delete(mp, "subTypeData")
		} else {
			var subTypeData json.RawMessage
			if err := json.Unmarshal([]byte(val), &subTypeData); err == nil {
				mp["subTypeData"] = subTypeData
			}
		}
	}
}
