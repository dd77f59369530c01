package ini

import (
	"bytes"

	"github.com/dzjyyds666/inifix/pkg/json"
)

// MarshalJSON renders the document as a JSON object in key order.
func (d *Document) MarshalJSON() ([]byte, error) { return marshalOrdered(d.orderedMap) }

// MarshalJSON renders the section as a JSON object in key order.
func (s *Section) MarshalJSON() ([]byte, error) { return marshalOrdered(s.orderedMap) }

func (v *Value) MarshalJSON() ([]byte, error) { return json.Marshal(v.V) }

func (l *List) MarshalJSON() ([]byte, error) { return json.Marshal(l.Elems) }

func marshalOrdered(m orderedMap) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(m.items[k])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
