package dns

import "strings"

// maxPointerOffset is the largest message offset a 14-bit pointer can address.
const maxPointerOffset = 0x3FFF

// Compression is the name-compression context for one DNS message. It records
// the message offset of every name suffix written so far so later names can
// point back at them (RFC 1035 Section 4.1.4).
//
// A Compression belongs to a single message being built and is not safe for
// concurrent use.
type Compression struct {
	offsets map[string]int
	added   []string // keys in insertion order, for rollback
}

// NewCompression returns an empty compression context.
func NewCompression() *Compression {
	return &Compression{offsets: make(map[string]int)}
}

// Len returns the number of remembered name suffixes.
func (c *Compression) Len() int {
	if c == nil {
		return 0
	}
	return len(c.offsets)
}

// Add remembers that name (and each of its suffixes) was written uncompressed
// at message offset off.
func (c *Compression) Add(name string, off int) error {
	labels, err := splitLabels(name)
	if err != nil {
		return err
	}
	pos := off
	for i := range labels {
		key := strings.ToLower(strings.Join(labels[i:], "."))
		if _, ok := c.offsets[key]; !ok && pos <= maxPointerOffset {
			c.remember(key, pos)
		}
		pos += 1 + len(labels[i])
	}
	return nil
}

// EncodeNameCompressed encodes name for placement at message offset off.
//
// The longest suffix already present in c is replaced by a pointer, and every
// suffix written in full is added to c when its offset is addressable. A nil
// context yields the plain encoding from EncodeName.
func EncodeNameCompressed(name string, off int, c *Compression) ([]byte, error) {
	wire, err := EncodeName(name)
	if err != nil || c == nil {
		return wire, err
	}
	labels, _ := splitLabels(name)

	out := make([]byte, 0, len(wire))
	for i := range labels {
		key := strings.ToLower(strings.Join(labels[i:], "."))
		if ptr, ok := c.offsets[key]; ok {
			return append(out, 0xC0|byte(ptr>>8), byte(ptr)), nil
		}
		if pos := off + len(out); pos <= maxPointerOffset {
			c.remember(key, pos)
		}
		out = append(out, byte(len(labels[i])))
		out = append(out, labels[i]...)
	}
	return append(out, 0), nil
}

func (c *Compression) remember(key string, pos int) {
	c.offsets[key] = pos
	c.added = append(c.added, key)
}

// mark returns a checkpoint for rollback.
func (c *Compression) mark() int {
	if c == nil {
		return 0
	}
	return len(c.added)
}

// rollback forgets every suffix remembered after checkpoint m.
func (c *Compression) rollback(m int) {
	if c == nil {
		return
	}
	for _, key := range c.added[m:] {
		delete(c.offsets, key)
	}
	c.added = c.added[:m]
}
