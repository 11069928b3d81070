package prizm

import "fmt"

// Indexing of v, vn and vt records is 1-based and can be negative:
//   - index > 0 refers to the index-th record written
//   - index < 0 refers to the index-th record preceding the referencing line
//   - index == 0 is invalid, a silent error in the format
//
// Records should be referenced by elements written after them.

// ResolveIndex returns the index to write for i given count records written
// so far. Negative indices are kept when negative is true and converted to
// positive ones otherwise. Zero is not rejected.
func ResolveIndex(i, count int, negative bool) int {
	if i > 0 || negative {
		return i
	}
	return count + 1 + i
}

// VIndex returns the v-record index to write for i.
func (o *Obj) VIndex(i int) int {
	return ResolveIndex(i, o.vCount, o.negativeIndices)
}

// VNIndex returns the vn-record index to write for i.
func (o *Obj) VNIndex(i int) int {
	return ResolveIndex(i, o.vnCount, o.negativeIndices)
}

// VTIndex returns the vt-record index to write for i.
func (o *Obj) VTIndex(i int) int {
	return ResolveIndex(i, o.vtCount, o.negativeIndices)
}

// vRef, vnRef and vtRef resolve an index that is about to be written and
// keep track of zero and positive references. A reference that resolves to
// zero is nil, so Insert and Add write nothing for it.
func (o *Obj) vRef(i int) any  { return o.ref("v", i, o.vCount) }
func (o *Obj) vnRef(i int) any { return o.ref("vn", i, o.vnCount) }
func (o *Obj) vtRef(i int) any { return o.ref("vt", i, o.vtCount) }

func (o *Obj) ref(kind string, i, count int) any {
	if i == 0 {
		o.violation(ErrZeroIndex, fmt.Sprintf("%s index with %d records written", kind, count))
	}
	idx := ResolveIndex(i, count, o.negativeIndices)
	if idx == 0 {
		return nil
	}
	if idx > 0 {
		o.absoluteRefs++
	}
	return idx
}
